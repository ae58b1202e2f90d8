package goban

import (
	"strings"

	"github.com/pkg/errors"
)

// Player is either Black or White. It is used as an index into per-player arrays.
type Player uint8

const (
	Black Player = iota
	White

	// PlayerInvalid represents no player, e.g. for an intersection without a stone.
	PlayerInvalid
)

// NumPlayers is limited to 2.
const NumPlayers = 2

// Players enumerates the valid players, in order of play.
var Players = [NumPlayers]Player{Black, White}

var playerNames = [...]string{"Black", "White", "Invalid"}

// String returns the player name.
func (p Player) String() string {
	if p > PlayerInvalid {
		return playerNames[PlayerInvalid]
	}
	return playerNames[p]
}

// Opponent returns the other player. PlayerInvalid has no opponent and is returned as is.
func (p Player) Opponent() Player {
	if p >= PlayerInvalid {
		return PlayerInvalid
	}
	return 1 - p
}

// ParsePlayer accepts "black"/"b" and "white"/"w", case-insensitive.
func ParsePlayer(name string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return PlayerInvalid, errors.Errorf("unknown player %q, valid values are \"black\" or \"white\"", name)
}
