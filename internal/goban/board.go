// Package goban holds the geometry and the state of a square Go board.
//
// The board of size S is laid out on a padded (S+2)x(S+2) grid whose outer ring is permanently
// marked as out-of-bound. So the four neighbours of any intersection on the board, computed
// with the fixed offsets ±1 and ±(S+2), always fall within the grid, and rule logic never
// needs explicit boundary checks.
//
// Each set of intersections (empty, occupied by each player, out-of-bound) is a
// bitboard.Bitboard with capacity (S+2)^2.
package goban

import (
	"github.com/janpfeifer/goban/internal/bitboard"
	"github.com/janpfeifer/goban/internal/parameters"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	// MinSize is the smallest board: a single playable intersection.
	MinSize = 1

	// MaxSize is the largest board supported.
	MaxSize = 25

	// DefaultSize used by NewFromParams when no size is configured.
	DefaultSize = 19
)

// Board is the state of a goban at one point in time.
//
// The size is fixed for the lifetime of the Board: resizing is not supported, create a new
// Board instead. Rule logic that mutates Occupied, Empty and Ko is responsible for keeping
// the invariants verified by CheckInvariants.
//
// A Board is not safe for concurrent mutation.
type Board struct {
	size int

	// Occupied intersections, indexed by player.
	Occupied [NumPlayers]*bitboard.Bitboard

	// Empty intersections on the board. Never includes out-of-bound intersections.
	Empty *bitboard.Bitboard

	// OutOfBound is the sentinel ring around the board. It never changes after construction.
	OutOfBound *bitboard.Bitboard

	// ToMove is the player to play next.
	ToMove Player

	// Ko is the intersection where immediate recapture is forbidden, or NoIntersection.
	Ko Intersection
}

// New creates an empty board of the given size, with Black to move and no ko.
//
// It only fails if size is not within [MinSize, MaxSize].
func New(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, errors.Errorf("invalid board size %d, it must be between %d and %d", size, MinSize, MaxSize)
	}
	empty, outOfBound := buildGeometry(size)
	capacity := empty.Capacity()
	b := &Board{
		size:       size,
		Occupied:   [NumPlayers]*bitboard.Bitboard{bitboard.New(capacity), bitboard.New(capacity)},
		Empty:      empty,
		OutOfBound: outOfBound,
		ToMove:     Black,
		Ko:         NoIntersection,
	}
	klog.V(2).Infof("Created %dx%d board: %d intersections, %d out-of-bound", size, size,
		empty.Count(), outOfBound.Count())
	return b, nil
}

// MustNew is like New, but panics on error.
func MustNew(size int) *Board {
	return must.M1(New(size))
}

// New9x9 creates an empty 9x9 board.
func New9x9() *Board { return MustNew(9) }

// New13x13 creates an empty 13x13 board.
func New13x13() *Board { return MustNew(13) }

// New19x19 creates an empty 19x19 board.
func New19x19() *Board { return MustNew(19) }

// NewFromParams creates an empty board configured by params. Keys:
//
//   - size: board size, defaults to DefaultSize.
//   - to_move: "black" or "white", defaults to "black".
//
// Unknown keys are reported as errors. Consumed keys are removed from params.
func NewFromParams(params parameters.Params) (*Board, error) {
	size, err := parameters.PopParamOr(params, "size", DefaultSize)
	if err != nil {
		return nil, err
	}
	toMoveName, err := parameters.PopParamOr(params, "to_move", Black.String())
	if err != nil {
		return nil, err
	}
	toMove, err := ParsePlayer(toMoveName)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to parse configuration to_move")
	}
	if err = parameters.CheckAllConsumed(params); err != nil {
		return nil, errors.WithMessage(err, "failed to configure board")
	}
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	b.ToMove = toMove
	klog.V(1).Infof("Board configured: size=%d, to_move=%s", size, toMove)
	return b, nil
}

// Size of the board, not including the out-of-bound ring.
func (b *Board) Size() int {
	return b.size
}

// Width of the padded grid, that is Size()+2.
func (b *Board) Width() int {
	return b.size + 2
}

// Capacity is the number of intersections of the padded grid, (Size()+2)^2.
func (b *Board) Capacity() int {
	width := b.Width()
	return width * width
}

// At returns the intersection at the given row and column of the padded grid.
// Rows and columns from 1 to Size() are on the board, 0 and Size()+1 are out-of-bound.
func (b *Board) At(row, col int) Intersection {
	width := b.Width()
	if row < 0 || row >= width || col < 0 || col >= width {
		panic(errors.Errorf("goban: (row=%d, col=%d) outside of padded %dx%d grid", row, col, width, width))
	}
	return Intersection(row*width + col)
}

// RowCol is the inverse of At.
func (b *Board) RowCol(x Intersection) (row, col int) {
	width := b.Width()
	return int(x) / width, int(x) % width
}

// IsOnBoard returns whether x is a playable intersection, as opposed to the out-of-bound ring
// or outside the grid.
func (b *Board) IsOnBoard(x Intersection) bool {
	return x >= 0 && int(x) < b.Capacity() && !b.OutOfBound.Test(int(x))
}

// Neighbours returns the four orthogonal neighbours of x: up, right, down and left.
//
// It is only meaningful for intersections on the board, whose neighbours are always within
// the padded grid, possibly out-of-bound.
func (b *Board) Neighbours(x Intersection) [4]Intersection {
	width := Intersection(b.Width())
	return [4]Intersection{x - width, x + 1, x + width, x - 1}
}

// StoneAt returns the player with a stone on x, or PlayerInvalid if there is none.
// x must be within the padded grid.
func (b *Board) StoneAt(x Intersection) Player {
	for _, player := range Players {
		if b.Occupied[player].Test(int(x)) {
			return player
		}
	}
	return PlayerInvalid
}

// HasKo returns whether there is a ko restriction active.
func (b *Board) HasKo() bool {
	return b.Ko != NoIntersection
}

// Clone makes a deep copy of the board.
func (b *Board) Clone() *Board {
	newB := &Board{}
	*newB = *b
	for _, player := range Players {
		newB.Occupied[player] = b.Occupied[player].Clone()
	}
	newB.Empty = b.Empty.Clone()
	newB.OutOfBound = b.OutOfBound.Clone()
	return newB
}

// CheckInvariants verifies that the board is internally consistent:
//
//   - every intersection of the padded grid is in exactly one of Empty, Occupied[Black],
//     Occupied[White] or OutOfBound;
//   - OutOfBound is exactly the ring around the board;
//   - ToMove is a valid player;
//   - Ko, if set, is an empty intersection on the board.
func (b *Board) CheckInvariants() error {
	capacity := b.Capacity()
	regions := []struct {
		name string
		bits *bitboard.Bitboard
	}{
		{"Empty", b.Empty},
		{"Occupied[Black]", b.Occupied[Black]},
		{"Occupied[White]", b.Occupied[White]},
		{"OutOfBound", b.OutOfBound},
	}
	for _, r := range regions {
		if r.bits == nil || r.bits.Capacity() != capacity {
			return errors.Errorf("%s must have capacity %d for a board of size %d", r.name, capacity, b.size)
		}
	}
	for ii, r1 := range regions {
		for _, r2 := range regions[ii+1:] {
			if r1.bits.Intersects(r2.bits) {
				return errors.Errorf("%s and %s overlap", r1.name, r2.name)
			}
		}
	}
	union := b.Empty.Union(b.Occupied[Black]).Union(b.Occupied[White]).Union(b.OutOfBound)
	if count := union.Count(); count != capacity {
		return errors.Errorf("%d intersections are neither empty, occupied nor out-of-bound", capacity-count)
	}
	if _, outOfBound := buildGeometry(b.size); !outOfBound.Equal(b.OutOfBound) {
		return errors.New("OutOfBound is not the ring around the board")
	}
	if b.ToMove != Black && b.ToMove != White {
		return errors.Errorf("invalid player to move %d", b.ToMove)
	}
	if b.HasKo() && (!b.IsOnBoard(b.Ko) || !b.Empty.Test(int(b.Ko))) {
		return errors.Errorf("ko at %s is not an empty intersection on the board", b.Ko)
	}
	return nil
}
