package cli

import (
	"strings"
	"testing"

	"github.com/janpfeifer/goban/internal/goban"
	"github.com/janpfeifer/goban/internal/goban/gobantest"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	b := gobantest.BuildBoard(3, []gobantest.StoneOnBoard{
		{Row: 1, Col: 2, Player: goban.Black},
		{Row: 2, Col: 1, Player: goban.Black},
		{Row: 2, Col: 3, Player: goban.White},
		{Row: 3, Col: 2, Player: goban.Black},
	})
	b.ToMove = goban.White
	b.Ko = b.At(2, 2)
	want := "  A B C\n" +
		"3 . X . 3\n" +
		"2 X * O 2\n" +
		"1 . X . 1\n" +
		"  A B C\n" +
		"White to move, ko at B2"
	assert.Equal(t, want, Render(b, false))

	// Colored rendering only adds escape sequences.
	colored := Render(b, true)
	for ii, line := range strings.Split(colored, "\n") {
		assert.Equal(t, displayWidth(strings.Split(want, "\n")[ii]), displayWidth(line), "line %d", ii)
	}
}

func TestRenderRowLabelsAligned(t *testing.T) {
	got := strings.Split(Render(goban.New13x13(), false), "\n")
	assert.Equal(t, "   A B C D E F G H J K L M N", got[0])
	assert.Equal(t, "13 . . . . . . . . . . . . . 13", got[1])
	assert.Equal(t, " 1 . . . . . . . . . . . . . 1", got[13])
	assert.Equal(t, "Black to move", got[15])
}

func TestIntersectionName(t *testing.T) {
	b := goban.New19x19()
	assert.Equal(t, "A19", IntersectionName(b, b.At(1, 1)))
	assert.Equal(t, "J1", IntersectionName(b, b.At(19, 9)))
	assert.Equal(t, "T1", IntersectionName(b, b.At(19, 19)))
	assert.Equal(t, "#0", IntersectionName(b, b.At(0, 0)))
	assert.Equal(t, "none", IntersectionName(b, goban.NoIntersection))
}

