package goban

import (
	"fmt"

	"github.com/janpfeifer/goban/internal/bitboard"
)

// Intersection indexes one cell of the padded (size+2)x(size+2) grid: row*(size+2)+col.
// Rows and columns 0 and size+1 are the out-of-bound ring.
type Intersection int

// NoIntersection represents the absence of an intersection, e.g. when there is no ko.
const NoIntersection Intersection = -1

// String returns the padded grid coordinates as "#index".
func (x Intersection) String() string {
	if x == NoIntersection {
		return "none"
	}
	return fmt.Sprintf("#%d", int(x))
}

// buildGeometry returns the empty interior and the out-of-bound ring of a padded board of the
// given size. Both have capacity (size+2)^2 and together partition it.
//
// Only the bits meant to be set are touched: each interior line is set whole, and then its two
// border columns are cleared. The border is then the complement of the interior.
func buildGeometry(size int) (empty, outOfBound *bitboard.Bitboard) {
	width := size + 2
	empty = bitboard.New(width * width)
	for line := 1; line <= size; line++ {
		empty.SetWholeLine(line, width)
		empty.Unset(line * width)
		empty.Unset(line*width + size + 1)
	}
	outOfBound = empty.Clone()
	outOfBound.Flip()
	return
}
