package mandel

import "fmt"

// Grid holds escape-time iteration counts for a rendered viewport, one
// int32 per pixel in row-major order. Counts range from 1 to the
// iteration cap the grid was rendered with; interior pixels hold the cap
// exactly.
type Grid struct {
	width   int
	height  int
	maxIter int
	counts  []int32
}

// NewGrid allocates a zeroed count grid. It returns ErrInvalidSize for
// non-positive dimensions and ErrInvalidIterations for a non-positive cap.
func NewGrid(width, height, maxIter int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIter)
	}
	return &Grid{
		width:   width,
		height:  height,
		maxIter: maxIter,
		counts:  make([]int32, width*height),
	}, nil
}

// Width returns the width of the grid in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid in pixels.
func (g *Grid) Height() int {
	return g.height
}

// MaxIter returns the iteration cap the grid was rendered with.
func (g *Grid) MaxIter() int {
	return g.maxIter
}

// At returns the count at pixel (col, row), or 0 if out of bounds.
func (g *Grid) At(col, row int) int32 {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return 0
	}
	return g.counts[row*g.width+col]
}

// Counts returns the raw count data in row-major order. The slice is the
// grid's backing store; writes through it are visible to all accessors.
func (g *Grid) Counts() []int32 {
	return g.counts
}

// Max returns the largest count present in the grid.
func (g *Grid) Max() int32 {
	var max int32
	for _, c := range g.counts {
		if c > max {
			max = c
		}
	}
	return max
}

// Stats summarizes the count distribution of a rendered grid.
type Stats struct {
	// Min and Max are the smallest and largest counts present.
	Min, Max int32

	// Interior is the number of pixels that reached the iteration cap.
	Interior int64

	// Escaped is the number of pixels that diverged before the cap.
	Escaped int64
}

// Stats scans the grid and returns its count distribution summary.
func (g *Grid) Stats() Stats {
	s := Stats{}
	if len(g.counts) == 0 {
		return s
	}
	cap32 := int32(g.maxIter)
	s.Min = g.counts[0]
	for _, c := range g.counts {
		if c < s.Min {
			s.Min = c
		}
		if c > s.Max {
			s.Max = c
		}
		if c >= cap32 {
			s.Interior++
		} else {
			s.Escaped++
		}
	}
	return s
}
