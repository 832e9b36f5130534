package parallel

import (
	"math/bits"
	"sync/atomic"
)

// Progress tracks which tiles have been computed using an atomic bitmap.
// It provides lock-free, thread-safe operations for concurrent access.
//
// The bitmap uses one bit per tile, packed into uint64 words (64 tiles per
// word). A monotonically increasing pixel counter accompanies the bitmap so
// that callers can report progress in pixels rather than tiles. Readers see
// an eventually consistent view: a completed tile becomes visible to Count
// and Completed shortly after its worker marks it, with no ordering
// guarantees between tiles.
//
// All methods are safe for concurrent use without external synchronization.
type Progress struct {
	// words is the atomic bitmap where each bit represents a tile's
	// completion state. Word index = tile index / 64, bit = tile index % 64.
	words []atomic.Uint64

	// tiles is the total number of tiles tracked.
	tiles int

	// completed counts pixels of tiles marked so far. Monotonic.
	completed atomic.Int64

	// total is the total number of pixels across all tiles.
	total int64
}

// NewProgress creates a progress tracker for the given number of tiles and
// total pixel count. All tiles start incomplete.
// Returns nil if tiles is zero or negative.
func NewProgress(tiles int, totalPixels int64) *Progress {
	if tiles <= 0 {
		return nil
	}

	numWords := (tiles + 63) / 64

	return &Progress{
		words: make([]atomic.Uint64, numWords),
		tiles: tiles,
		total: totalPixels,
	}
}

// Mark records the tile at the given flat index as completed, crediting its
// pixel count toward Completed. Mark is idempotent: only the first call for
// a given index adds pixels, so double-marking never inflates the counter.
// Returns true if the tile was newly marked, false if it was already
// completed or the index is out of bounds.
func (p *Progress) Mark(i, pixels int) bool {
	if i < 0 || i >= p.tiles {
		return false
	}
	wordIdx := i / 64
	mask := uint64(1) << (i & 63)

	old := p.words[wordIdx].Or(mask)
	if old&mask != 0 {
		return false
	}

	p.completed.Add(int64(pixels))
	return true
}

// Done returns true if the tile at the given flat index has been marked.
// Returns false for out-of-bounds indices.
func (p *Progress) Done(i int) bool {
	if i < 0 || i >= p.tiles {
		return false
	}
	wordIdx := i / 64
	mask := uint64(1) << (i & 63)
	return p.words[wordIdx].Load()&mask != 0
}

// Count returns the number of tiles marked as completed.
func (p *Progress) Count() int {
	count := 0
	fullWords := p.tiles / 64

	for i := 0; i < fullWords; i++ {
		count += bits.OnesCount64(p.words[i].Load())
	}

	if fullWords < len(p.words) {
		remainder := p.tiles % 64
		mask := (uint64(1) << remainder) - 1
		count += bits.OnesCount64(p.words[fullWords].Load() & mask)
	}

	return count
}

// Completed returns the number of pixels in completed tiles.
// The value only ever increases during a render.
func (p *Progress) Completed() int64 {
	return p.completed.Load()
}

// Total returns the total number of pixels being tracked.
func (p *Progress) Total() int64 {
	return p.total
}

// TotalTiles returns the number of tiles being tracked.
func (p *Progress) TotalTiles() int {
	return p.tiles
}

// Fraction returns the completed fraction in [0, 1].
// Returns 1 for a tracker with zero total pixels.
func (p *Progress) Fraction() float64 {
	if p.total == 0 {
		return 1
	}
	return float64(p.completed.Load()) / float64(p.total)
}

// AllDone returns true once every tile has been marked.
func (p *Progress) AllDone() bool {
	return p.Count() == p.tiles
}
