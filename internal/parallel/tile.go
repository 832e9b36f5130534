// Package parallel provides tile-based parallel computation infrastructure
// for gogpu/mandel.
//
// This package implements a tile-based execution system where the pixel grid
// is divided into tiles that can be computed independently in parallel. Key
// features:
//
//   - 64x64 default tiles optimized for L1 cache (16KB per tile in int32)
//   - Configurable tile size for memory-constrained targets
//   - Tile pooling for memory reuse via sync.Pool
//   - Lock-free completion tracking for progress reporting
//
// Thread safety: TileGrid operations are NOT thread-safe by default. Workers
// write only into their own tile's buffer; use the provided WorkerPool to
// distribute tiles.
package parallel

// Tile size constants optimized for cache efficiency and work distribution.
const (
	// TileWidth is the default width of a tile in pixels.
	// 64 pixels is optimal for work distribution across workers.
	TileWidth = 64

	// TileHeight is the default height of a tile in pixels.
	// 64 pixels keeps a full int32 tile at 16KB (fits L1 cache).
	TileHeight = 64

	// TilePixels is the total number of pixels in a full default tile.
	TilePixels = TileWidth * TileHeight
)

// Tile represents a rectangular pixel region for parallel computation.
//
// Each tile owns its count buffer and can be computed independently of every
// other tile. Edge tiles have smaller dimensions when the grid is not evenly
// divisible by the tile size.
type Tile struct {
	// X0 is the pixel column of the tile's left edge in grid space.
	X0 int

	// Y0 is the pixel row of the tile's top edge in grid space.
	Y0 int

	// Width is the actual width in pixels (may be smaller for edge tiles).
	Width int

	// Height is the actual height in pixels (may be smaller for edge tiles).
	Height int

	// Counts holds one iteration count per pixel, row-major.
	// Length is Width * Height.
	Counts []int32
}

// Reset zeros the tile's count buffer for reuse.
func (t *Tile) Reset() {
	clear(t.Counts)
}

// Bounds returns the pixel bounds of this tile in grid space.
// Returns (x, y, width, height) where x,y is the top-left corner.
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.X0, t.Y0, t.Width, t.Height
}

// Pixels returns the number of pixels covered by this tile.
func (t *Tile) Pixels() int {
	return t.Width * t.Height
}

// Offset returns the index into Counts for the given tile-local pixel.
// Coordinates px, py are relative to the tile (0,0 is its top-left corner).
// Returns -1 if coordinates are out of bounds.
func (t *Tile) Offset(px, py int) int {
	if px < 0 || px >= t.Width || py < 0 || py >= t.Height {
		return -1
	}
	return py*t.Width + px
}

// Row returns the slice of Counts covering tile-local row py.
// The slice has length Width and aliases the tile's buffer.
func (t *Tile) Row(py int) []int32 {
	start := py * t.Width
	return t.Counts[start : start+t.Width]
}

// Contains returns true if the grid-space pixel (gx, gy) is within this tile.
func (t *Tile) Contains(gx, gy int) bool {
	return gx >= t.X0 && gx < t.X0+t.Width &&
		gy >= t.Y0 && gy < t.Y0+t.Height
}

// Composite copies the tile's counts into dst, a row-major grid buffer with
// the given pixel width. Tiles cover disjoint pixel regions, so concurrent
// composites of different tiles never write the same dst elements.
func (t *Tile) Composite(dst []int32, gridWidth int) {
	for row := 0; row < t.Height; row++ {
		src := t.Counts[row*t.Width : (row+1)*t.Width]
		dstStart := (t.Y0+row)*gridWidth + t.X0
		copy(dst[dstStart:dstStart+t.Width], src)
	}
}
