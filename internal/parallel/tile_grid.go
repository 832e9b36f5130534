package parallel

// TileGrid manages a grid of tiles covering a pixel grid.
//
// The grid divides the pixel area into tiles of a configurable size (64x64 by
// default). Edge tiles have reduced dimensions when the area is not evenly
// divisible by the tile size. Tiles are stored in a flat slice in row-major
// order, accessed via index calculation: index = ty * tilesX + tx.
//
// Thread safety: TileGrid is NOT thread-safe. Concurrent workers may write
// into distinct tiles' buffers, but grid structure must not be mutated while
// workers run.
type TileGrid struct {
	// tiles is a flat slice of all tiles (row-major order).
	tiles []*Tile

	// tilesX is the number of tiles horizontally.
	tilesX int

	// tilesY is the number of tiles vertically.
	tilesY int

	// tileW, tileH are the nominal tile dimensions.
	tileW int
	tileH int

	// width is the pixel grid width.
	width int

	// height is the pixel grid height.
	height int

	// pool supplies tile buffers.
	pool *TilePool
}

// NewTileGrid creates a tile grid with the default 64x64 tile size.
func NewTileGrid(width, height int) *TileGrid {
	return NewTileGridSize(width, height, TileWidth, TileHeight)
}

// NewTileGridSize creates a tile grid with an explicit tile size.
// Non-positive tile dimensions fall back to the defaults. The grid contains
// enough tiles to cover the entire pixel area; edge tiles are clipped.
func NewTileGridSize(width, height, tileW, tileH int) *TileGrid {
	if tileW <= 0 {
		tileW = TileWidth
	}
	if tileH <= 0 {
		tileH = TileHeight
	}

	if width <= 0 || height <= 0 {
		return &TileGrid{
			tileW: tileW,
			tileH: tileH,
			pool:  NewTilePool(),
		}
	}

	tilesX := (width + tileW - 1) / tileW
	tilesY := (height + tileH - 1) / tileH

	g := &TileGrid{
		tiles:  make([]*Tile, tilesX*tilesY),
		tilesX: tilesX,
		tilesY: tilesY,
		tileW:  tileW,
		tileH:  tileH,
		width:  width,
		height: height,
		pool:   NewTilePool(),
	}

	g.allocateTiles()
	return g
}

// allocateTiles creates all tiles for the grid.
func (g *TileGrid) allocateTiles() {
	for ty := range g.tilesY {
		for tx := range g.tilesX {
			// Edge tiles are clipped to the grid bounds
			w := g.tileW
			h := g.tileH

			x0 := tx * g.tileW
			y0 := ty * g.tileH

			if x0+w > g.width {
				w = g.width - x0
			}
			if y0+h > g.height {
				h = g.height - y0
			}

			tile := g.pool.Get(w, h)
			tile.X0 = x0
			tile.Y0 = y0

			g.tiles[ty*g.tilesX+tx] = tile
		}
	}
}

// TileAt returns the tile at tile coordinates (tx, ty).
// Returns nil if coordinates are out of bounds.
func (g *TileGrid) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return g.tiles[ty*g.tilesX+tx]
}

// TileAtPixel returns the tile containing the grid-space pixel (px, py).
// Returns nil if coordinates are out of bounds.
func (g *TileGrid) TileAtPixel(px, py int) *Tile {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return nil
	}
	tx := px / g.tileW
	ty := py / g.tileH
	return g.tiles[ty*g.tilesX+tx]
}

// Tiles returns all tiles in row-major order.
// The returned slice should not be modified.
func (g *TileGrid) Tiles() []*Tile {
	return g.tiles
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int {
	return len(g.tiles)
}

// TilesX returns the number of tiles horizontally.
func (g *TileGrid) TilesX() int {
	return g.tilesX
}

// TilesY returns the number of tiles vertically.
func (g *TileGrid) TilesY() int {
	return g.tilesY
}

// TileSize returns the nominal tile dimensions.
func (g *TileGrid) TileSize() (w, h int) {
	return g.tileW, g.tileH
}

// Width returns the pixel grid width.
func (g *TileGrid) Width() int {
	return g.width
}

// Height returns the pixel grid height.
func (g *TileGrid) Height() int {
	return g.height
}

// ForEach calls fn for each tile in the grid.
// Tiles are visited in row-major order (left-to-right, top-to-bottom).
func (g *TileGrid) ForEach(fn func(tile *Tile)) {
	for _, tile := range g.tiles {
		if tile != nil {
			fn(tile)
		}
	}
}

// Close releases all tiles back to the pool.
// The grid should not be used after calling Close.
func (g *TileGrid) Close() {
	for i, tile := range g.tiles {
		if tile != nil {
			g.pool.Put(tile)
			g.tiles[i] = nil
		}
	}
}
