package parallel

import (
	"testing"
)

// =============================================================================
// TileGrid Tests
// =============================================================================

func TestTileGrid_Create(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantX, wantY  int
		wantTileCount int
	}{
		{"exact fit", 128, 128, 2, 2, 4},
		{"single tile", 64, 64, 1, 1, 1},
		{"small grid", 10, 10, 1, 1, 1},
		{"uneven width", 100, 64, 2, 1, 2},
		{"uneven both", 100, 100, 2, 2, 4},
		{"full hd", 1920, 1080, 30, 17, 510},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTileGrid(tt.width, tt.height)
			defer g.Close()

			if g.TilesX() != tt.wantX {
				t.Errorf("TilesX() = %d, want %d", g.TilesX(), tt.wantX)
			}
			if g.TilesY() != tt.wantY {
				t.Errorf("TilesY() = %d, want %d", g.TilesY(), tt.wantY)
			}
			if g.TileCount() != tt.wantTileCount {
				t.Errorf("TileCount() = %d, want %d", g.TileCount(), tt.wantTileCount)
			}
		})
	}
}

func TestTileGrid_CustomTileSize(t *testing.T) {
	g := NewTileGridSize(300, 200, 128, 128)
	defer g.Close()

	if g.TilesX() != 3 {
		t.Errorf("TilesX() = %d, want 3", g.TilesX())
	}
	if g.TilesY() != 2 {
		t.Errorf("TilesY() = %d, want 2", g.TilesY())
	}

	tw, th := g.TileSize()
	if tw != 128 || th != 128 {
		t.Errorf("TileSize() = (%d,%d), want (128,128)", tw, th)
	}

	// Right-edge tile is clipped to 300-256 = 44 pixels wide
	edge := g.TileAt(2, 0)
	if edge == nil {
		t.Fatal("TileAt(2,0) returned nil")
	}
	if edge.Width != 44 {
		t.Errorf("edge tile width = %d, want 44", edge.Width)
	}
	if edge.X0 != 256 {
		t.Errorf("edge tile X0 = %d, want 256", edge.X0)
	}

	// Bottom-edge tile is clipped to 200-128 = 72 pixels tall
	bottom := g.TileAt(0, 1)
	if bottom == nil {
		t.Fatal("TileAt(0,1) returned nil")
	}
	if bottom.Height != 72 {
		t.Errorf("bottom tile height = %d, want 72", bottom.Height)
	}
}

func TestTileGrid_InvalidTileSizeFallsBack(t *testing.T) {
	g := NewTileGridSize(128, 128, 0, -5)
	defer g.Close()

	tw, th := g.TileSize()
	if tw != TileWidth || th != TileHeight {
		t.Errorf("TileSize() = (%d,%d), want defaults (%d,%d)", tw, th, TileWidth, TileHeight)
	}
}

func TestTileGrid_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative width", -10, 100},
		{"negative height", 100, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTileGrid(tt.width, tt.height)
			if g.TileCount() != 0 {
				t.Errorf("TileCount() = %d, want 0", g.TileCount())
			}
		})
	}
}

func TestTileGrid_TilesCoverGrid(t *testing.T) {
	const width, height = 150, 90
	g := NewTileGrid(width, height)
	defer g.Close()

	// Every pixel must be covered by exactly one tile.
	covered := make([]int, width*height)
	g.ForEach(func(tile *Tile) {
		for y := tile.Y0; y < tile.Y0+tile.Height; y++ {
			for x := tile.X0; x < tile.X0+tile.Width; x++ {
				covered[y*width+x]++
			}
		}
	})

	for i, c := range covered {
		if c != 1 {
			t.Fatalf("pixel %d covered %d times, want exactly 1", i, c)
		}
	}
}

func TestTileGrid_TileAt(t *testing.T) {
	g := NewTileGrid(128, 128)
	defer g.Close()

	if tile := g.TileAt(0, 0); tile == nil {
		t.Error("TileAt(0,0) = nil, want tile")
	}
	if tile := g.TileAt(1, 1); tile == nil {
		t.Error("TileAt(1,1) = nil, want tile")
	}
	if tile := g.TileAt(-1, 0); tile != nil {
		t.Error("TileAt(-1,0) != nil, want nil")
	}
	if tile := g.TileAt(2, 0); tile != nil {
		t.Error("TileAt(2,0) != nil, want nil")
	}
}

func TestTileGrid_TileAtPixel(t *testing.T) {
	g := NewTileGrid(200, 200)
	defer g.Close()

	tests := []struct {
		name       string
		px, py     int
		wantOrigin [2]int
		wantNil    bool
	}{
		{"origin", 0, 0, [2]int{0, 0}, false},
		{"inside first", 63, 63, [2]int{0, 0}, false},
		{"second column", 64, 0, [2]int{64, 0}, false},
		{"second row", 0, 64, [2]int{0, 64}, false},
		{"last pixel", 199, 199, [2]int{192, 192}, false},
		{"out of bounds", 200, 0, [2]int{}, true},
		{"negative", -1, 0, [2]int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := g.TileAtPixel(tt.px, tt.py)
			if tt.wantNil {
				if tile != nil {
					t.Errorf("TileAtPixel(%d,%d) != nil, want nil", tt.px, tt.py)
				}
				return
			}
			if tile == nil {
				t.Fatalf("TileAtPixel(%d,%d) = nil, want tile", tt.px, tt.py)
			}
			if tile.X0 != tt.wantOrigin[0] || tile.Y0 != tt.wantOrigin[1] {
				t.Errorf("tile origin = (%d,%d), want (%d,%d)",
					tile.X0, tile.Y0, tt.wantOrigin[0], tt.wantOrigin[1])
			}
		})
	}
}

func TestTileGrid_Close(t *testing.T) {
	g := NewTileGrid(128, 128)
	g.Close()

	for i, tile := range g.Tiles() {
		if tile != nil {
			t.Errorf("tile %d not released after Close", i)
		}
	}
}
