package parallel

import (
	"testing"
)

// =============================================================================
// Tile Tests
// =============================================================================

func TestTile_Constants(t *testing.T) {
	if TileWidth != 64 {
		t.Errorf("TileWidth = %d, want 64", TileWidth)
	}
	if TileHeight != 64 {
		t.Errorf("TileHeight = %d, want 64", TileHeight)
	}
	if TilePixels != 64*64 {
		t.Errorf("TilePixels = %d, want %d", TilePixels, 64*64)
	}
}

func TestTile_Bounds(t *testing.T) {
	tests := []struct {
		name         string
		tile         Tile
		wantX, wantY int
		wantW, wantH int
	}{
		{
			name:  "first tile",
			tile:  Tile{X0: 0, Y0: 0, Width: 64, Height: 64},
			wantX: 0, wantY: 0, wantW: 64, wantH: 64,
		},
		{
			name:  "second row first column",
			tile:  Tile{X0: 0, Y0: 64, Width: 64, Height: 64},
			wantX: 0, wantY: 64, wantW: 64, wantH: 64,
		},
		{
			name:  "edge tile",
			tile:  Tile{X0: 128, Y0: 192, Width: 32, Height: 16},
			wantX: 128, wantY: 192, wantW: 32, wantH: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.tile.Bounds()
			if x != tt.wantX || y != tt.wantY || w != tt.wantW || h != tt.wantH {
				t.Errorf("Bounds() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, w, h, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTile_Offset(t *testing.T) {
	tile := &Tile{Width: 64, Height: 64, Counts: make([]int32, TilePixels)}

	tests := []struct {
		name   string
		px, py int
		want   int
	}{
		{"top-left", 0, 0, 0},
		{"second pixel", 1, 0, 1},
		{"second row", 0, 1, 64},
		{"middle", 32, 32, 32*64 + 32},
		{"out of bounds negative x", -1, 0, -1},
		{"out of bounds negative y", 0, -1, -1},
		{"out of bounds x", 64, 0, -1},
		{"out of bounds y", 0, 64, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tile.Offset(tt.px, tt.py)
			if got != tt.want {
				t.Errorf("Offset(%d,%d) = %d, want %d", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestTile_Contains(t *testing.T) {
	tile := &Tile{X0: 64, Y0: 64, Width: 64, Height: 64}

	tests := []struct {
		name   string
		gx, gy int
		want   bool
	}{
		{"inside", 96, 96, true},
		{"top-left corner", 64, 64, true},
		{"bottom-right inside", 127, 127, true},
		{"outside left", 63, 96, false},
		{"outside right", 128, 96, false},
		{"outside top", 96, 63, false},
		{"outside bottom", 96, 128, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tile.Contains(tt.gx, tt.gy)
			if got != tt.want {
				t.Errorf("Contains(%d,%d) = %v, want %v", tt.gx, tt.gy, got, tt.want)
			}
		})
	}
}

func TestTile_Reset(t *testing.T) {
	tile := &Tile{Width: 4, Height: 4, Counts: make([]int32, 16)}
	for i := range tile.Counts {
		tile.Counts[i] = int32(i + 1)
	}

	tile.Reset()

	for i, v := range tile.Counts {
		if v != 0 {
			t.Fatalf("Counts[%d] = %d after Reset, want 0", i, v)
		}
	}
}

func TestTile_Row(t *testing.T) {
	tile := &Tile{Width: 4, Height: 3, Counts: make([]int32, 12)}
	for i := range tile.Counts {
		tile.Counts[i] = int32(i)
	}

	row := tile.Row(1)
	if len(row) != 4 {
		t.Fatalf("Row(1) length = %d, want 4", len(row))
	}
	for i, v := range row {
		want := int32(4 + i)
		if v != want {
			t.Errorf("Row(1)[%d] = %d, want %d", i, v, want)
		}
	}

	// Row aliases the tile buffer
	row[2] = 99
	if tile.Counts[6] != 99 {
		t.Errorf("Counts[6] = %d after writing through Row, want 99", tile.Counts[6])
	}
}

func TestTile_Composite(t *testing.T) {
	// 3x2 tile at grid position (2, 1) inside a 8-wide grid
	tile := &Tile{
		X0:     2,
		Y0:     1,
		Width:  3,
		Height: 2,
		Counts: []int32{1, 2, 3, 4, 5, 6},
	}

	const gridW, gridH = 8, 4
	dst := make([]int32, gridW*gridH)

	tile.Composite(dst, gridW)

	want := map[int]int32{
		1*gridW + 2: 1,
		1*gridW + 3: 2,
		1*gridW + 4: 3,
		2*gridW + 2: 4,
		2*gridW + 3: 5,
		2*gridW + 4: 6,
	}

	for i, v := range dst {
		if w, ok := want[i]; ok {
			if v != w {
				t.Errorf("dst[%d] = %d, want %d", i, v, w)
			}
		} else if v != 0 {
			t.Errorf("dst[%d] = %d, want 0 (outside tile)", i, v)
		}
	}
}

func TestTile_Composite_Disjoint(t *testing.T) {
	// Two adjacent tiles compositing concurrently must not interfere.
	const gridW, gridH = 8, 4
	dst := make([]int32, gridW*gridH)

	left := &Tile{X0: 0, Y0: 0, Width: 4, Height: 4, Counts: make([]int32, 16)}
	right := &Tile{X0: 4, Y0: 0, Width: 4, Height: 4, Counts: make([]int32, 16)}
	for i := range left.Counts {
		left.Counts[i] = 1
		right.Counts[i] = 2
	}

	done := make(chan struct{}, 2)
	go func() { left.Composite(dst, gridW); done <- struct{}{} }()
	go func() { right.Composite(dst, gridW); done <- struct{}{} }()
	<-done
	<-done

	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			want := int32(1)
			if x >= 4 {
				want = 2
			}
			if got := dst[y*gridW+x]; got != want {
				t.Fatalf("dst[%d,%d] = %d, want %d", x, y, got, want)
			}
		}
	}
}
