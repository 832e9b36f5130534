package mandel

import (
	"strings"
	"testing"
)

func TestASCIIPreview_Shape(t *testing.T) {
	g, err := NewGrid(100, 100, 50)
	if err != nil {
		t.Fatal(err)
	}

	got := g.ASCIIPreview(40, 20)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("preview has %d lines, want 20", len(lines))
	}
	for i, line := range lines {
		if len(line) != 40 {
			t.Errorf("line %d has %d chars, want 40", i, len(line))
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("preview should end with a newline")
	}
}

func TestASCIIPreview_UniformInterior(t *testing.T) {
	// A grid saturated at the cap shades to solid white, which maps to
	// the brightest glyph.
	g, err := NewGrid(64, 64, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := range g.Counts() {
		g.Counts()[i] = 100
	}

	got := g.ASCIIPreview(10, 5)
	want := strings.Repeat(strings.Repeat("@", 10)+"\n", 5)
	if got != want {
		t.Errorf("uniform interior preview:\n%q\nwant:\n%q", got, want)
	}
}

func TestASCIIPreview_ZeroGrid(t *testing.T) {
	// An unrendered grid is black, which maps to spaces.
	g, err := NewGrid(64, 64, 100)
	if err != nil {
		t.Fatal(err)
	}

	got := g.ASCIIPreview(8, 4)
	want := strings.Repeat(strings.Repeat(" ", 8)+"\n", 4)
	if got != want {
		t.Errorf("zero grid preview:\n%q\nwant:\n%q", got, want)
	}
}

func TestASCIIPreview_InvalidSize(t *testing.T) {
	g, err := NewGrid(10, 10, 10)
	if err != nil {
		t.Fatal(err)
	}

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}} {
		if got := g.ASCIIPreview(dims[0], dims[1]); got != "" {
			t.Errorf("ASCIIPreview(%d, %d) = %q, want empty", dims[0], dims[1], got)
		}
	}
}

func TestASCIIPreview_CharsetRange(t *testing.T) {
	// Every glyph must come from the charset regardless of count mix.
	g, err := NewGrid(32, 32, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := range g.Counts() {
		g.Counts()[i] = int32(i%100 + 1)
	}

	got := g.ASCIIPreview(16, 8)
	for _, ch := range got {
		if ch == '\n' {
			continue
		}
		if !strings.ContainsRune(asciiCharset, ch) {
			t.Errorf("preview contains %q, not in charset %q", ch, asciiCharset)
		}
	}
}

func TestASCIICharset(t *testing.T) {
	// Ten glyphs cover the 0-255 range in bands of 26; a full-intensity
	// pixel must map to the last glyph without overflowing.
	if len(asciiCharset) != 10 {
		t.Fatalf("charset has %d glyphs, want 10", len(asciiCharset))
	}
	if idx := 255 / 26; idx != len(asciiCharset)-1 {
		t.Errorf("intensity 255 maps to index %d, want %d", idx, len(asciiCharset)-1)
	}
}
