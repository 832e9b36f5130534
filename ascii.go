package mandel

import (
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// asciiCharset orders glyphs from darkest to brightest. Each 26-intensity
// band of the 0-255 range maps to one glyph.
const asciiCharset = " .:-=+*#%@"

// ASCIIPreview renders the grid as a block of ASCII art, cols glyphs wide
// and rows lines tall, using the default log shading. The grid is
// downscaled with a Catmull-Rom kernel so large renders stay readable at
// terminal sizes. Each line ends with a newline; non-positive dimensions
// return an empty string.
func (g *Grid) ASCIIPreview(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	src := g.Image(ShadeLog)
	small := image.NewGray(image.Rect(0, 0, cols, rows))
	xdraw.CatmullRom.Scale(small, small.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	var b strings.Builder
	b.Grow(rows * (cols + 1))
	for y := 0; y < rows; y++ {
		row := small.Pix[y*small.Stride : y*small.Stride+cols]
		for _, px := range row {
			b.WriteByte(asciiCharset[int(px)/26])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
