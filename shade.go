package mandel

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// ShadeMode controls how escape-time counts map to 8-bit grayscale.
//
// The default is ShadeLog, which normalizes logarithmically against the
// largest count present in the grid. Logarithmic shading keeps boundary
// detail visible at high iteration caps, where linear shading collapses
// most escaped pixels into near-black.
type ShadeMode int

const (
	// ShadeLog maps counts through log(1+count), normalized so the
	// grid's largest count becomes white (default).
	ShadeLog ShadeMode = iota

	// ShadeLinear maps counts proportionally: count/cap scaled to 0-255.
	// Interior pixels are exactly white.
	ShadeLinear

	// ShadeRaw uses the count itself as intensity, clamped to 255.
	// Useful for inspecting low-cap renders without normalization.
	ShadeRaw
)

// String returns the shade mode name.
func (m ShadeMode) String() string {
	switch m {
	case ShadeLog:
		return "log"
	case ShadeLinear:
		return "linear"
	case ShadeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseShadeMode converts a mode name to a ShadeMode. Parsing is
// case-insensitive and accepts the names reported by String.
func ParseShadeMode(s string) (ShadeMode, error) {
	switch strings.ToLower(s) {
	case "log":
		return ShadeLog, nil
	case "linear":
		return ShadeLinear, nil
	case "raw":
		return ShadeRaw, nil
	default:
		return ShadeLog, fmt.Errorf("mandel: unknown shade mode %q (valid: log, linear, raw)", s)
	}
}

// Image converts the count grid to an 8-bit grayscale image using the
// given shade mode. The returned image shares no memory with the grid.
func (g *Grid) Image(mode ShadeMode) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	switch mode {
	case ShadeLinear:
		g.shadeLinear(img)
	case ShadeRaw:
		g.shadeRaw(img)
	default:
		g.shadeLog(img)
	}
	return img
}

// shadeLog writes log-normalized intensities. Every count runs through
// log1p, then the result is scaled so the grid's largest count maps
// to 255. Dividing before scaling keeps the maximum at exactly 1.0,
// so the brightest pixel is always 255. An unrendered grid of zeros
// stays black.
func (g *Grid) shadeLog(img *image.Gray) {
	logMax := math.Log1p(float64(g.Max()))
	if logMax == 0 {
		return
	}
	for i, c := range g.counts {
		img.Pix[i] = uint8(math.Log1p(float64(c)) / logMax * 255)
	}
}

// shadeLinear writes count/cap scaled to 0-255.
func (g *Grid) shadeLinear(img *image.Gray) {
	cap64 := int64(g.maxIter)
	for i, c := range g.counts {
		v := int64(c) * 255 / cap64
		if v > 255 {
			v = 255
		}
		img.Pix[i] = uint8(v)
	}
}

// shadeRaw writes the counts themselves, clamped to 255.
func (g *Grid) shadeRaw(img *image.Gray) {
	for i, c := range g.counts {
		if c > 255 {
			img.Pix[i] = 255
		} else {
			img.Pix[i] = uint8(c)
		}
	}
}
