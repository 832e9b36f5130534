package mandel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSize indicates a viewport with a non-positive pixel dimension.
	ErrInvalidSize = errors.New("mandel: width and height must be positive")

	// ErrInvalidRegion indicates a viewport whose plane bounds are non-finite,
	// empty or inverted on at least one axis.
	ErrInvalidRegion = errors.New("mandel: invalid region bounds")

	// ErrInvalidIterations indicates a non-positive iteration cap.
	ErrInvalidIterations = errors.New("mandel: iteration cap must be positive")
)

// Viewport describes a rectangular region of the complex plane together
// with the pixel resolution it is sampled at.
//
// The region is half-open on both axes: pixel columns sample real values
// in [RealMin, RealMax) and pixel rows sample imaginary values in
// [ImagMin, ImagMax). Row 0 is the top of the image and maps to ImagMin.
type Viewport struct {
	RealMin float64
	RealMax float64
	ImagMin float64
	ImagMax float64

	Width  int
	Height int
}

// NewViewport creates a viewport over the given plane region at the given
// pixel resolution. It returns ErrInvalidSize if either dimension is not
// positive, and ErrInvalidRegion if either axis has min >= max.
func NewViewport(realMin, realMax, imagMin, imagMax float64, width, height int) (Viewport, error) {
	vp := Viewport{
		RealMin: realMin,
		RealMax: realMax,
		ImagMin: imagMin,
		ImagMax: imagMax,
		Width:   width,
		Height:  height,
	}
	if err := vp.Validate(); err != nil {
		return Viewport{}, err
	}
	return vp, nil
}

// ViewportAround creates a viewport centered on (centerRe, centerIm) that
// spans extent along the imaginary axis. The real-axis span is scaled by
// the pixel aspect ratio, so plane distances per pixel are equal on both
// axes. The extent must be positive.
func ViewportAround(centerRe, centerIm, extent float64, width, height int) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	halfIm := extent / 2
	halfRe := halfIm * float64(width) / float64(height)
	return NewViewport(
		centerRe-halfRe, centerRe+halfRe,
		centerIm-halfIm, centerIm+halfIm,
		width, height,
	)
}

// Validate reports whether the viewport describes a renderable region.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, v.Width, v.Height)
	}
	if !isFinite(v.RealMin) || !isFinite(v.RealMax) || !isFinite(v.ImagMin) || !isFinite(v.ImagMax) {
		return fmt.Errorf("%w: non-finite bound", ErrInvalidRegion)
	}
	if v.RealMin >= v.RealMax {
		return fmt.Errorf("%w: real [%g, %g)", ErrInvalidRegion, v.RealMin, v.RealMax)
	}
	if v.ImagMin >= v.ImagMax {
		return fmt.Errorf("%w: imag [%g, %g)", ErrInvalidRegion, v.ImagMin, v.ImagMax)
	}
	return nil
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// RealStep returns the plane distance between horizontally adjacent pixels.
func (v Viewport) RealStep() float64 {
	return (v.RealMax - v.RealMin) / float64(v.Width)
}

// ImagStep returns the plane distance between vertically adjacent pixels.
func (v Viewport) ImagStep() float64 {
	return (v.ImagMax - v.ImagMin) / float64(v.Height)
}

// PointAt returns the complex point sampled by pixel (col, row).
// Indices are not bounds-checked; callers iterate over the pixel grid.
func (v Viewport) PointAt(col, row int) complex128 {
	re := v.RealMin + float64(col)*v.RealStep()
	im := v.ImagMin + float64(row)*v.ImagStep()
	return complex(re, im)
}

// Pixels returns the total pixel count of the viewport.
func (v Viewport) Pixels() int64 {
	return int64(v.Width) * int64(v.Height)
}

// String returns a compact description for logs and error messages.
func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d over real [%g, %g) imag [%g, %g)",
		v.Width, v.Height, v.RealMin, v.RealMax, v.ImagMin, v.ImagMax)
}
