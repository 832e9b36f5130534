// Package mandel renders grayscale images of the Mandelbrot set.
//
// # Overview
//
// mandel computes escape-time iteration counts for a rectangular region
// of the complex plane and converts them into grayscale images. Rendering
// is tile-parallel: the pixel grid is split into fixed-size tiles that are
// computed concurrently by a work-stealing worker pool, then composited
// into a single count grid.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	// Describe the region of the plane and the output resolution.
//	vp, err := mandel.NewViewport(-2, 1, -1.5, 1.5, 640, 480)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Render escape-time counts.
//	r := mandel.NewRenderer()
//	defer r.Close()
//	grid, err := r.Render(vp, 1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Save as a grayscale PNG.
//	grid.SavePNG("mandelbrot.png")
//
// # Escape-Time Semantics
//
// For each pixel the recurrence z ← z² + c is iterated from z = 0, where c
// is the complex point the pixel maps to. The divergence test |z|² > 4 runs
// before every application of the recurrence. A point that escapes yields
// the number of completed applications; a point that never escapes within
// the iteration cap yields the cap itself. Intensities therefore fall in
// [1, cap] for any valid viewport and cap.
//
// # Coordinate System
//
// Pixel (0, 0) is the top-left corner of the image and maps to
// (RealMin, ImagMin). Column index grows along the real axis, row index
// along the imaginary axis:
//
//	re = RealMin + col*(RealMax-RealMin)/width
//	im = ImagMin + row*(ImagMax-ImagMin)/height
//
// The sampled points form a half-open lattice: RealMax and ImagMax are
// never sampled.
//
// # Shading
//
// Raw counts are turned into 8-bit grayscale by a ShadeMode. The default,
// ShadeLog, normalizes log(1+count) against the largest count present in
// the grid, which keeps detail visible near the set boundary at high
// iteration caps. ShadeLinear and ShadeRaw are also available.
//
// # Concurrency
//
// A Renderer owns a worker pool and may be reused for many renders. Render
// itself is safe to call from one goroutine at a time per Renderer;
// separate Renderers are fully independent.
package mandel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
