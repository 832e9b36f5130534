package mandel

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default: one worker per CPU, 64x64 tiles
//	r := mandel.NewRenderer()
//
//	// Custom worker count and tile size
//	r := mandel.NewRenderer(mandel.WithWorkers(4), mandel.WithTileSize(128))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers    int
	tileWidth  int
	tileHeight int
	onProgress ProgressFunc
}

// ProgressFunc receives completion updates during a render. It is called
// once per finished tile with the number of pixels completed so far and
// the render's total pixel count. Calls arrive from worker goroutines;
// implementations must be safe for concurrent use and should return
// quickly.
type ProgressFunc func(completed, total int64)

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		workers:    0, // one worker per CPU
		tileWidth:  0, // package default tile size
		tileHeight: 0,
	}
}

// WithWorkers sets the number of render workers. Zero or negative uses
// one worker per available CPU.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithTileSize sets the square tile edge length in pixels. Smaller tiles
// spread uneven work more evenly across workers at the cost of more
// scheduling overhead. Zero or negative uses the package default of 64.
func WithTileSize(size int) Option {
	return func(o *rendererOptions) {
		o.tileWidth = size
		o.tileHeight = size
	}
}

// WithProgress registers a callback for per-tile completion updates.
//
// Example:
//
//	r := mandel.NewRenderer(mandel.WithProgress(func(done, total int64) {
//	    fmt.Printf("\r%.0f%%", float64(done)/float64(total)*100)
//	}))
func WithProgress(fn ProgressFunc) Option {
	return func(o *rendererOptions) {
		o.onProgress = fn
	}
}
