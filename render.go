package mandel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/mandel/internal/parallel"
)

// ErrRendererClosed is returned by Render after Close has been called.
var ErrRendererClosed = errors.New("mandel: renderer is closed")

// Renderer computes escape-time grids using a pool of workers. A Renderer
// may be reused for any number of renders at different viewports and
// iteration caps; Close releases its workers.
//
// Render may be called from one goroutine at a time per Renderer.
// Separate Renderers are fully independent.
type Renderer struct {
	pool       *parallel.WorkerPool
	tileWidth  int
	tileHeight int
	onProgress ProgressFunc
}

// NewRenderer creates a renderer with the given options. With no options
// it uses one worker per available CPU and 64x64 tiles.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tw, th := o.tileWidth, o.tileHeight
	if tw <= 0 {
		tw = parallel.TileWidth
	}
	if th <= 0 {
		th = parallel.TileHeight
	}

	return &Renderer{
		pool:       parallel.NewWorkerPool(o.workers),
		tileWidth:  tw,
		tileHeight: th,
		onProgress: o.onProgress,
	}
}

// Workers returns the number of render workers.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Close shuts down the renderer's workers. The renderer cannot be used
// after Close; subsequent Render calls return ErrRendererClosed.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Render computes the escape-time count for every pixel of the viewport.
//
// The viewport's pixel grid is split into tiles that workers compute
// independently and composite into the returned grid. Output is fully
// deterministic: the same viewport and cap produce identical grids
// regardless of worker count or tile size.
func (r *Renderer) Render(vp Viewport, maxIter int) (*Grid, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIter)
	}
	if !r.pool.IsRunning() {
		return nil, ErrRendererClosed
	}

	grid, err := NewGrid(vp.Width, vp.Height, maxIter)
	if err != nil {
		return nil, err
	}

	tg := parallel.NewTileGridSize(vp.Width, vp.Height, r.tileWidth, r.tileHeight)
	defer tg.Close()

	tiles := tg.Tiles()
	progress := parallel.NewProgress(len(tiles), vp.Pixels())

	log := Logger()
	log.Info("render start",
		"viewport", vp.String(),
		"max_iter", maxIter,
		"tiles", len(tiles),
		"workers", r.pool.Workers())

	start := time.Now()
	work := make([]func(), len(tiles))
	for i, t := range tiles {
		work[i] = func() {
			renderTile(t, vp, maxIter)
			t.Composite(grid.counts, grid.width)
			if progress.Mark(i, t.Pixels()) && r.onProgress != nil {
				r.onProgress(progress.Completed(), progress.Total())
			}
		}
	}
	r.pool.ExecuteAll(work)
	elapsed := time.Since(start)

	log.Info("render done",
		"elapsed", elapsed,
		"pixels", vp.Pixels(),
		"mpixels_per_sec", float64(vp.Pixels())/elapsed.Seconds()/1e6)

	if log.Enabled(context.Background(), slog.LevelDebug) {
		s := grid.Stats()
		log.Debug("count distribution",
			"min", s.Min,
			"max", s.Max,
			"interior", s.Interior,
			"escaped", s.Escaped)
	}

	return grid, nil
}

// renderTile fills one tile with escape-time counts. Coordinates are
// derived from the global pixel index, so a pixel's value is independent
// of the tile layout it was computed under.
func renderTile(t *parallel.Tile, vp Viewport, maxIter int) {
	reStep := vp.RealStep()
	imStep := vp.ImagStep()
	for y := 0; y < t.Height; y++ {
		im := vp.ImagMin + float64(t.Y0+y)*imStep
		row := t.Row(y)
		for x := range row {
			re := vp.RealMin + float64(t.X0+x)*reStep
			row[x] = escapePoint(re, im, maxIter)
		}
	}
}

// Render renders the viewport with a temporary Renderer and returns the
// count grid. For repeated renders, create a Renderer once and reuse it.
func Render(vp Viewport, maxIter int, opts ...Option) (*Grid, error) {
	r := NewRenderer(opts...)
	defer r.Close()
	return r.Render(vp, maxIter)
}
