// Command mandelrender renders grayscale images of the Mandelbrot set.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gogpu/mandel"
)

// previewCols and previewRows size the terminal ASCII preview.
const (
	previewCols = 40
	previewRows = 20
)

type config struct {
	width   int
	height  int
	maxIter int

	realMin float64
	realMax float64
	imagMin float64
	imagMax float64

	view   string
	center string
	extent float64

	output  string
	shade   string
	tile    int
	workers int

	ascii   bool
	quiet   bool
	verbose bool
}

func mainCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "mandelrender",
		Short: "Render grayscale images of the Mandelbrot set",
		Long: `mandelrender computes escape-time iteration counts for a region of the
complex plane and writes them as a grayscale image.

The region can be given three ways, in order of precedence:

  --view <name>          a named landmark region
  --center re,im         a center point with --extent as the imaginary span
  --real-min/--real-max/--imag-min/--imag-max   explicit bounds

Known regions: ` + strings.Join(mandel.RegionNames(), ", ") + `.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.width, "width", 640, "image width in pixels")
	flags.IntVar(&cfg.height, "height", 480, "image height in pixels")
	flags.IntVar(&cfg.maxIter, "iter", 1000, "iteration cap")
	flags.Float64Var(&cfg.realMin, "real-min", mandel.Overview.RealMin, "lower real bound")
	flags.Float64Var(&cfg.realMax, "real-max", mandel.Overview.RealMax, "upper real bound")
	flags.Float64Var(&cfg.imagMin, "imag-min", mandel.Overview.ImagMin, "lower imaginary bound")
	flags.Float64Var(&cfg.imagMax, "imag-max", mandel.Overview.ImagMax, "upper imaginary bound")
	flags.StringVar(&cfg.view, "view", "", "named region (overrides bounds)")
	flags.StringVar(&cfg.center, "center", "", "center point as re,im (overrides bounds)")
	flags.Float64Var(&cfg.extent, "extent", 2.5, "imaginary-axis span used with --center")
	flags.StringVarP(&cfg.output, "output", "o", "mandelbrot.png", "output image file (png, jpg, bmp, tif)")
	flags.StringVar(&cfg.shade, "shade", "log", "shading mode: log, linear or raw")
	flags.IntVar(&cfg.tile, "tile", 64, "square tile edge length in pixels")
	flags.IntVar(&cfg.workers, "workers", 0, "render workers (0 = one per CPU)")
	flags.BoolVar(&cfg.ascii, "ascii", false, "print an ASCII preview after rendering")
	flags.BoolVar(&cfg.quiet, "quiet", false, "suppress progress bar and summary")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging to stderr")

	return cmd
}

func run(cmd *cobra.Command, cfg *config) error {
	if cfg.verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	vp, err := resolveViewport(cmd, cfg)
	if err != nil {
		return err
	}

	mode, err := mandel.ParseShadeMode(cfg.shade)
	if err != nil {
		return err
	}

	opts := []mandel.Option{
		mandel.WithWorkers(cfg.workers),
		mandel.WithTileSize(cfg.tile),
	}

	var bar *progressbar.ProgressBar
	if !cfg.quiet {
		bar = progressbar.NewOptions64(vp.Pixels(),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("px"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		opts = append(opts, mandel.WithProgress(func(completed, _ int64) {
			_ = bar.Set64(completed)
		}))
	}

	r := mandel.NewRenderer(opts...)
	defer r.Close()

	start := time.Now()
	grid, err := r.Render(vp, cfg.maxIter)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if bar != nil {
		_ = bar.Finish()
	}

	if err := grid.Save(cfg.output, mode); err != nil {
		return err
	}

	if cfg.ascii {
		fmt.Print(grid.ASCIIPreview(previewCols, previewRows))
	}

	if !cfg.quiet {
		printSummary(vp, grid, cfg.maxIter, elapsed, cfg.output)
	}
	return nil
}

// resolveViewport picks the plane region from the highest-precedence flag
// group the user supplied.
func resolveViewport(cmd *cobra.Command, cfg *config) (mandel.Viewport, error) {
	if cfg.view != "" {
		region, err := mandel.LookupRegion(cfg.view)
		if err != nil {
			return mandel.Viewport{}, err
		}
		return region.Viewport(cfg.width, cfg.height)
	}

	if cmd.Flags().Changed("center") {
		re, im, err := parsePoint(cfg.center)
		if err != nil {
			return mandel.Viewport{}, err
		}
		return mandel.ViewportAround(re, im, cfg.extent, cfg.width, cfg.height)
	}

	return mandel.NewViewport(cfg.realMin, cfg.realMax, cfg.imagMin, cfg.imagMax, cfg.width, cfg.height)
}

// parsePoint parses "re,im" into its two float components.
func parsePoint(s string) (re, im float64, err error) {
	reStr, imStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q: want re,im", s)
	}
	re, err = strconv.ParseFloat(strings.TrimSpace(reStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid real part in %q: %w", s, err)
	}
	im, err = strconv.ParseFloat(strings.TrimSpace(imStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid imaginary part in %q: %w", s, err)
	}
	return re, im, nil
}

func printSummary(vp mandel.Viewport, grid *mandel.Grid, maxIter int, elapsed time.Duration, output string) {
	mpxPerSec := float64(vp.Pixels()) / elapsed.Seconds() / 1e6
	fmt.Printf("rendered %s at %d iterations in %.2fs (%.2f Mpx/s)\n",
		vp, maxIter, elapsed.Seconds(), mpxPerSec)

	s := grid.Stats()
	interiorPct := float64(s.Interior) / float64(vp.Pixels()) * 100
	fmt.Printf("counts: min %d, max %d, interior %d px (%.1f%%)\n",
		s.Min, s.Max, s.Interior, interiorPct)
	fmt.Printf("wrote %s\n", output)
}

func main() {
	ctx := context.Background()

	if err := mainCmd().ExecuteContext(ctx); err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
