package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/mosaic"
	"github.com/gogpu/mosaic/integration/termview"
	"github.com/gogpu/mosaic/screen"
)

type showFlags struct {
	config    string
	rows      int
	cols      int
	scale     float64
	fit       bool
	wait      string
	resampler string
	caption   bool
	title     string
}

func (c *CLI) showCommand() *cobra.Command {
	var flags showFlags

	cmd := &cobra.Command{
		Use:   "show [files...]",
		Short: "Compose image files into a grid and display it",
		Long: `Compose equally sized image files into one grid and show it in the terminal.

Without --rows and --cols the grid has three columns; fewer images than that
share one row and a perfect square count forms a square.`,
		Example: `  mosaic show a.png b.png c.png d.png
  mosaic show --rows 1 --cols 3 --scale 0.5 left.jpg right.jpg
  mosaic show --wait 5s --caption frames/*.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.config)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}
			return c.runShow(cmd.Context(), args, cfg, flags, cmd.OutOrStdout(), cmd.InOrStdin())
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.config, "config", "", "config file (default $XDG_CONFIG_HOME/mosaic/config.toml)")
	f.IntVar(&flags.rows, "rows", 0, "grid rows (requires --cols)")
	f.IntVar(&flags.cols, "cols", 0, "grid columns (requires --rows)")
	f.Float64Var(&flags.scale, "scale", 1, "scale factor applied to the composed canvas")
	f.BoolVar(&flags.fit, "fit", false, "shrink the canvas to fit the primary screen")
	f.StringVar(&flags.wait, "wait", "key", `how long to show the canvas: "none", "key" or a duration`)
	f.StringVar(&flags.resampler, "resampler", "auto", "scaling filter: auto, area, nearest, bilinear, catmullrom")
	f.BoolVar(&flags.caption, "caption", false, "label each cell with its file name")
	f.StringVar(&flags.title, "title", "", "window title (default first file name)")

	return cmd
}

// apply copies the flags given on the command line over cfg.
func (f showFlags) apply(cmd *cobra.Command, cfg *Config) error {
	changed := cmd.Flags().Changed
	if changed("rows") {
		cfg.Rows = f.rows
	}
	if changed("cols") {
		cfg.Cols = f.cols
	}
	if changed("scale") {
		cfg.Scale = f.scale
	}
	if changed("fit") {
		cfg.Fit = f.fit
	}
	if changed("resampler") {
		cfg.Resampler = f.resampler
	}
	if changed("wait") {
		w, err := ParseWait(f.wait)
		if err != nil {
			return err
		}
		cfg.Wait = w
	}
	return nil
}

// layout returns the layout selected by cfg.
func (cfg Config) layout() (mosaic.Layout, error) {
	if cfg.Rows == 0 && cfg.Cols == 0 {
		return mosaic.Auto(), nil
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return mosaic.Layout{}, fmt.Errorf("%w: rows and cols must both be positive, got %dx%d",
			mosaic.ErrInvalidLayout, cfg.Rows, cfg.Cols)
	}
	return mosaic.Explicit(cfg.Rows, cfg.Cols), nil
}

func (c *CLI) runShow(ctx context.Context, paths []string, cfg Config, flags showFlags, out io.Writer, in io.Reader) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	layout, err := cfg.layout()
	if err != nil {
		return err
	}
	resampler, ok := mosaic.ParseResampler(cfg.Resampler)
	if !ok {
		return fmt.Errorf("unknown resampler %q", cfg.Resampler)
	}

	images, err := loadImages(ctx, paths)
	if err != nil {
		return err
	}
	logger.Debug("Loaded images", "count", len(images),
		"size", fmt.Sprintf("%dx%d", images[0].Width(), images[0].Height()),
		"channels", images[0].Channels())

	scale := cfg.Scale
	if cfg.Fit {
		scale, err = c.fitScale(ctx, len(images), images[0], layout, scale, cfg.Margin)
		if err != nil {
			return err
		}
	}

	opts := []mosaic.Option{
		mosaic.WithLayout(layout),
		mosaic.WithScale(scale),
		mosaic.WithResampler(resampler),
	}
	if flags.caption {
		captions := make([]string, len(paths))
		for i, p := range paths {
			captions[i] = captionFor(p)
		}
		opts = append(opts, mosaic.WithCaptions(captions...))
	}

	title := flags.title
	if title == "" {
		title = captionFor(paths[0])
	}

	sink := termview.New(termview.WithOutput(out), termview.WithInput(in))
	if err := mosaic.ComposeAndDisplay(ctx, sink, title, cfg.Wait.Duration(), images, opts...); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Composed %d images", len(images)))
	return nil
}

// fitScale lowers scale so the canvas fits on the primary screen. A missing
// display is logged and leaves scale unchanged.
func (c *CLI) fitScale(ctx context.Context, n int, cell *mosaic.Image, layout mosaic.Layout, scale, margin float64) (float64, error) {
	grid, err := mosaic.PlanGrid(n, layout)
	if err != nil {
		return 0, err
	}
	w := float64(grid.Cols*cell.Width()) * scale
	h := float64(grid.Rows*cell.Height()) * scale

	p := c.Screen
	if p == nil {
		p = screen.Primary()
	}
	fit, err := screen.FitScale(max(1, int(w)), max(1, int(h)), p, margin)
	if errors.Is(err, screen.ErrNoDisplay) {
		loggerFromContext(ctx).Warn("Cannot fit to screen", "err", err)
		return scale, nil
	}
	if err != nil {
		return 0, err
	}
	return scale * fit, nil
}
