package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/mchmarny/gauge/pkg/render/raster"
	"github.com/mchmarny/gauge/pkg/render/svg"
	"github.com/mchmarny/gauge/pkg/render/term"
	"github.com/mchmarny/gauge/pkg/slabs"
	"github.com/urfave/cli/v3"
)

const (
	chartSVG  = "svg"
	chartPNG  = "png"
	chartGIF  = "gif"
	chartTerm = "term"

	scoreFlagName   = "score"
	slabsFlagName   = "slabs"
	presetFlagName  = "preset"
	widthFlagName   = "width"
	animateFlagName = "animate"
	formatFlagName  = "format"
	outFlagName     = "out"
	fpsFlagName     = "fps"
	colsFlagName    = "cols"

	outFileMode = 0644
)

var (
	errUnsupportedChart = errors.New("unsupported chart format")
	errInvalidFPS       = errors.New("invalid frame rate")
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:   "render",
		Usage:  "Render a score as a gauge",
		Action: cmdRender,
		Flags: append([]cli.Flag{
			&cli.FloatFlag{
				Name:     scoreFlagName,
				Usage:    "Score to display",
				Required: true,
			},
		}, chartFlags()...),
	}
}

// chartFlags are shared by every command that draws a gauge.
func chartFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  slabsFlagName,
			Usage: "Slab file [yaml, json, toml] (overrides --preset)",
		},
		&cli.StringFlag{
			Name:  presetFlagName,
			Usage: "Built-in preset or config slab set name (default: config preset)",
		},
		&cli.FloatFlag{
			Name:  widthFlagName,
			Usage: "Chart width in pixels (default: config width)",
		},
		&cli.BoolFlag{
			Name:  animateFlagName,
			Usage: "Animate the pointer from the minimum (default: config animate)",
		},
		&cli.StringFlag{
			Name:  formatFlagName,
			Usage: "Chart format [svg, png, gif, term] (default: from --out extension or config)",
		},
		&cli.StringFlag{
			Name:    outFlagName,
			Aliases: []string{"o"},
			Usage:   "Output file (default: stdout)",
		},
		&cli.IntFlag{
			Name:  fpsFlagName,
			Usage: fmt.Sprintf("Animation frames per second, 1-%d (default: config fps)", gauge.MaxFPS),
		},
		&cli.IntFlag{
			Name:  colsFlagName,
			Usage: "Terminal gauge width in cells",
			Value: term.DefaultWidth,
		},
	}
}

type chartOptions struct {
	Width   float64
	Animate bool
	Format  string
	Out     string
	FPS     int
	Cols    int
}

func chartOptionsFrom(ctx context.Context, cmd *cli.Command) (*chartOptions, error) {
	cfg := getConfig(ctx).Config
	o := &chartOptions{
		Width:   cfg.Width,
		Animate: cfg.Animate,
		Format:  cfg.Format,
		Out:     cmd.String(outFlagName),
		FPS:     cfg.FPS,
		Cols:    cmd.Int(colsFlagName),
	}

	if cmd.IsSet(widthFlagName) {
		o.Width = cmd.Float(widthFlagName)
	}
	if cmd.IsSet(animateFlagName) {
		o.Animate = cmd.Bool(animateFlagName)
	}
	if cmd.IsSet(fpsFlagName) {
		o.FPS = cmd.Int(fpsFlagName)
		if o.FPS < 1 || o.FPS > gauge.MaxFPS {
			return nil, fmt.Errorf("%d not in [1, %d]: %w", o.FPS, gauge.MaxFPS, errInvalidFPS)
		}
	}

	switch {
	case cmd.IsSet(formatFlagName):
		o.Format = cmd.String(formatFlagName)
	case o.Out != "" && o.Out != "-":
		if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(o.Out)), "."); ext != "" {
			o.Format = ext
		}
	}

	o.Format = strings.ToLower(o.Format)
	switch o.Format {
	case chartSVG, chartPNG, chartGIF, chartTerm:
	default:
		return nil, fmt.Errorf("%q: %w", o.Format, errUnsupportedChart)
	}

	if o.Width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %v", o.Width)
	}
	return o, nil
}

func resolveSlabs(ctx context.Context, cmd *cli.Command) (gauge.Slabs, error) {
	if p := cmd.String(slabsFlagName); p != "" {
		return slabs.Load(p)
	}
	return getConfig(ctx).Config.SlabSet(cmd.String(presetFlagName))
}

func cmdRender(ctx context.Context, cmd *cli.Command) error {
	set, err := resolveSlabs(ctx, cmd)
	if err != nil {
		return err
	}

	o, err := chartOptionsFrom(ctx, cmd)
	if err != nil {
		return err
	}

	score := cmd.Float(scoreFlagName)
	if lo, hi := set.Domain(); score < lo || score > hi {
		slog.Warn("score outside slab domain", "score", score, "min", lo, "max", hi)
	}

	c := gauge.Render(o.Width, score, set, o.Animate)
	return writeChart(ctx, cmd.Root().Writer, c, o)
}

func writeChart(ctx context.Context, stdout io.Writer, c *gauge.Chart, o *chartOptions) error {
	toFile := o.Out != "" && o.Out != "-"

	// file output is buffered so a failed render leaves no partial file
	var buf bytes.Buffer
	w := stdout
	if toFile {
		w = &buf
	}

	slog.Debug("writing chart", "format", o.Format, "animated", c.Animated, "out", o.Out)

	var err error
	switch o.Format {
	case chartSVG:
		err = svg.Write(w, c, o.FPS)
	case chartPNG:
		err = raster.WritePNG(w, c)
	case chartGIF:
		err = raster.WriteGIF(ctx, w, c, o.FPS)
	case chartTerm:
		if c.Animated && !toFile {
			err = term.Animate(ctx, c, o.Cols, o.FPS, tea.WithOutput(w))
		} else {
			_, err = fmt.Fprintln(w, term.Render(c, c.Final(), o.Cols))
		}
	default:
		err = fmt.Errorf("%q: %w", o.Format, errUnsupportedChart)
	}
	if err != nil {
		return fmt.Errorf("error writing %s chart: %w", o.Format, err)
	}

	if !toFile {
		return nil
	}
	if err := os.WriteFile(o.Out, buf.Bytes(), outFileMode); err != nil {
		return fmt.Errorf("error writing %s: %w", o.Out, err)
	}
	slog.Info("chart written", "path", o.Out, "format", o.Format)
	return nil
}
