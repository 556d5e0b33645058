package raster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"log/slog"
	"runtime"

	"github.com/mchmarny/gauge/pkg/colors"
	"github.com/mchmarny/gauge/pkg/gauge"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultFPS is the frame rate of animated GIFs.
	DefaultFPS = 20

	// finalHold is how long, in hundredths of a second, the last frame is
	// shown before the GIF stops.
	finalHold = 300

	shadesPerColor = 8
)

// WriteGIF draws every frame of the chart timeline at fps frames per second
// and writes them to w as a GIF that plays once. A static chart produces a
// single frame. Frames are rasterised concurrently.
func WriteGIF(ctx context.Context, w io.Writer, c *gauge.Chart, fps int) error {
	if c == nil {
		return errNilChart
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	fps = gauge.ClampFPS(fps)

	frames := []gauge.Frame{c.Final()}
	if c.Timeline != nil {
		frames = c.Timeline.Frames(fps)
	}

	pal := Palette(c)
	images := make([]*image.Paletted, len(frames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, f := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Draw(c, f)
			if err != nil {
				return fmt.Errorf("error drawing frame %d: %w", i, err)
			}
			p := image.NewPaletted(img.Bounds(), pal)
			draw.Draw(p, p.Rect, img, img.Bounds().Min, draw.Src)
			images[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	anim := &gif.GIF{
		Image:     images,
		Delay:     make([]int, len(images)),
		LoopCount: -1,
	}
	step := 100 / fps
	if step < 1 {
		step = 1
	}
	for i := range anim.Delay {
		anim.Delay[i] = step
	}
	anim.Delay[len(anim.Delay)-1] = finalHold

	slog.Debug("gif frames drawn", "frames", len(images), "fps", fps, "palette", len(pal))

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("error encoding gif: %w", err)
	}
	return nil
}

// Palette returns the colors used to quantize frames of c: every color the
// chart draws with, each with shades towards the background for the
// anti-aliased edges. Charts with too many slabs fall back to Plan9.
func Palette(c *gauge.Chart) color.Palette {
	base := []string{Background, textColor, limitColor, pointerFill}
	for _, a := range c.Arcs {
		base = append(base, a.Slab.Color)
	}
	if len(base)*shadesPerColor > 256 {
		return palette.Plan9
	}

	seen := make(map[color.RGBA]bool)
	pal := make(color.Palette, 0, len(base)*shadesPerColor)
	for _, b := range base {
		for k := 0; k < shadesPerColor; k++ {
			alpha := float64(k+1) / shadesPerColor
			rgba := colors.RGBA(colors.Fade(b, Background, alpha))
			if seen[rgba] {
				continue
			}
			seen[rgba] = true
			pal = append(pal, rgba)
		}
	}
	return pal
}
