// Package raster draws charts to images with gogpu/gg: a PNG of the final
// state, or an animated GIF of the whole timeline.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"sync"

	"fortio.org/safecast"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/mchmarny/gauge/pkg/colors"
	"github.com/mchmarny/gauge/pkg/gauge"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// Background is the color the meter is drawn over.
	Background = "#ffffff"

	textColor   = "#333333"
	limitColor  = "#777777"
	pointerFill = "#ffffff"

	outlineSteps = 32
)

var (
	errNilChart = errors.New("chart required")

	fontsOnce sync.Once
	regular   *text.FontSource
	bold      *text.FontSource
	errFonts  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regular, errFonts = text.NewFontSource(goregular.TTF); errFonts != nil {
			errFonts = fmt.Errorf("error loading regular font: %w", errFonts)
			return
		}
		if bold, errFonts = text.NewFontSource(gobold.TTF); errFonts != nil {
			errFonts = fmt.Errorf("error loading bold font: %w", errFonts)
		}
	})
	return errFonts
}

// Size returns the pixel dimensions of the canvas for c.
func Size(c *gauge.Chart) (width, height int, err error) {
	if c == nil {
		return 0, 0, errNilChart
	}
	if width, err = safecast.Convert[int](math.Ceil(c.Layout.Width)); err != nil {
		return 0, 0, fmt.Errorf("invalid width %v: %w", c.Layout.Width, err)
	}
	if height, err = safecast.Convert[int](math.Ceil(c.Layout.Height)); err != nil {
		return 0, 0, fmt.Errorf("invalid height %v: %w", c.Layout.Height, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return width, height, nil
}

// Draw returns the image of c in the state described by f.
func Draw(c *gauge.Chart, f gauge.Frame) (image.Image, error) {
	width, height, err := Size(c)
	if err != nil {
		return nil, err
	}
	if err := loadFonts(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.SetColor(colors.RGBA(Background))
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("error filling background: %w", err)
	}

	ox, oy := c.Layout.OriginX, c.Layout.OriginY

	for _, a := range c.Arcs {
		pts := a.Outline(outlineSteps)
		dc.MoveTo(ox+pts[0].X, oy+pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(ox+p.X, oy+p.Y)
		}
		dc.ClosePath()
		dc.SetColor(colors.RGBA(a.Slab.Color))
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("error filling arc %d: %w", a.Index, err)
		}
	}

	if len(c.Arcs) == 0 {
		return cloneImage(dc.Image()), nil
	}

	center := c.Pointer.Center(f.Rotation)
	dc.DrawCircle(ox+center.X, oy+center.Y, c.Pointer.Radius)
	dc.SetColor(colors.RGBA(pointerFill))
	if err := dc.FillPreserve(); err != nil {
		return nil, fmt.Errorf("error filling pointer: %w", err)
	}
	dc.SetColor(colors.RGBA(f.Stroke))
	dc.SetLineWidth(c.Pointer.StrokeWidth)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("error stroking pointer: %w", err)
	}

	fontSize := c.Layout.FontSize
	drawLabel(dc, regular, fontSize*c.MinLimit.Em, limitColor, c.MinLimit.Text, ox+c.MinLimit.X, oy+c.MinLimit.DY)
	drawLabel(dc, regular, fontSize*c.MaxLimit.Em, limitColor, c.MaxLimit.Text, ox+c.MaxLimit.X, oy+c.MaxLimit.DY)
	drawLabel(dc, bold, fontSize*c.ScoreDisplay.Em, textColor, f.ScoreText, ox+c.ScoreDisplay.X, oy+c.ScoreDisplay.DY)
	drawLabel(dc, regular, fontSize*c.Assessment.Em, textColor, f.Assessment, ox+c.Assessment.X, oy+c.Assessment.DY)

	return cloneImage(dc.Image()), nil
}

// drawLabel centers s horizontally on x with its baseline at y.
func drawLabel(dc *gg.Context, src *text.FontSource, size float64, col, s string, x, y float64) {
	if s == "" || size <= 0 {
		return
	}
	dc.SetFont(src.Face(size))
	dc.SetColor(colors.RGBA(col))
	dc.DrawStringAnchored(s, x, y, 0.5, 0)
}

// cloneImage copies img out of the context so it survives Close.
func cloneImage(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}

// WritePNG draws the final state of c to w as PNG.
func WritePNG(w io.Writer, c *gauge.Chart) error {
	if c == nil {
		return errNilChart
	}
	img, err := Draw(c, c.Final())
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}
	return nil
}
