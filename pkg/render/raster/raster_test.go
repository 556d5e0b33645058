package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"math"
	"testing"

	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlabs() gauge.Slabs {
	return gauge.Slabs{
		{Min: 0, Max: 40, Color: "#e74c3c", Assessment: "Poor"},
		{Min: 40, Max: 60, Color: "#e67e22", Assessment: "Fair"},
		{Min: 60, Max: 80, Color: "#f1c40f", Assessment: "Good"},
		{Min: 80, Max: 100, Color: "#2ecc71", Assessment: "Excellent"},
	}
}

func near(t *testing.T, want color.RGBA, got color.Color) {
	t.Helper()
	r, g, b, _ := got.RGBA()
	assert.InDelta(t, want.R, uint8(r>>8), 12)
	assert.InDelta(t, want.G, uint8(g>>8), 12)
	assert.InDelta(t, want.B, uint8(b>>8), 12)
}

func TestSize(t *testing.T) {
	w, h, err := Size(gauge.Render(400, 50, testSlabs(), false))
	require.NoError(t, err)
	assert.Equal(t, 400, w)
	assert.Equal(t, 250, h)

	_, _, err = Size(gauge.Render(math.NaN(), 50, testSlabs(), false))
	assert.Error(t, err)

	_, _, err = Size(nil)
	assert.Error(t, err)
}

func TestDraw(t *testing.T) {
	c := gauge.Render(400, 50, testSlabs(), false)
	img, err := Draw(c, c.Final())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 250), img.Bounds())

	near(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff}, img.At(2, 2))

	// middle of the band at score 20, well clear of the pointer
	p := gauge.Polar(c.Layout.TrackRadius(), c.Scales().ScoreToRadian.Apply(20))
	x := int(math.Round(c.Layout.OriginX + p.X))
	y := int(math.Round(c.Layout.OriginY + p.Y))
	near(t, color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c}, img.At(x, y))

	// pointer center is filled white
	pc := c.Pointer.Center(c.Pointer.Rotation)
	near(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff},
		img.At(int(math.Round(c.Layout.OriginX+pc.X)), int(math.Round(c.Layout.OriginY+pc.Y))))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, gauge.Render(300, 75, testSlabs(), false)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())

	assert.Error(t, WritePNG(&buf, nil))
}

func TestWriteGIF(t *testing.T) {
	c := gauge.Render(200, 90, testSlabs(), true)
	fps := 5

	var buf bytes.Buffer
	require.NoError(t, WriteGIF(context.Background(), &buf, c, fps))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, len(c.Timeline.Frames(fps)))
	assert.Equal(t, 20, anim.Delay[0])
	assert.Equal(t, finalHold, anim.Delay[len(anim.Delay)-1])
}

func TestWriteGIFStatic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGIF(context.Background(), &buf, gauge.Render(200, 10, testSlabs(), false), 0))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 1)
}

func TestWriteGIFCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteGIF(ctx, &bytes.Buffer{}, gauge.Render(200, 90, testSlabs(), true), 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPalette(t *testing.T) {
	pal := Palette(gauge.Render(200, 90, testSlabs(), false))
	assert.LessOrEqual(t, len(pal), 256)
	assert.Contains(t, pal, color.Color(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
	assert.Contains(t, pal, color.Color(color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}))

	many := make(gauge.Slabs, 0, 40)
	for i := 0; i < 40; i++ {
		many = append(many, gauge.Slab{Min: float64(i), Max: float64(i + 1), Color: "red"})
	}
	assert.Len(t, Palette(gauge.Render(200, 1, many, false)), 256)
}
