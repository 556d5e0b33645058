package gauge

import (
	"math"
)

const (
	// PadPercent is the gap left between slab arcs, in percent of the half turn.
	PadPercent = 1.0

	// SnapPercent is how far, in percent of the score range, the pointer is
	// kept away from a slab edge.
	SnapPercent = 2.5

	heightRatio      = 2 * 0.8
	innerRadiusRatio = 0.4
	arcWidthRatio    = 0.05
	fontSizeRatio    = 0.02
	originYRatio     = 4.0 / 5.0
)

// Font sizes of the text elements, relative to the base font size.
const (
	ScoreDisplayEm = 4.0
	AssessmentEm   = 1.6
	LimitEm        = 1.2
)

// Layout is the pixel geometry of a meter of a given width. Coordinates of
// the chart elements are relative to the origin (OriginX, OriginY), the
// center of the arc.
type Layout struct {
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	OriginX     float64 `json:"originX" yaml:"originX"`
	OriginY     float64 `json:"originY" yaml:"originY"`
	InnerRadius float64 `json:"innerRadius" yaml:"innerRadius"`
	ArcWidth    float64 `json:"arcWidth" yaml:"arcWidth"`
	FontSize    float64 `json:"fontSize" yaml:"fontSize"`
}

// NewLayout derives the meter geometry from its width.
func NewLayout(width float64) Layout {
	height := width / heightRatio
	inner := width * innerRadiusRatio
	return Layout{
		Width:       width,
		Height:      height,
		OriginX:     width / 2,
		OriginY:     height * originYRatio,
		InnerRadius: inner,
		ArcWidth:    inner * arcWidthRatio,
		FontSize:    roundFixed(width*fontSizeRatio, 1),
	}
}

// FontSizeCSS returns the base font size as a CSS length.
func (l Layout) FontSizeCSS() string {
	return formatFixed(l.FontSize, 1) + "px"
}

// TrackRadius is the radius of the center line of the slab band; the
// pointer travels along it.
func (l Layout) TrackRadius() float64 {
	return l.InnerRadius - l.ArcWidth/2
}

// PointerRadius is the radius of the circular pointer.
func (l Layout) PointerRadius() float64 {
	return l.ArcWidth * 0.8
}

// PointerStrokeWidth is the width of the pointer outline.
func (l Layout) PointerStrokeWidth() float64 {
	return l.ArcWidth / 1.5
}

// Point is a position relative to the chart origin, y growing downwards.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Polar returns the point at radius r and angle a, where a is measured
// clockwise from twelve o'clock.
func Polar(r, a float64) Point {
	return Point{X: r * math.Sin(a), Y: -r * math.Cos(a)}
}

// Rotate turns p clockwise about the origin by deg degrees.
func (p Point) Rotate(deg float64) Point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}
