package gauge

import "math"

// Arc is the band drawn for one slab. Angles are measured clockwise from
// twelve o'clock and already include the pad between neighbouring arcs.
// The band ends are rounded with a radius of half the band width.
type Arc struct {
	Slab        Slab    `json:"slab" yaml:"slab"`
	Index       int     `json:"index" yaml:"index"`
	StartAngle  float64 `json:"startAngle" yaml:"startAngle"`
	EndAngle    float64 `json:"endAngle" yaml:"endAngle"`
	InnerRadius float64 `json:"innerRadius" yaml:"innerRadius"`
	OuterRadius float64 `json:"outerRadius" yaml:"outerRadius"`
}

func newArc(i int, s Slab, sc Scales, l Layout) Arc {
	a := Arc{
		Slab:        s,
		Index:       i,
		InnerRadius: l.InnerRadius - l.ArcWidth,
		OuterRadius: l.InnerRadius,
	}

	start := sc.ScoreToRadian.Apply(s.Min)
	end := sc.ScoreToRadian.Apply(s.Max)

	// Half the pad goes on each end. The offset is taken at the mid radius,
	// between the exact inner and outer edge offsets, because both rounded
	// caps are centred on one angle.
	mid := a.MidRadius()
	if mid > 0 {
		p := padOffset(sc, a.InnerRadius, a.OuterRadius, mid)
		if end-start > 2*p {
			start += p
			end -= p
		} else {
			start = (start + end) / 2
			end = start
		}
	}

	a.StartAngle = start
	a.EndAngle = end
	return a
}

// padOffset is the angle an arc end moves inward to leave half the pad
// free at radius r.
func padOffset(sc Scales, inner, outer, r float64) float64 {
	pad := sc.PercentToRadian.Apply(PadPercent) / 2
	padRadius := math.Hypot(inner, outer)
	return math.Asin(math.Min(1, padRadius/r*math.Sin(pad)))
}

// MidRadius is the radius of the center line of the band.
func (a Arc) MidRadius() float64 {
	return (a.InnerRadius + a.OuterRadius) / 2
}

// CapRadius is the radius of the rounded ends.
func (a Arc) CapRadius() float64 {
	return (a.OuterRadius - a.InnerRadius) / 2
}

// CapAngles returns the angles of the centers of the two rounded ends.
// For an arc too short to hold both ends they meet in the middle.
func (a Arc) CapAngles() (start, end float64) {
	mid := a.MidRadius()
	if mid <= 0 {
		return a.StartAngle, a.EndAngle
	}
	d := math.Asin(math.Min(1, a.CapRadius()/mid))
	if a.EndAngle-a.StartAngle <= 2*d {
		c := (a.StartAngle + a.EndAngle) / 2
		return c, c
	}
	return a.StartAngle + d, a.EndAngle - d
}

// Outline approximates the band with a closed polygon. steps is the number
// of segments used for each of the four curved edges.
func (a Arc) Outline(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	s, e := a.CapAngles()
	h := a.CapRadius()
	cs := Polar(a.MidRadius(), s)
	ce := Polar(a.MidRadius(), e)

	pts := make([]Point, 0, 4*(steps+1))

	// outer edge, clockwise
	for i := 0; i <= steps; i++ {
		pts = append(pts, Polar(a.OuterRadius, lerp(s, e, float64(i)/float64(steps))))
	}
	// end cap, outer to inner
	for i := 1; i <= steps; i++ {
		phi := math.Pi * float64(i) / float64(steps)
		pts = append(pts, capPoint(ce, e, h, phi, 1))
	}
	// inner edge, counter-clockwise
	for i := 1; i <= steps; i++ {
		pts = append(pts, Polar(a.InnerRadius, lerp(e, s, float64(i)/float64(steps))))
	}
	// start cap, inner to outer
	for i := steps - 1; i > 0; i-- {
		phi := math.Pi * float64(i) / float64(steps)
		pts = append(pts, capPoint(cs, s, h, phi, -1))
	}
	return pts
}

// capPoint walks a half circle of radius h around c. phi 0 is the radial
// outward direction at angle a and dir selects the tangent side.
func capPoint(c Point, a, h, phi, dir float64) Point {
	ux, uy := math.Sin(a), -math.Cos(a)
	tx, ty := math.Cos(a), math.Sin(a)
	cp, sp := math.Cos(phi), math.Sin(phi)
	return Point{
		X: c.X + h*(cp*ux+dir*sp*tx),
		Y: c.Y + h*(cp*uy+dir*sp*ty),
	}
}
