package gauge

import "log/slog"

// Class names of the meter elements, shared by every surface that keeps
// them (the SVG output uses them for styling and hover rules).
const (
	ChartClass        = "meter-gauge"
	SlabArcClass      = "slab-arc"
	PointerClass      = "pointer"
	ScoreLimitClass   = "scorelimit"
	MinLimitClass     = "min-limit"
	MaxLimitClass     = "max-limit"
	ScoreDisplayClass = "scoredisplay"
	AssessmentClass   = "assessment"
)

// Label is a text element centered horizontally on X, with its baseline DY
// below the origin. Em is its size relative to the base font size.
type Label struct {
	Class string  `json:"class" yaml:"class"`
	Text  string  `json:"text" yaml:"text"`
	X     float64 `json:"x" yaml:"x"`
	DY    float64 `json:"dy" yaml:"dy"`
	Em    float64 `json:"em" yaml:"em"`
}

// Pointer is the circle marking the score on the track. It is drawn at
// Offset on the x axis and then turned clockwise by Rotation degrees.
type Pointer struct {
	Rotation    float64 `json:"rotation" yaml:"rotation"`
	Offset      float64 `json:"offset" yaml:"offset"`
	Radius      float64 `json:"radius" yaml:"radius"`
	StrokeWidth float64 `json:"strokeWidth" yaml:"strokeWidth"`
	Stroke      string  `json:"stroke" yaml:"stroke"`
}

// Center returns the pointer center at the given rotation.
func (p Pointer) Center(rotation float64) Point {
	return Point{X: p.Offset}.Rotate(rotation)
}

// Chart describes everything drawn for one meter. Static fields hold the
// final state; an animated chart reaches it through its Timeline.
type Chart struct {
	Layout       Layout    `json:"layout" yaml:"layout"`
	Score        float64   `json:"score" yaml:"score"`
	Min          float64   `json:"min" yaml:"min"`
	Max          float64   `json:"max" yaml:"max"`
	Slabs        Slabs     `json:"slabs" yaml:"slabs"`
	Arcs         []Arc     `json:"arcs" yaml:"arcs"`
	Pointer      Pointer   `json:"pointer" yaml:"pointer"`
	MinLimit     Label     `json:"minLimit" yaml:"minLimit"`
	MaxLimit     Label     `json:"maxLimit" yaml:"maxLimit"`
	ScoreDisplay Label     `json:"scoreDisplay" yaml:"scoreDisplay"`
	Assessment   Label     `json:"assessment" yaml:"assessment"`
	Animated     bool      `json:"animated" yaml:"animated"`
	Timeline     *Timeline `json:"-" yaml:"-"`

	lookup *Lookup
	scales Scales
}

// Render lays out a meter of the given width for score against slabs.
// The slabs are sorted on a copy; they are expected to tile the score
// domain and are not validated. With animated set the chart carries a
// Timeline from the minimum of the domain to the score.
func Render(width, score float64, slabs Slabs, animated bool) *Chart {
	l := NewLayout(width)
	sorted := slabs.Sorted()
	lookup := NewLookup(sorted)

	c := &Chart{
		Layout: l,
		Score:  score,
		Slabs:  sorted,
		lookup: lookup,
	}
	if len(sorted) == 0 {
		slog.Debug("no slabs to render")
		return c
	}

	c.Min, c.Max = sorted.Domain()
	c.scales = NewScales(c.Min, c.Max)

	c.Arcs = make([]Arc, 0, len(sorted))
	for i, s := range sorted {
		c.Arcs = append(c.Arcs, newArc(i, s, c.scales, l))
	}

	c.Pointer = Pointer{
		Rotation:    PointerRotation(score, lookup, c.scales),
		Offset:      -l.TrackRadius(),
		Radius:      l.PointerRadius(),
		StrokeWidth: l.PointerStrokeWidth(),
		Stroke:      lookup.Color(score),
	}

	c.MinLimit = Label{
		Class: ScoreLimitClass + " " + MinLimitClass,
		Text:  FormatNumber(c.Min),
		X:     -l.TrackRadius(),
		DY:    l.ArcWidth * 2,
		Em:    LimitEm,
	}
	c.MaxLimit = Label{
		Class: ScoreLimitClass + " " + MaxLimitClass,
		Text:  FormatNumber(c.Max),
		X:     l.TrackRadius(),
		DY:    l.ArcWidth * 2,
		Em:    LimitEm,
	}
	c.ScoreDisplay = Label{
		Class: ScoreDisplayClass,
		Text:  ScoreText(score, lookup),
		DY:    -l.ArcWidth * 4,
		Em:    ScoreDisplayEm,
	}
	c.Assessment = Label{
		Class: AssessmentClass,
		Text:  lookup.Assessment(score),
		DY:    l.ArcWidth * 0.1,
		Em:    AssessmentEm,
	}

	if animated {
		c.Animated = true
		c.Timeline = newTimeline(score, lookup, c.scales, c.Min)
	}

	slog.Debug("chart rendered",
		"width", width,
		"score", score,
		"slabs", len(sorted),
		"rotation", c.Pointer.Rotation,
		"animated", animated)

	return c
}

// Lookup returns the slab lookup the chart was built with.
func (c *Chart) Lookup() *Lookup {
	return c.lookup
}

// Scales returns the scales of the chart domain.
func (c *Chart) Scales() Scales {
	return c.scales
}

// Initial returns the state an animated chart is first drawn in, or the
// final state for a static one.
func (c *Chart) Initial() Frame {
	if c.Timeline != nil {
		return c.Timeline.At(0)
	}
	return c.Final()
}

// Final returns the state the chart settles in.
func (c *Chart) Final() Frame {
	f := Frame{
		Progress:   1,
		Rotation:   c.Pointer.Rotation,
		Stroke:     c.Pointer.Stroke,
		ScoreText:  c.ScoreDisplay.Text,
		Assessment: c.Assessment.Text,
	}
	if c.Timeline != nil {
		f.Elapsed = c.Timeline.Total()
	}
	return f
}
