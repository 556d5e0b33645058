// Package svg writes a chart as a standalone SVG document. Animated charts
// get SMIL animations for the pointer and texts, and CSS hover rules that
// highlight a slab and show its assessment and bounds.
package svg

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/mchmarny/gauge/pkg/gauge"
)

const (
	// DefaultFPS is the sampling rate of the animated properties.
	DefaultFPS = 30

	templateName = "gauge.svg.tmpl"
)

var (
	//go:embed templates/*
	embedFS embed.FS

	tmpl = template.Must(template.New(templateName).Funcs(template.FuncMap{
		"num":        num,
		"sec":        sec,
		"label":      gauge.FormatNumber,
		"segmentsOf": segmentsOf,
	}).ParseFS(embedFS, "templates/"+templateName))

	errNilChart = errors.New("chart required")
)

type arcView struct {
	gauge.Arc
	Path  string
	Hover gauge.HoverState
}

type segment struct {
	Text  string
	Begin time.Duration
	End   time.Duration
	First bool
	Last  bool
}

type segmentList struct {
	Label gauge.Label
	List  []segment
}

func segmentsOf(l gauge.Label, list []segment) segmentList {
	return segmentList{Label: l, List: list}
}

type pointerView struct {
	gauge.Pointer
	Initial    gauge.Frame
	Rotations  string
	Strokes    string
	KeyTimes   string
	StrokeKeys string
}

type view struct {
	*gauge.Chart
	FontSize     string
	Arcs         []arcView
	Ptr          pointerView
	Scores       []segment
	Assessments  []segment
	Delay        time.Duration
	Duration     time.Duration
	ScoreEm      float64
	AssessmentEm float64
	LimitEm      float64
}

// Write renders c as SVG to w. Animated properties are sampled at fps
// frames per second; fps <= 0 uses DefaultFPS and higher rates are capped
// at gauge.MaxFPS.
func Write(w io.Writer, c *gauge.Chart, fps int) error {
	if c == nil {
		return errNilChart
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	fps = gauge.ClampFPS(fps)

	v := newView(c, fps)
	if err := tmpl.ExecuteTemplate(w, templateName, v); err != nil {
		return fmt.Errorf("error executing svg template: %w", err)
	}

	slog.Debug("svg written", "arcs", len(v.Arcs), "animated", c.Animated,
		"score_segments", len(v.Scores), "assessment_segments", len(v.Assessments))
	return nil
}

func newView(c *gauge.Chart, fps int) *view {
	v := &view{
		Chart:        c,
		FontSize:     c.Layout.FontSizeCSS(),
		Arcs:         make([]arcView, 0, len(c.Arcs)),
		ScoreEm:      gauge.ScoreDisplayEm,
		AssessmentEm: gauge.AssessmentEm,
		LimitEm:      gauge.LimitEm,
	}

	for i, a := range c.Arcs {
		v.Arcs = append(v.Arcs, arcView{
			Arc:   a,
			Path:  arcPath(a),
			Hover: c.Hover(i),
		})
	}

	v.Ptr = pointerView{
		Pointer: c.Pointer,
		Initial: c.Initial(),
	}

	if !c.Animated || c.Timeline == nil {
		final := c.Final()
		v.Scores = []segment{{Text: final.ScoreText, First: true, Last: true}}
		v.Assessments = []segment{{Text: final.Assessment, First: true, Last: true}}
		return v
	}

	tl := c.Timeline
	v.Delay = tl.Delay
	v.Duration = tl.Duration

	n := int(math.Ceil(tl.Duration.Seconds() * float64(fps)))
	if n < 1 {
		n = 1
	}
	frames := make([]gauge.Frame, 0, n+1)
	keys := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		at := tl.Delay + time.Duration(float64(tl.Duration)*float64(i)/float64(n))
		frames = append(frames, tl.At(at))
		keys = append(keys, num(float64(i)/float64(n)))
	}

	rotations := make([]string, 0, len(frames))
	for _, f := range frames {
		rotations = append(rotations, num(f.Rotation))
	}
	v.Ptr.Rotations = strings.Join(rotations, ";")
	v.Ptr.KeyTimes = strings.Join(keys, ";")

	strokes, strokeKeys := discrete(frames, keys, func(f gauge.Frame) string { return f.Stroke })
	v.Ptr.Strokes = strings.Join(strokes, ";")
	v.Ptr.StrokeKeys = strings.Join(strokeKeys, ";")

	v.Scores = segments(frames, tl.Total(), func(f gauge.Frame) string { return f.ScoreText })
	v.Assessments = segments(frames, tl.Total(), func(f gauge.Frame) string { return f.Assessment })
	return v
}

// discrete keeps the frames where the value changes, for calcMode discrete.
func discrete(frames []gauge.Frame, keys []string, get func(gauge.Frame) string) (values, times []string) {
	for i, f := range frames {
		val := get(f)
		if i > 0 && val == values[len(values)-1] {
			continue
		}
		values = append(values, val)
		times = append(times, keys[i])
	}
	return values, times
}

// segments groups consecutive frames showing the same text.
func segments(frames []gauge.Frame, total time.Duration, get func(gauge.Frame) string) []segment {
	list := make([]segment, 0)
	for i, f := range frames {
		text := get(f)
		if i > 0 && list[len(list)-1].Text == text {
			continue
		}
		if len(list) > 0 {
			list[len(list)-1].End = f.Elapsed
		}
		begin := f.Elapsed
		if i == 0 {
			begin = 0
		}
		list = append(list, segment{Text: text, Begin: begin, End: total})
	}
	if len(list) > 0 {
		list[0].First = true
		list[len(list)-1].Last = true
	}
	return list
}

// arcPath draws the band between the two radii with half circle ends.
func arcPath(a gauge.Arc) string {
	s, e := a.CapAngles()
	h := a.CapRadius()

	o0, o1 := gauge.Polar(a.OuterRadius, s), gauge.Polar(a.OuterRadius, e)
	i0, i1 := gauge.Polar(a.InnerRadius, s), gauge.Polar(a.InnerRadius, e)

	large := 0
	if e-s > math.Pi {
		large = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(o0.X), num(o0.Y))
	fmt.Fprintf(&b, "A%s,%s,0,%d,1,%s,%s", num(a.OuterRadius), num(a.OuterRadius), large, num(o1.X), num(o1.Y))
	fmt.Fprintf(&b, "A%s,%s,0,0,1,%s,%s", num(h), num(h), num(i1.X), num(i1.Y))
	fmt.Fprintf(&b, "A%s,%s,0,%d,0,%s,%s", num(a.InnerRadius), num(a.InnerRadius), large, num(i0.X), num(i0.Y))
	fmt.Fprintf(&b, "A%s,%s,0,0,1,%s,%s", num(h), num(h), num(o0.X), num(o0.Y))
	b.WriteString("Z")
	return b.String()
}

// num prints v with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func sec(d time.Duration) string {
	return num(d.Seconds()) + "s"
}
