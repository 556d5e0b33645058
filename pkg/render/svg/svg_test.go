package svg

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlabs() gauge.Slabs {
	return gauge.Slabs{
		{Min: 60, Max: 80, Color: "#f1c40f", Assessment: "Good"},
		{Min: 0, Max: 40, Color: "#e74c3c", Assessment: "Poor"},
		{Min: 40, Max: 60, Color: "#e67e22", Assessment: "Fair"},
		{Min: 80, Max: 100, Color: "#2ecc71", Assessment: "Excellent"},
	}
}

func render(t *testing.T, score float64, animated bool) (string, *goquery.Document) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gauge.Render(400, score, testSlabs(), animated), 0))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

func TestWriteStatic(t *testing.T) {
	out, doc := render(t, 50, false)
	assert.True(t, strings.HasPrefix(out, "<svg"))

	root := doc.Find("svg").First()
	assert.True(t, root.HasClass(gauge.ChartClass))
	assert.False(t, root.HasClass("interactive"))
	assert.Equal(t, "8.0px", root.AttrOr("font-size", ""))

	arcs := doc.Find("path." + gauge.SlabArcClass)
	require.Equal(t, 4, arcs.Length())
	first := arcs.First()
	assert.Equal(t, "Poor", first.AttrOr("data-assessment", ""))
	assert.Equal(t, "0", first.AttrOr("data-slab-min", ""))
	assert.Equal(t, "40", first.AttrOr("data-slab-max", ""))
	assert.Equal(t, "#e74c3c", first.AttrOr("fill", ""))

	assert.Equal(t, "50.0", doc.Find("text."+gauge.ScoreDisplayClass).Text())
	assert.Equal(t, "Fair", doc.Find("text."+gauge.AssessmentClass).Text())
	assert.Equal(t, "0", doc.Find("text."+gauge.MinLimitClass).Text())
	assert.Equal(t, "100", doc.Find("text."+gauge.MaxLimitClass).Text())

	assert.Equal(t, "rotate(90)", doc.Find("g.pointer-track").AttrOr("transform", ""))
	assert.Equal(t, "#e67e22", doc.Find("circle."+gauge.PointerClass).AttrOr("stroke", ""))

	assert.Zero(t, doc.Find("g.hover").Length())
	assert.Zero(t, doc.Find("set").Length())
	assert.NotContains(t, out, ":has(")
}

func TestWriteAnimated(t *testing.T) {
	out, doc := render(t, 70, true)

	assert.True(t, doc.Find("svg").First().HasClass("interactive"))
	assert.Equal(t, "rotate(4.5)", doc.Find("g.pointer-track").AttrOr("transform", ""))
	assert.Equal(t, "#e74c3c", doc.Find("circle."+gauge.PointerClass).AttrOr("stroke", ""))
	assert.Equal(t, 1, doc.Find("circle."+gauge.PointerClass+" animate").Length())

	scores := doc.Find("text." + gauge.ScoreDisplayClass)
	require.Greater(t, scores.Length(), 1)
	assert.Equal(t, "0.0", scores.First().Text())
	assert.Equal(t, "70.0", scores.Last().Text())

	resting := doc.Find("g.resting text." + gauge.AssessmentClass)
	require.Greater(t, resting.Length(), 1)
	assert.Equal(t, "Poor", resting.First().Text())
	assert.Equal(t, "Good", resting.Last().Text())

	assert.Equal(t, 4, doc.Find("g.hover").Length())
	fair := doc.Find("g.hover.slab-1")
	assert.Equal(t, "none", fair.AttrOr("display", ""))
	assert.Equal(t, "Fair", fair.Find("text."+gauge.AssessmentClass).Text())
	assert.Equal(t, "40", fair.Find("text."+gauge.MinLimitClass).Text())
	assert.Equal(t, "60", fair.Find("text."+gauge.MaxLimitClass).Text())
	assert.Contains(t, fair.Find("text."+gauge.AssessmentClass).AttrOr("style", ""), "#e67e22")

	assert.Contains(t, out, ".meter-gauge.interactive:has(.slab-arc.slab-3:hover) .hover.slab-3")
	assert.Contains(t, out, `begin="0.2s" dur="1.5s"`)
}

func TestWriteHighFPS(t *testing.T) {
	c := gauge.Render(400, 70, testSlabs(), true)

	var capped, high bytes.Buffer
	require.NoError(t, Write(&capped, c, gauge.MaxFPS))
	require.NoError(t, Write(&high, c, 2_000_000_000))
	assert.Equal(t, capped.String(), high.String())

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(high.String()))
	require.NoError(t, err)
	keyTimes := doc.Find("animateTransform").AttrOr("keyTimes", "")
	assert.Len(t, strings.Split(keyTimes, ";"), int(1.5*gauge.MaxFPS)+1)
}

func TestWriteEscapes(t *testing.T) {
	slabs := gauge.Slabs{
		{Min: 0, Max: 1, Color: "red", Assessment: `<bad> & "worse"`},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gauge.Render(200, 0.5, slabs, false), 0))
	assert.NotContains(t, buf.String(), "<bad>")
	assert.Contains(t, buf.String(), "&lt;bad&gt; &amp;")
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gauge.Render(200, 1, nil, false), 0))
	assert.NotContains(t, buf.String(), "pointer-track")
}

func TestWriteNil(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, nil, 0))
}

func TestArcPath(t *testing.T) {
	c := gauge.Render(400, 50, testSlabs(), false)
	p := arcPath(c.Arcs[0])

	assert.True(t, strings.HasPrefix(p, "M"))
	assert.True(t, strings.HasSuffix(p, "Z"))
	assert.Equal(t, 4, strings.Count(p, "A"))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "1.235", num(1.23456))
	assert.Equal(t, "2", num(2))
	assert.Equal(t, "0", num(-0.0001))
	assert.Equal(t, "-1.5", num(-1.5))
	assert.Equal(t, "0.2s", sec(200*time.Millisecond))
}

func TestSegments(t *testing.T) {
	frames := []gauge.Frame{
		{Elapsed: 200 * time.Millisecond, ScoreText: "a"},
		{Elapsed: 300 * time.Millisecond, ScoreText: "a"},
		{Elapsed: 400 * time.Millisecond, ScoreText: "b"},
		{Elapsed: 500 * time.Millisecond, ScoreText: "c"},
	}
	list := segments(frames, time.Second, func(f gauge.Frame) string { return f.ScoreText })

	require.Len(t, list, 3)
	assert.Equal(t, segment{Text: "a", Begin: 0, End: 400 * time.Millisecond, First: true}, list[0])
	assert.Equal(t, segment{Text: "b", Begin: 400 * time.Millisecond, End: 500 * time.Millisecond}, list[1])
	assert.Equal(t, segment{Text: "c", Begin: 500 * time.Millisecond, End: time.Second, Last: true}, list[2])
}
