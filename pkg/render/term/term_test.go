package term

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart(animated bool) *gauge.Chart {
	return gauge.Render(400, 50, gauge.Slabs{
		{Min: 0, Max: 40, Color: "red", Assessment: "Poor"},
		{Min: 40, Max: 60, Color: "orange", Assessment: "Fair"},
		{Min: 60, Max: 100, Color: "green", Assessment: "Good"},
	}, animated)
}

func TestRender(t *testing.T) {
	c := testChart(false)
	out := Render(c, c.Final(), 40)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, strings.Repeat(" ", 20)+pointerCell, stripANSI(lines[0]))
	assert.Equal(t, 40, strings.Count(lines[1], barCell))
	assert.True(t, strings.HasPrefix(stripANSI(lines[2]), "0"))
	assert.True(t, strings.HasSuffix(stripANSI(lines[2]), "100"))
	assert.Contains(t, lines[3], "50.0")
	assert.Contains(t, lines[4], "Fair")
}

func TestRenderNarrow(t *testing.T) {
	c := testChart(false)
	out := Render(c, c.Final(), 2)
	assert.Equal(t, minWidth, strings.Count(out, barCell))
	assert.Empty(t, Render(nil, gauge.Frame{}, 10))
}

func TestPosition(t *testing.T) {
	assert.Equal(t, 0, Position(-5, 40))
	assert.Equal(t, 0, Position(0, 40))
	assert.Equal(t, 20, Position(90, 40))
	assert.Equal(t, 39, Position(180, 40))
	assert.Equal(t, 39, Position(400, 40))
}

func TestModel(t *testing.T) {
	c := testChart(true)
	m := newModel(c, 40, 10)
	require.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "0.0")

	for i := 0; i < len(m.frames)-1; i++ {
		_, cmd := m.Update(tickMsg{})
		require.NotNil(t, cmd)
	}
	assert.True(t, m.done())
	assert.Contains(t, m.View(), "50.0")
	assert.Contains(t, m.View(), "Fair")
}

func TestModelHighFPS(t *testing.T) {
	c := testChart(true)
	m := newModel(c, 40, 2_000_000_000)
	assert.Equal(t, time.Second/gauge.MaxFPS, m.step)
	assert.Len(t, m.frames, len(c.Timeline.Frames(gauge.MaxFPS)))
}

func TestModelQuit(t *testing.T) {
	m := newModel(testChart(true), 40, 10)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, m.done())

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, 20, m.width)
}

func TestAnimateNothing(t *testing.T) {
	err := Animate(context.Background(), gauge.Render(100, 1, nil, true), 40, 10)
	assert.ErrorIs(t, err, errNothingToAnimate)
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
