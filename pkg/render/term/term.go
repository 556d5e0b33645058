// Package term draws charts in the terminal: the half circle is unrolled
// into a horizontal bar of slab colors with the pointer marked above it.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mchmarny/gauge/pkg/colors"
	"github.com/mchmarny/gauge/pkg/gauge"
)

const (
	// DefaultWidth is the bar width in cells.
	DefaultWidth = 60

	minWidth = 10

	barCell     = "━"
	pointerCell = "▼"
)

var (
	limitStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	scoreStyle      = lipgloss.NewStyle().Bold(true)
	assessmentStyle = lipgloss.NewStyle()
)

// Render draws c in the state f on a bar width cells wide.
func Render(c *gauge.Chart, f gauge.Frame, width int) string {
	if c == nil || len(c.Arcs) == 0 {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}

	var b strings.Builder

	pos := Position(f.Rotation, width)
	b.WriteString(strings.Repeat(" ", pos))
	b.WriteString(style(f.Stroke).Render(pointerCell))
	b.WriteString("\n")

	l := c.Lookup()
	span := c.Max - c.Min
	for i := 0; i < width; i++ {
		score := c.Min + (float64(i)+0.5)/float64(width)*span
		b.WriteString(style(l.Color(score)).Render(barCell))
	}
	b.WriteString("\n")

	lo, hi := c.MinLimit.Text, c.MaxLimit.Text
	gap := width - runewidth.StringWidth(lo) - runewidth.StringWidth(hi)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(limitStyle.Render(lo))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(limitStyle.Render(hi))
	b.WriteString("\n")

	b.WriteString(center(scoreStyle.Render(f.ScoreText), runewidth.StringWidth(f.ScoreText), width))
	b.WriteString("\n")
	b.WriteString(center(assessmentStyle.Inherit(style(f.Stroke)).Render(f.Assessment), runewidth.StringWidth(f.Assessment), width))
	b.WriteString("\n")

	return b.String()
}

// Position maps a pointer rotation, 0 to 180 degrees, onto a cell.
func Position(rotation float64, width int) int {
	pos := int(math.Floor(rotation / 180 * float64(width)))
	if pos < 0 {
		return 0
	}
	if pos > width-1 {
		return width - 1
	}
	return pos
}

// center pads rendered, which shows visible cells, to the middle of width.
func center(rendered string, visible, width int) string {
	pad := (width - visible) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + rendered
}

func style(c string) lipgloss.Style {
	if c == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Hex(c)))
}
