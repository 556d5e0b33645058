package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mchmarny/gauge/pkg/gauge"
)

// DefaultFPS is the refresh rate of the terminal animation.
const DefaultFPS = 30

var errNothingToAnimate = errors.New("nothing to animate")

type tickMsg time.Time

type model struct {
	chart  *gauge.Chart
	frames []gauge.Frame
	index  int
	width  int
	step   time.Duration
}

func newModel(c *gauge.Chart, width, fps int) *model {
	if fps <= 0 {
		fps = DefaultFPS
	}
	fps = gauge.ClampFPS(fps)
	frames := []gauge.Frame{c.Final()}
	if c.Timeline != nil {
		frames = c.Timeline.Frames(fps)
	}
	return &model{
		chart:  c,
		frames: frames,
		width:  width,
		step:   time.Second / time.Duration(fps),
	}
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.step, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	if m.done() {
		return tea.Quit
	}
	return m.tick()
}

func (m *model) done() bool {
	return m.index >= len(m.frames)-1
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.done() {
			m.index++
		}
		if m.done() {
			return m, tea.Quit
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.index = len(m.frames) - 1
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width < m.width {
			m.width = msg.Width
		}
	}
	return m, nil
}

func (m *model) View() string {
	return Render(m.chart, m.frames[m.index], m.width)
}

// Animate plays the chart timeline in the terminal and returns once the
// final state is shown, the user quits or ctx is done.
func Animate(ctx context.Context, c *gauge.Chart, width, fps int, opts ...tea.ProgramOption) error {
	if c == nil || len(c.Arcs) == 0 {
		return errNothingToAnimate
	}
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(newModel(c, width, fps), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running terminal animation: %w", err)
	}
	return nil
}
