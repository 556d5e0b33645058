package gauge

import (
	"math"
	"time"
)

const (
	// AnimationDelay is the pause before an animated meter starts moving.
	AnimationDelay = 200 * time.Millisecond

	// AnimationDuration is how long the pointer travels.
	AnimationDuration = 1500 * time.Millisecond

	// MaxFPS is the highest rate the timeline is sampled at.
	MaxFPS = 120
)

// ClampFPS bounds fps to [1, MaxFPS].
func ClampFPS(fps int) int {
	switch {
	case fps < 1:
		return 1
	case fps > MaxFPS:
		return MaxFPS
	default:
		return fps
	}
}

// EaseCubicInOut is the easing applied to every animated property.
func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Frame is the animated state of the meter at one instant.
type Frame struct {
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed"`
	Progress   float64       `json:"progress" yaml:"progress"`
	Rotation   float64       `json:"rotation" yaml:"rotation"`
	Stroke     string        `json:"stroke" yaml:"stroke"`
	ScoreText  string        `json:"scoreText" yaml:"scoreText"`
	Assessment string        `json:"assessment" yaml:"assessment"`
}

// Timeline animates the meter from its minimum to the score: the pointer
// turns from its initial rotation to the final one, its outline takes the
// color of the slab it passes, the score counts up and the assessment
// follows the slab under the pointer.
type Timeline struct {
	Delay    time.Duration `json:"delay" yaml:"delay"`
	Duration time.Duration `json:"duration" yaml:"duration"`

	lookup       *Lookup
	min, score   float64
	fromRotation float64
	toRotation   float64
	fromUnits    float64
	toUnits      float64
}

func newTimeline(score float64, l *Lookup, sc Scales, lo float64) *Timeline {
	return &Timeline{
		Delay:        AnimationDelay,
		Duration:     AnimationDuration,
		lookup:       l,
		min:          lo,
		score:        score,
		fromRotation: InitialPointerRotation(sc),
		toRotation:   PointerRotation(score, l, sc),
		fromUnits:    scoreTextUnits(lo, l),
		toUnits:      scoreTextUnits(score, l),
	}
}

// Total is the delay plus the duration.
func (t *Timeline) Total() time.Duration {
	return t.Delay + t.Duration
}

// Progress returns the eased progress at elapsed, 0 until the delay is over
// and 1 once the animation has finished.
func (t *Timeline) Progress(elapsed time.Duration) float64 {
	if elapsed <= t.Delay {
		return 0
	}
	if t.Duration <= 0 || elapsed >= t.Total() {
		return 1
	}
	raw := float64(elapsed-t.Delay) / float64(t.Duration)
	return EaseCubicInOut(raw)
}

// At returns the state of the meter at elapsed.
func (t *Timeline) At(elapsed time.Duration) Frame {
	p := t.Progress(elapsed)
	passing := lerp(t.min, t.score, p)
	units := math.Floor(lerp(t.fromUnits, t.toUnits, p) + 0.5)
	return Frame{
		Elapsed:    elapsed,
		Progress:   p,
		Rotation:   lerp(t.fromRotation, t.toRotation, p),
		Stroke:     t.lookup.Color(passing),
		ScoreText:  formatFixed(units/math.Pow(10, ScoreDecimals), ScoreDecimals),
		Assessment: t.lookup.Assessment(passing),
	}
}

// Frames samples the whole animation at fps frames per second, delay
// included. fps is clamped to [1, MaxFPS]. The last frame is always the
// final state.
func (t *Timeline) Frames(fps int) []Frame {
	step := time.Second / time.Duration(ClampFPS(fps))
	total := t.Total()

	frames := make([]Frame, 0, int(total/step)+2)
	for at := time.Duration(0); at < total; at += step {
		frames = append(frames, t.At(at))
	}
	return append(frames, t.At(total))
}
