package gauge

import "math"

// Linear maps the domain [D0, D1] onto the range [R0, R1]. It does not clamp.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// Apply maps v from the domain to the range.
func (l Linear) Apply(v float64) float64 {
	if l.D1 == l.D0 {
		return (l.R0 + l.R1) / 2
	}
	return l.R0 + (v-l.D0)/(l.D1-l.D0)*(l.R1-l.R0)
}

// Scales holds the linear maps a meter over [Min, Max] is drawn with.
type Scales struct {
	ScoreToRadian        Linear
	ScoreToDegreesDelta  Linear
	PercentToRadian      Linear
	PercentToScoreDelta  Linear
	PercentToDegreeDelta Linear
}

// NewScales returns the scales for a score domain.
func NewScales(lo, hi float64) Scales {
	return Scales{
		ScoreToRadian:        Linear{D0: lo, D1: hi, R0: -math.Pi / 2, R1: math.Pi / 2},
		ScoreToDegreesDelta:  Linear{D0: lo, D1: hi, R0: 0, R1: 180},
		PercentToRadian:      Linear{D0: 0, D1: 100, R0: 0, R1: math.Pi},
		PercentToScoreDelta:  Linear{D0: 0, D1: 100, R0: 0, R1: hi - lo},
		PercentToDegreeDelta: Linear{D0: 0, D1: 100, R0: 0, R1: 180},
	}
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
