package gauge

import (
	"math"
	"sort"
)

// Lookup locates the slab of a score by threshold. The thresholds are the
// lower bounds of every slab but the first, so a score equal to a threshold
// belongs to the upper slab, anything below the first threshold to the first
// slab and anything past the last threshold to the last slab.
type Lookup struct {
	slabs      Slabs
	thresholds []float64
}

// NewLookup builds a lookup over slabs, which must already be sorted.
func NewLookup(sorted Slabs) *Lookup {
	l := &Lookup{
		slabs:      sorted,
		thresholds: make([]float64, 0, len(sorted)),
	}
	for i := 1; i < len(sorted); i++ {
		l.thresholds = append(l.thresholds, sorted[i].Min)
	}
	return l
}

// Index returns the position of the slab for score, or -1 when there is
// none (empty set or NaN).
func (l *Lookup) Index(score float64) int {
	if len(l.slabs) == 0 || math.IsNaN(score) {
		return -1
	}
	return sort.Search(len(l.thresholds), func(i int) bool {
		return l.thresholds[i] > score
	})
}

// Slab returns the slab for score.
func (l *Lookup) Slab(score float64) (Slab, bool) {
	i := l.Index(score)
	if i < 0 {
		return Slab{}, false
	}
	return l.slabs[i], true
}

// Color returns the color of the slab for score.
func (l *Lookup) Color(score float64) string {
	s, _ := l.Slab(score)
	return s.Color
}

// Assessment returns the assessment of the slab for score.
func (l *Lookup) Assessment(score float64) string {
	s, _ := l.Slab(score)
	return s.Assessment
}

// Min returns the lower bound of the slab for score.
func (l *Lookup) Min(score float64) float64 {
	s, _ := l.Slab(score)
	return s.Min
}

// Max returns the upper bound of the slab for score.
func (l *Lookup) Max(score float64) float64 {
	s, _ := l.Slab(score)
	return s.Max
}
