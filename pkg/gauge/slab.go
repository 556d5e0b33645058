package gauge

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	// ErrNoSlabs is returned when a slab set has no slabs.
	ErrNoSlabs = errors.New("slab set is empty")

	// ErrEmptyRange is returned when a slab does not satisfy Min < Max.
	ErrEmptyRange = errors.New("slab range is empty")

	// ErrGap is returned when consecutive slabs do not meet.
	ErrGap = errors.New("slabs do not tile the score domain")
)

// Slab is a contiguous score range [Min, Max) with its display color
// and assessment label.
type Slab struct {
	Min        float64 `json:"slabMin" yaml:"slabMin" toml:"slabMin"`
	Max        float64 `json:"slabMax" yaml:"slabMax" toml:"slabMax"`
	Color      string  `json:"color" yaml:"color" toml:"color"`
	Assessment string  `json:"assessment" yaml:"assessment" toml:"assessment"`
}

// Contains reports whether score falls in [Min, Max).
func (s Slab) Contains(score float64) bool {
	return score >= s.Min && score < s.Max
}

// Slabs is an ordered set of slabs.
type Slabs []Slab

// Sorted returns a copy of the set sorted ascending by Min.
// The receiver is left untouched.
func (s Slabs) Sorted() Slabs {
	out := make(Slabs, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Min < out[j].Min
	})
	return out
}

// Domain returns the lowest Min and the highest Max of the set.
func (s Slabs) Domain() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = s[0].Min, s[0].Max
	for _, v := range s[1:] {
		if v.Min < lo {
			lo = v.Min
		}
		if v.Max > hi {
			hi = v.Max
		}
	}
	return lo, hi
}

// Validate checks that the set is non-empty and that, once sorted,
// every slab is non-empty and starts where the previous one ends.
// Render does not call it.
func (s Slabs) Validate() error {
	if len(s) == 0 {
		return ErrNoSlabs
	}

	sorted := s.Sorted()
	for i, v := range sorted {
		if !(v.Min < v.Max) {
			return fmt.Errorf("slab %d [%s, %s): %w", i, FormatNumber(v.Min), FormatNumber(v.Max), ErrEmptyRange)
		}
		if i > 0 && sorted[i-1].Max != v.Min {
			return fmt.Errorf("between %s and %s: %w", FormatNumber(sorted[i-1].Max), FormatNumber(v.Min), ErrGap)
		}
	}
	return nil
}

// FormatNumber prints a number the way the meter labels its limits:
// the shortest decimal representation, no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
