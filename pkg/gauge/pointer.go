package gauge

// Snap moves score to where the pointer is drawn for it. The pointer never
// sits on a slab edge: scores near an edge are pulled inside the slab, and
// scores in a slab too narrow to pull into are drawn at its midpoint.
func Snap(score float64, l *Lookup, sc Scales) float64 {
	boundary := sc.PercentToScoreDelta.Apply(SnapPercent)
	inbound := sc.PercentToScoreDelta.Apply(SnapPercent + 1)

	lo, hi := l.Min(score), l.Max(score)
	loInbound, hiInbound := lo+inbound, hi-inbound

	switch {
	case loInbound >= hiInbound:
		return (lo + hi) / 2
	case score < loInbound:
		if score <= lo {
			return lo + boundary
		}
		return loInbound
	case score > hiInbound:
		if score >= hi {
			return hi - boundary
		}
		return hiInbound
	default:
		return score
	}
}

// PointerRotation returns the clockwise rotation, in degrees from the
// minimum end of the meter, at which the pointer is drawn for score.
func PointerRotation(score float64, l *Lookup, sc Scales) float64 {
	return sc.ScoreToDegreesDelta.Apply(Snap(score, l, sc))
}

// InitialPointerRotation is where an animated pointer starts.
func InitialPointerRotation(sc Scales) float64 {
	return sc.PercentToDegreeDelta.Apply(SnapPercent)
}
