package gauge

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ScoreDecimals is the number of decimals the score is displayed with.
const ScoreDecimals = 1

// formatFixed formats v with the given number of decimals, rounding the
// exact binary value half away from zero. strconv rounds ties to even,
// which would print 0.25 as "0.2" instead of "0.3".
func formatFixed(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}

	neg := v < 0
	if neg {
		v = -v
	}

	scaled := new(big.Float).SetPrec(256).SetFloat64(v)
	scaled.Mul(scaled, new(big.Float).SetPrec(256).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)))
	scaled.Add(scaled, big.NewFloat(0.5))
	n, _ := scaled.Int(nil)

	digits := n.String()
	if decimals > 0 {
		if len(digits) <= decimals {
			digits = strings.Repeat("0", decimals-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-decimals] + "." + digits[len(digits)-decimals:]
	}
	if neg {
		return "-" + digits
	}
	return digits
}

// roundFixed rounds v the way formatFixed prints it.
func roundFixed(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(formatFixed(v, decimals), 64)
	if err != nil {
		return v
	}
	return r
}

// ScoreText returns the text displayed for score. A score that would round
// up to the upper bound of its slab is truncated instead, so it never reads
// as a value belonging to the next slab.
func ScoreText(score float64, l *Lookup) string {
	text := formatFixed(score, ScoreDecimals)
	if text != formatFixed(l.Max(score), ScoreDecimals) {
		return text
	}
	factor := math.Pow(10, ScoreDecimals)
	return formatFixed(math.Floor(score*factor)/factor, ScoreDecimals)
}

// scoreTextUnits returns the displayed text of score in tenths, the unit the
// animated score counts in.
func scoreTextUnits(score float64, l *Lookup) float64 {
	v, err := strconv.ParseFloat(ScoreText(score, l), 64)
	if err != nil {
		return 0
	}
	return v * math.Pow(10, ScoreDecimals)
}
