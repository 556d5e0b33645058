// Package colors parses the CSS colors slabs are declared with.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for colors that are neither hex nor a CSS name.
var ErrInvalidColor = errors.New("invalid color")

// Parse reads a CSS color: #rgb, #rrggbb or a CSS color name.
func Parse(s string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return colorful.Color{}, fmt.Errorf("empty value: %w", ErrInvalidColor)
	}

	if strings.HasPrefix(v, "#") {
		if len(v) == 4 {
			v = "#" + strings.Repeat(v[1:2], 2) + strings.Repeat(v[2:3], 2) + strings.Repeat(v[3:4], 2)
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
		}
		return c, nil
	}

	named, ok := colornames.Map[v]
	if !ok {
		return colorful.Color{}, fmt.Errorf("unknown color name %q: %w", s, ErrInvalidColor)
	}
	c, _ := colorful.MakeColor(named)
	return c, nil
}

// ParseOrGray is Parse with a gray fallback for invalid colors. It never panics.
func ParseOrGray(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

// RGBA converts s to an opaque color.RGBA, gray when s is invalid.
func RGBA(s string) color.RGBA {
	r, g, b := ParseOrGray(s).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex returns s normalized as #rrggbb.
func Hex(s string) string {
	return ParseOrGray(s).Clamped().Hex()
}

// Fade returns s as it looks drawn with the given opacity over bg.
func Fade(s, bg string, alpha float64) string {
	return ParseOrGray(bg).BlendRgb(ParseOrGray(s), alpha).Clamped().Hex()
}
