package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#e74c3c", "#e74c3c"},
		{"#E74C3C", "#e74c3c"},
		{"#f00", "#ff0000"},
		{"red", "#ff0000"},
		{" Green ", "#008000"},
		{"steelblue", "#4682b4"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "notacolor"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, RGBA("red"))
	assert.Equal(t, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, RGBA("bogus"))
}

func TestFade(t *testing.T) {
	assert.Equal(t, "#ff0000", Fade("red", "white", 1))
	assert.Equal(t, "#ffffff", Fade("red", "white", 0))
	assert.Equal(t, "#ff8080", Fade("red", "white", 0.5))
	assert.Equal(t, "#e74c3c", Hex("#E74C3C"))
}

func TestParseOrGray(t *testing.T) {
	assert.NotPanics(t, func() { ParseOrGray("not-a-color") })
	assert.Equal(t, "#808080", ParseOrGray("not-a-color").Clamped().Hex())
	assert.Equal(t, "#e74c3c", ParseOrGray("#E74C3C").Hex())
}
