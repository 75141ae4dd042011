package cell

import (
	"regexp"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/harrison/lsx/internal/style"
)

var escapes = regexp.MustCompile("\x1b\\[.*?m")

func stripFormatting(s string) string {
	return escapes.ReplaceAllString(s, "")
}

func TestPaintWidthIgnoresStyling(t *testing.T) {
	tests := []struct {
		name  string
		style style.Style
		text  string
		width int
	}{
		{"plain ascii", style.Plain, "hello", 5},
		{"styled ascii", style.Red.Bold(), "hello", 5},
		{"empty", style.Blue.Normal(), "", 0},
		{"accented", style.Plain, "café", 4},
		{"wide runes", style.Green.Normal(), "日本語", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Paint(tt.style, tt.text)
			assert.Equal(t, tt.width, c.Width)

			// The invariant: stripping the styling bytes from the rendered
			// text leaves something whose glyph count is exactly Width.
			assert.Equal(t, c.Width, runewidth.StringWidth(stripFormatting(c.String())))
		})
	}
}

func TestBlank(t *testing.T) {
	c := Blank(style.White.Normal())
	assert.Equal(t, 1, c.Width)
	assert.Equal(t, "-", stripFormatting(c.String()))
}

func TestAppendTracksWidth(t *testing.T) {
	c := Paint(style.Green.Normal(), "A")
	c.Append(Paint(style.Blue.Normal(), "M"))

	assert.Equal(t, 2, c.Width)
	assert.Len(t, c.Contents, 2)
	assert.Equal(t, "AM", stripFormatting(c.String()))
}

func TestPad(t *testing.T) {
	c := Paint(style.Red.Normal(), "ab")

	left := Left.Pad(c, 3)
	right := Right.Pad(c, 3)

	assert.Equal(t, "ab   ", stripFormatting(left))
	assert.Equal(t, "   ab", stripFormatting(right))

	// Padding is computed by the caller from Width, never from the styled
	// byte length, so zero and negative amounts leave the text alone.
	assert.Equal(t, c.String(), Left.Pad(c, 0))
	assert.Equal(t, c.String(), Right.Pad(c, -1))
}
