// Package style implements terminal styling for listing output.
//
// Only the eight standard ANSI colours are supported. The first eight (and
// their bold variants) are user-definable and can look different on different
// terminals, but something as simple as discerning file types doesn't need
// more than that.
package style

// Colour is one of the eight standard terminal colours.
type Colour int

// The standard colours, in their numeric escape-code order.
const (
	Black Colour = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

// foregroundCode returns the numeric sequence that selects this colour as a
// foreground. See http://invisible-island.net/xterm/ctlseqs/ctlseqs.html
func (c Colour) foregroundCode() string {
	return [...]string{"30", "31", "32", "33", "34", "35", "36", "37"}[c]
}

// backgroundCode returns the numeric sequence that selects this colour as a
// background.
func (c Colour) backgroundCode() string {
	return [...]string{"40", "41", "42", "43", "44", "45", "46", "47"}[c]
}

// Paint wraps text in a minimal foreground-only escape sequence.
func (c Colour) Paint(text string) string {
	return "\x1b[" + c.foregroundCode() + "m" + text + "\x1b[0m"
}

// Normal returns a Style that colours text with this foreground and nothing
// else.
func (c Colour) Normal() Style {
	return Style{kind: foreground, foreground: c}
}

// Bold returns a bold Style with this foreground colour.
func (c Colour) Bold() Style {
	return Style{kind: composite, foreground: c, bold: true}
}

// Underline returns an underlined Style with this foreground colour.
func (c Colour) Underline() Style {
	return Style{kind: composite, foreground: c, underline: true}
}

// On returns a Style with this foreground over the given background colour.
func (c Colour) On(background Colour) Style {
	return Style{kind: composite, foreground: c, background: background, hasBackground: true}
}

type styleKind int

// There are only three different kinds of style: plain (no formatting), only
// a foreground colour, and a catch-all for anything more complicated than
// that.
const (
	plain styleKind = iota
	foreground
	composite
)

// A Style is a set of terminal attributes that can paint a piece of text.
// The zero value is the plain style, which leaves text untouched.
type Style struct {
	kind          styleKind
	foreground    Colour
	background    Colour
	hasBackground bool
	bold          bool
	underline     bool
}

// Plain is the do-nothing style.
var Plain = Style{}

// Bold derives a new Style with the bold attribute set. Setting bold drops
// any underline attribute; the colours carry over.
func (s Style) Bold() Style {
	out := s.promote()
	out.bold = true
	out.underline = false
	return out
}

// Underline derives a new Style with the underline attribute set. Setting
// underline drops any bold attribute; the colours carry over.
func (s Style) Underline() Style {
	out := s.promote()
	out.bold = false
	out.underline = true
	return out
}

// On derives a new Style with the given background colour. Setting a
// background drops both the bold and underline attributes; the foreground
// carries over.
func (s Style) On(background Colour) Style {
	out := s.promote()
	out.bold = false
	out.underline = false
	out.background = background
	out.hasBackground = true
	return out
}

// promote widens a plain or foreground-only style into the composite form.
// A plain style gains a white foreground, since the composite escape always
// needs a foreground code to emit.
func (s Style) promote() Style {
	switch s.kind {
	case plain:
		return Style{kind: composite, foreground: White}
	case foreground:
		return Style{kind: composite, foreground: s.foreground}
	default:
		out := s
		return out
	}
}

// Paint wraps text in this style's escape sequence. Plain styles return the
// text unchanged; everything else emits one combined escape before the text
// and a single reset after it.
func (s Style) Paint(text string) string {
	switch s.kind {
	case plain:
		return text
	case foreground:
		return s.foreground.Paint(text)
	default:
		var bo, un, bg string
		if s.bold {
			bo = "1;"
		}
		if s.underline {
			un = "4;"
		}
		if s.hasBackground {
			bg = s.background.backgroundCode() + ";"
		}
		return "\x1b[" + bo + un + bg + s.foreground.foregroundCode() + "m" + text + "\x1b[0m"
	}
}

// IsPlain reports whether painting with this style leaves text unchanged.
func (s Style) IsPlain() bool {
	return s.kind == plain
}
