package glyph

import "golang.org/x/text/unicode/norm"

// Column is one pixel-wide vertical slice of rendered text.
// Bit n is set when row n (0 = top) has ink.
type Column uint16

// Ink reports whether row has ink.
func (c Column) Ink(row int) bool {
	return c>>row&1 == 1
}

// Render converts text into a flat sequence of glyph columns.
//
// The text is normalised to NFC first so combining sequences reach the
// precomposed glyphs of the table. Each rune emits its glyph's ink columns
// (all but the reserved last one) followed by one blank spacer; the spacer
// after the final rune is dropped. The width of the rendered text in pixels
// is len(result).
func Render(t Table, text string) []Column {
	var out []Column
	for _, r := range norm.NFC.String(text) {
		g, ok := t.Lookup(r)
		if !ok {
			g = t.Fallback()
		}
		for col := 0; col < g.Width-1; col++ {
			var c Column
			for row := 0; row < Height; row++ {
				if g.Ink(col, row) {
					c |= 1 << row
				}
			}
			out = append(out, c)
		}
		out = append(out, 0)
	}
	if len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}
