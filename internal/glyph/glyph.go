// Package glyph turns text into columns of a fixed-height bitmap font.
//
// Fonts are exposed through the Table interface. Builtin returns the font
// embedded in this package; Parse reads the same text format from any
// reader.
package glyph

// Height is the number of rows in every glyph.
const Height = 9

// FallbackCode is the table code of the glyph drawn for unmapped runes.
const FallbackCode = 0x7f

// Glyph is one bitmap character.
//
// Width is the declared width including the trailing spacing column, so a
// glyph contributes Width-1 ink columns. For ink column c (0 = leftmost),
// bit Width-2-c of each row is set where the glyph has ink.
type Glyph struct {
	Width int
	Rows  [Height]uint16
}

// Ink reports whether ink column col of row row is set.
func (g Glyph) Ink(col, row int) bool {
	return g.Rows[row]>>(g.Width-2-col)&1 == 1
}

// Table is a glyph lookup service.
type Table interface {
	// Lookup returns the glyph for r and whether the table has one.
	Lookup(r rune) (Glyph, bool)
	// Fallback returns the replacement glyph for unmapped runes.
	Fallback() Glyph
}
