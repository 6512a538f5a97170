package glyph

import (
	_ "embed"
	"sync"

	"golang.org/x/text/encoding/charmap"
)

//go:embed font.txt
var builtinFont string

// builtin parses the embedded font once. A parse failure is a defect in
// the shipped font file.
var builtin = sync.OnceValue(func() *BitmapTable {
	t, err := ParseString(builtinFont)
	if err != nil {
		panic(err)
	}
	return t
})

// Builtin returns the embedded bitmap font.
func Builtin() *BitmapTable {
	return builtin()
}

// BitmapTable is a Table keyed by Windows-1252 code.
type BitmapTable struct {
	glyphs [256]*Glyph
}

// Glyph returns the glyph stored at a Windows-1252 code.
func (t *BitmapTable) Glyph(code byte) (Glyph, bool) {
	g := t.glyphs[code]
	if g == nil {
		return Glyph{}, false
	}
	return *g, true
}

// Len returns the number of glyphs in the table.
func (t *BitmapTable) Len() int {
	n := 0
	for _, g := range t.glyphs {
		if g != nil {
			n++
		}
	}
	return n
}

// Lookup encodes r as Windows-1252 and returns the glyph at that code.
// Runes outside the code page are reported as missing.
func (t *BitmapTable) Lookup(r rune) (Glyph, bool) {
	code, ok := charmap.Windows1252.EncodeRune(r)
	if !ok {
		return Glyph{}, false
	}
	return t.Glyph(code)
}

// Fallback returns the glyph at FallbackCode.
func (t *BitmapTable) Fallback() Glyph {
	g, _ := t.Glyph(FallbackCode)
	return g
}
