package glyph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse errors.
var (
	// ErrSyntax is returned for malformed font files.
	ErrSyntax = errors.New("glyph: syntax error")

	// ErrNoFallback is returned when a font has no FallbackCode glyph.
	ErrNoFallback = errors.New("glyph: font has no fallback glyph")
)

// maxInk is the widest glyph a uint16 row can hold.
const maxInk = 16

// Parse reads a bitmap font.
//
// Lines starting with ';' are comments and blank lines are ignored. A glyph
// is a header line "0xNN [label]" followed by Height rows of '#' (ink) and
// '.' (blank), all of equal length.
func Parse(r io.Reader) (*BitmapTable, error) {
	t := &BitmapTable{}
	sc := bufio.NewScanner(r)
	line := 0

	next := func() (string, bool) {
		for sc.Scan() {
			line++
			s := strings.TrimRight(sc.Text(), " \t\r")
			if s == "" || strings.HasPrefix(s, ";") {
				continue
			}
			return s, true
		}
		return "", false
	}

	for {
		header, ok := next()
		if !ok {
			break
		}
		field, _, _ := strings.Cut(header, " ")
		code, err := strconv.ParseUint(field, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad glyph code %q", ErrSyntax, line, field)
		}
		if t.glyphs[code] != nil {
			return nil, fmt.Errorf("%w: line %d: duplicate glyph 0x%02x", ErrSyntax, line, code)
		}

		g := &Glyph{}
		ink := -1
		for row := 0; row < Height; row++ {
			s, ok := next()
			if !ok {
				return nil, fmt.Errorf("%w: glyph 0x%02x: want %d rows, got %d", ErrSyntax, code, Height, row)
			}
			if ink == -1 {
				ink = len(s)
				if ink > maxInk-1 {
					return nil, fmt.Errorf("%w: line %d: glyph 0x%02x wider than %d", ErrSyntax, line, code, maxInk-1)
				}
			}
			if len(s) != ink {
				return nil, fmt.Errorf("%w: line %d: row width %d, want %d", ErrSyntax, line, len(s), ink)
			}
			var bits uint16
			for _, c := range s {
				bits <<= 1
				switch c {
				case '#':
					bits |= 1
				case '.':
				default:
					return nil, fmt.Errorf("%w: line %d: unexpected %q in glyph row", ErrSyntax, line, c)
				}
			}
			g.Rows[row] = bits
		}
		g.Width = ink + 1
		t.glyphs[code] = g
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("glyph: read font: %w", err)
	}
	if t.glyphs[FallbackCode] == nil {
		return nil, ErrNoFallback
	}
	return t, nil
}

// ParseString is Parse on an in-memory font.
func ParseString(s string) (*BitmapTable, error) {
	return Parse(strings.NewReader(s))
}
