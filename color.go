package userbar

import (
	"fmt"
	stdcolor "image/color"
	"strconv"

	"github.com/gogpu/userbar/internal/color"
)

// Color is an opaque 8-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// ColorA is an 8-bit sRGB color with non-premultiplied alpha.
type ColorA struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA creates a color with alpha.
func RGBA(r, g, b, a uint8) ColorA {
	return ColorA{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with the given alpha.
func (c Color) WithAlpha(a uint8) ColorA {
	return ColorA{R: c.R, G: c.G, B: c.B, A: a}
}

func (c Color) bytes() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// String returns c as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c ColorA) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// linear converts c to linear light.
func (c ColorA) linear() color.Linear {
	return color.FromSRGB8(c.R, c.G, c.B, c.A)
}

// String returns c as "#rrggbbaa".
func (c ColorA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorA) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColorA.
func (c *ColorA) UnmarshalText(text []byte) error {
	v, err := ParseColorA(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses an opaque hex color: "RGB" or "RRGGBB", with an
// optional leading '#'.
func ParseColor(s string) (Color, error) {
	hex := trimHash(s)
	switch len(hex) {
	case 3, 6:
		v, err := parseHexDigits(s, hex)
		if err != nil {
			return Color{}, err
		}
		return Color{R: v[0], G: v[1], B: v[2]}, nil
	default:
		return Color{}, fmt.Errorf("%w %q: want 3 or 6 hex digits", ErrInvalidColor, s)
	}
}

// ParseColorA parses a hex color with optional alpha: "RGB", "RGBA",
// "RRGGBB" or "RRGGBBAA", with an optional leading '#'. Forms without
// alpha are fully opaque.
func ParseColorA(s string) (ColorA, error) {
	hex := trimHash(s)
	switch len(hex) {
	case 3, 6:
		c, err := ParseColor(s)
		if err != nil {
			return ColorA{}, err
		}
		return c.WithAlpha(0xff), nil
	case 4, 8:
		v, err := parseHexDigits(s, hex)
		if err != nil {
			return ColorA{}, err
		}
		return ColorA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	default:
		return ColorA{}, fmt.Errorf("%w %q: want 3, 4, 6 or 8 hex digits", ErrInvalidColor, s)
	}
}

func trimHash(s string) string {
	if s != "" && s[0] == '#' {
		return s[1:]
	}
	return s
}

// parseHexDigits splits hex into 1- or 2-digit channels. Single digits are
// expanded by repetition (f -> ff).
func parseHexDigits(orig, hex string) ([]uint8, error) {
	step := 1
	if len(hex) >= 6 {
		step = 2
	}
	out := make([]uint8, 0, 4)
	for i := 0; i < len(hex); i += step {
		v, err := strconv.ParseUint(hex[i:i+step], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrInvalidColor, orig)
		}
		if step == 1 {
			v *= 0x11
		}
		out = append(out, uint8(v))
	}
	return out, nil
}
