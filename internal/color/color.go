// Package color implements the linear-light color model used by the userbar
// compositor.
//
// Colors arrive as 8-bit sRGB bytes and are converted to linear light before
// any blending happens. Alpha is always linear (never gamma-encoded) and is
// kept non-premultiplied.
package color

// Linear is a color in linear light with independent, non-premultiplied alpha.
//
// Alpha is expected to lie in [0, 1] but is not clamped; callers must not
// pass out-of-range values.
type Linear struct {
	R, G, B, A float32
}

// Opaque returns a fully opaque linear color.
func Opaque(r, g, b float32) Linear {
	return Linear{R: r, G: g, B: b, A: 1}
}

// Add returns the component-wise sum of a and b, alpha included.
func Add(a, b Linear) Linear {
	return Linear{
		R: a.R + b.R,
		G: a.G + b.G,
		B: a.B + b.B,
		A: a.A + b.A,
	}
}

// Scale multiplies every component of c by k, alpha included.
// Products are rounded to float32 so a following Add is never fused.
func Scale(c Linear, k float32) Linear {
	return Linear{
		R: float32(c.R * k),
		G: float32(c.G * k),
		B: float32(c.B * k),
		A: float32(c.A * k),
	}
}

// WithAlpha returns c with its alpha multiplied by k.
func (c Linear) WithAlpha(k float32) Linear {
	c.A *= k
	return c
}
