package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
//
// The explicit float32 conversions keep the compiler from fusing the
// multiply and subtract, so results match plain float32 arithmetic.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return float32(l * 12.92)
	}
	p := float32(math.Pow(float64(l), 1.0/2.4))
	return float32(1.055*p) - 0.055
}

// ToSRGB8 encodes a linear component as an sRGB byte.
//
// The encoded value is scaled to [0, 255] and truncated. There is no rounding
// and no clamping: inputs outside [0, 1] yield whatever the conversion
// produces.
func ToSRGB8(l float32) uint8 {
	s := LinearToSRGB(l)
	return uint8(float32(s * 255))
}

// FromSRGB converts normalised sRGB components to a linear color.
// Alpha passes through unchanged.
func FromSRGB(r, g, b, a float32) Linear {
	return Linear{
		R: SRGBToLinear(r),
		G: SRGBToLinear(g),
		B: SRGBToLinear(b),
		A: a,
	}
}

// FromSRGB8 converts 8-bit sRGB components to a linear color.
// Alpha is mapped to a/255 without any transfer function.
func FromSRGB8(r, g, b, a uint8) Linear {
	return Linear{
		R: sRGBToLinearLUT[r],
		G: sRGBToLinearLUT[g],
		B: sRGBToLinearLUT[b],
		A: float32(a) / 255,
	}
}
