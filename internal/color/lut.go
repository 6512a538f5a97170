package color

// sRGBToLinearLUT maps every sRGB byte to its linear value.
// Entries are computed with SRGBToLinear so FromSRGB8(v) and
// FromSRGB(v/255) agree exactly.
var sRGBToLinearLUT [256]float32

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}
}

// SRGB8ToLinear returns the linear value of an sRGB byte.
func SRGB8ToLinear(s uint8) float32 {
	return sRGBToLinearLUT[s]
}
