package raster

import "github.com/gogpu/userbar/internal/color"

// Subsampling grid used for boundary pixels: offsets -3/7 .. +3/7 per axis.
const (
	subSteps   = 7
	subHalf    = 3
	subSamples = subSteps * subSteps
)

// Ellipse composites a filled, anti-aliased ellipse centred on (cx, cy) with
// semi-axes a and b over the whole canvas.
//
// Each pixel is classified by its corners 3/7 px away from its centre.
// If the outer corner is inside, the pixel is fully covered. If the inner
// corner is outside, the pixel is skipped. Only the remaining boundary pixels
// are subsampled on a 7×7 grid, and their alpha is scaled by the covered
// fraction.
func (c *Canvas) Ellipse(cx, cy, a, b float32, col color.Linear) {
	ia2 := 1 / (a * a)
	ib2 := 1 / (b * b)
	inside := func(x, y float32) bool {
		return float32(x*x*ia2)+float32(y*y*ib2) <= 1
	}
	const corner = float32(subHalf) / subSteps

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			dx := float32(x) - cx
			dy := float32(y) - cy

			// Step toward the exterior of the quadrant the pixel is in.
			ox, oy := corner, corner
			if dx < 0 {
				ox = -corner
			}
			if dy < 0 {
				oy = -corner
			}

			if inside(dx+ox, dy+oy) {
				c.DrawPixel(x, y, col)
				continue
			}
			if !inside(dx-ox, dy-oy) {
				continue
			}

			n := 0
			for sx := -subHalf; sx <= subHalf; sx++ {
				for sy := -subHalf; sy <= subHalf; sy++ {
					if inside(dx+float32(sx)/subSteps, dy+float32(sy)/subSteps) {
						n++
					}
				}
			}
			c.DrawPixel(x, y, col.WithAlpha(float32(n)/subSamples))
		}
	}
}
