// Package raster provides the pixel canvas the userbar compositor draws on.
//
// The canvas stores linear-light RGB only. Every write composites its own
// color with the standard non-premultiplied "over" operator and then
// discards the alpha.
package raster

import (
	"fmt"

	"github.com/gogpu/userbar/internal/color"
)

// Canvas is a width × height grid of linear-light RGB triples.
//
// Drawing calls require in-range coordinates; an out-of-range call is a
// programming error and panics. Bytes consumes the canvas.
type Canvas struct {
	width  int
	height int
	data   []float32 // linear RGB, 3 floats per pixel
}

// New creates a black canvas with the given dimensions.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: negative canvas size %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]float32, width*height*3),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// index returns the offset of pixel (x, y) in data.
func (c *Canvas) index(x, y int) int {
	if c.data == nil {
		panic("raster: canvas used after Bytes")
	}
	if uint(x) >= uint(c.width) || uint(y) >= uint(c.height) {
		panic(fmt.Sprintf("raster: pixel (%d, %d) outside %dx%d canvas", x, y, c.width, c.height))
	}
	return (y*c.width + x) * 3
}

// At returns the stored color of pixel (x, y) as an opaque linear color.
func (c *Canvas) At(x, y int) color.Linear {
	i := c.index(x, y)
	return color.Opaque(c.data[i], c.data[i+1], c.data[i+2])
}

// DrawPixel composites col over pixel (x, y) in linear light:
//
//	dst = dst*(1-α) + col*α
//
// Only the RGB result is stored.
func (c *Canvas) DrawPixel(x, y int, col color.Linear) {
	i := c.index(x, y)
	dst := color.Opaque(c.data[i], c.data[i+1], c.data[i+2])
	out := color.Add(color.Scale(dst, 1-col.A), color.Scale(col, col.A))
	c.data[i+0] = out.R
	c.data[i+1] = out.G
	c.data[i+2] = out.B
}

// HorizontalLine composites col over row y from x0 to x1 inclusive.
// An empty range (x1 < x0) draws nothing.
func (c *Canvas) HorizontalLine(x0, x1, y int, col color.Linear) {
	for x := x0; x <= x1; x++ {
		c.DrawPixel(x, y, col)
	}
}

// VerticalLine composites col over column x from y0 to y1 inclusive.
// An empty range (y1 < y0) draws nothing.
func (c *Canvas) VerticalLine(y0, y1, x int, col color.Linear) {
	for y := y0; y <= y1; y++ {
		c.DrawPixel(x, y, col)
	}
}

// VerticalGradient fills the rectangle [x0,x1]×[y0,y1] with a top-to-bottom
// gradient between two opaque sRGB colors.
//
// Interpolation happens on the sRGB bytes, not in linear light; each row's
// mixed color is converted to linear afterwards. When y0 == y1 the single
// row gets the top color; channels equal at both ends stay constant.
func (c *Canvas) VerticalGradient(x0, x1, y0, y1 int, top, bottom [3]uint8) {
	span := y1 - y0
	for y := y0; y <= y1; y++ {
		var fracBottom float32
		if span != 0 {
			fracBottom = float32(y-y0) / float32(span)
		}
		fracTop := 1 - fracBottom
		mix := func(t, b uint8) float32 {
			if t == b {
				// The weighted sum can land one ulp off t/255.
				return float32(t) / 255
			}
			return float32(float32(t)/255*fracTop) + float32(float32(b)/255*fracBottom)
		}
		row := color.FromSRGB(
			mix(top[0], bottom[0]),
			mix(top[1], bottom[1]),
			mix(top[2], bottom[2]),
			1,
		)
		c.HorizontalLine(x0, x1, y, row)
	}
}

// Bytes encodes the canvas as row-major sRGB bytes, 3 per pixel, truncating
// each channel (see color.ToSRGB8). The canvas must not be used afterwards.
func (c *Canvas) Bytes() []byte {
	if c.data == nil {
		panic("raster: canvas used after Bytes")
	}
	out := make([]byte, len(c.data))
	for i, v := range c.data {
		out[i] = color.ToSRGB8(v)
	}
	c.data = nil
	return out
}
