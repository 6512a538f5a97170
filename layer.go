package userbar

import (
	"fmt"
	"image"

	"github.com/gogpu/userbar/internal/color"
	"github.com/gogpu/userbar/internal/glyph"
	"github.com/gogpu/userbar/internal/raster"
)

// LayerKind identifies one compositing step.
type LayerKind uint8

// Layer kinds, in compositing order.
const (
	LayerGradient LayerKind = iota
	LayerStripes
	LayerBgImage
	LayerEllipse
	LayerText
	LayerBorder
)

// String returns the layer name.
func (k LayerKind) String() string {
	switch k {
	case LayerGradient:
		return "gradient"
	case LayerStripes:
		return "stripes"
	case LayerBgImage:
		return "bg-image"
	case LayerEllipse:
		return "ellipse"
	case LayerText:
		return "text"
	case LayerBorder:
		return "border"
	default:
		return fmt.Sprintf("LayerKind(%d)", uint8(k))
	}
}

// Layer is one step of the compositing pipeline. It captures a copy of the
// options it needs, so applying it depends only on the canvas.
type Layer struct {
	Kind  LayerKind
	apply func(c *raster.Canvas)
}

// Text geometry. The glyph box is 9 rows, but most letters are 5 rows tall;
// the nominal box of 7 covers them plus the 1px outline.
const (
	textBoxHeight = 7
	textPadding   = 2 // outline on both sides
)

// Layers returns the enabled layers of o in compositing order:
// gradient, stripes, background image, ellipse (when the text goes over
// it), text, ellipse (otherwise), border. Disabled layers are omitted.
func (o *Options) Layers() []Layer {
	layers := []Layer{gradientLayer(o.TopColor, o.BottomColor)}
	if o.Stripes != nil {
		layers = append(layers, stripesLayer(*o.Stripes))
	}
	if o.BgImage != nil {
		layers = append(layers, bgImageLayer(*o.BgImage))
	}
	if o.Ellipse != nil && o.TextOverEllipse {
		layers = append(layers, ellipseLayer(*o.Ellipse))
	}
	if o.Text != "" {
		layers = append(layers, textLayer(o.Text, o.TextPlacement, o.TextColor, o.TextOutlineColor))
	}
	if o.Ellipse != nil && !o.TextOverEllipse {
		layers = append(layers, ellipseLayer(*o.Ellipse))
	}
	if o.Border != nil {
		layers = append(layers, borderLayer(*o.Border))
	}
	return layers
}

func gradientLayer(top, bottom Color) Layer {
	return Layer{Kind: LayerGradient, apply: func(c *raster.Canvas) {
		c.VerticalGradient(0, c.Width()-1, 0, c.Height()-1, top.bytes(), bottom.bytes())
	}}
}

func stripesLayer(p StripePattern) Layer {
	col := p.Color.linear()
	return Layer{Kind: LayerStripes, apply: func(c *raster.Canvas) {
		for y := 0; y < c.Height(); y++ {
			for x := 0; x < c.Width(); x++ {
				d := x + y
				if p.OnMainDiagonal {
					d = x - y
				}
				if d%p.Spacing == 0 {
					c.DrawPixel(x, y, col)
				}
			}
		}
	}}
}

func bgImageLayer(img BgImage) Layer {
	return Layer{Kind: LayerBgImage, apply: func(c *raster.Canvas) {
		ox := img.Placement.Horz.Resolve(Start(0), img.Width, c.Width())
		oy := img.Placement.Vert.Resolve(Start(0), img.Height, c.Height())
		// Entirely off canvas. Also keeps ox+Width and oy+Height from overflowing.
		if ox >= c.Width() || oy >= c.Height() || ox <= -img.Width || oy <= -img.Height {
			return
		}
		r := image.Rect(ox, oy, ox+img.Width, oy+img.Height).
			Intersect(image.Rect(0, 0, c.Width(), c.Height()))
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				i := ((y-oy)*img.Width + (x - ox)) * 4
				px := img.Data[i : i+4 : i+4]
				c.DrawPixel(x, y, color.FromSRGB8(px[0], px[1], px[2], px[3]))
			}
		}
	}}
}

// ellipseLayer draws the glare: an ellipse centred on the top edge, spanning
// the full width and reaching half way down.
func ellipseLayer(col ColorA) Layer {
	lc := col.linear()
	return Layer{Kind: LayerEllipse, apply: func(c *raster.Canvas) {
		w, h := float32(c.Width()), float32(c.Height())
		c.Ellipse(w/2, 0, w/2, h/2, lc)
	}}
}

func textLayer(text string, p Placement, fill, outline ColorA) Layer {
	cols := glyph.Render(glyph.Builtin(), text)
	fillColor, outlineColor := fill.linear(), outline.linear()

	return Layer{Kind: LayerText, apply: func(c *raster.Canvas) {
		w, h := c.Width(), c.Height()
		// The offsets are computed for the outlined box; shift to the glyphs.
		ox := p.Horz.Resolve(End(6), len(cols)+textPadding, w) + 1
		oy := p.Vert.Resolve(Center(), textBoxHeight, h) - 1

		draw := func(x, y int, col color.Linear) {
			if x >= 0 && x < w && y >= 0 && y < h {
				c.DrawPixel(x, y, col)
			}
		}

		for x, column := range cols {
			for y := 0; y < glyph.Height; y++ {
				if !column.Ink(y) {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						draw(ox+x+dx, oy+y+dy, outlineColor)
					}
				}
			}
		}
		for x, column := range cols {
			for y := 0; y < glyph.Height; y++ {
				if column.Ink(y) {
					draw(ox+x, oy+y, fillColor)
				}
			}
		}
	}}
}

// borderLayer draws a 1px frame. Each edge skips one end so no corner is
// composited twice; on 1px-wide or 1px-tall canvases the affected ranges
// are empty.
func borderLayer(col ColorA) Layer {
	lc := col.linear()
	return Layer{Kind: LayerBorder, apply: func(c *raster.Canvas) {
		w, h := c.Width(), c.Height()
		c.HorizontalLine(1, w-1, 0, lc)
		c.VerticalLine(1, h-1, w-1, lc)
		c.HorizontalLine(0, w-2, h-1, lc)
		c.VerticalLine(0, h-2, 0, lc)
	}}
}
