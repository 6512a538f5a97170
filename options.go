package userbar

import (
	"fmt"
	"math"
)

// StripePattern is the diagonal stripe overlay ("scanlines").
//
// A pixel is striped when x+y (or x-y with OnMainDiagonal) is a multiple of
// Spacing, so there are Spacing-1 blank pixels between stripes.
type StripePattern struct {
	Color          ColorA
	OnMainDiagonal bool
	Spacing        int
}

// BgImage is a background image composited under the text.
//
// Data holds Width*Height pixels as row-major, non-premultiplied RGBA8.
// Placement positions the image's top-left corner on the canvas; Auto
// resolves to the top-left corner.
type BgImage struct {
	Width     int
	Height    int
	Data      []byte
	Placement Placement
}

// Options is a complete render request.
//
// The pointer fields are optional layers: nil disables the layer.
type Options struct {
	Width  int
	Height int

	Text             string
	TextPlacement    Placement
	TextColor        ColorA
	TextOutlineColor ColorA

	// TopColor and BottomColor are the ends of the background gradient.
	TopColor    Color
	BottomColor Color

	// Ellipse is the color of the "glare" ellipse.
	Ellipse *ColorA
	// TextOverEllipse draws the ellipse before the text instead of after it.
	TextOverEllipse bool

	Border  *ColorA
	Stripes *StripePattern
	BgImage *BgImage
}

// DefaultOptions returns the default userbar: 350×19, a blue to light cyan
// gradient, stripes, a soft glare ellipse and a black border.
func DefaultOptions() Options {
	return Options{
		Width:            350,
		Height:           19,
		TextPlacement:    AutoPlacement(),
		TextColor:        RGBA(0xff, 0xff, 0xff, 0xff),
		TextOutlineColor: RGBA(0x00, 0x00, 0x00, 0xff),
		TopColor:         RGB(0x00, 0x00, 0xff),
		BottomColor:      RGB(0x80, 0xff, 0xff),
		Ellipse:          ptr(RGBA(0xff, 0xff, 0xff, 0x28)),
		Border:           ptr(RGBA(0x00, 0x00, 0x00, 0xff)),
		Stripes: &StripePattern{
			Color:   RGBA(0x00, 0x00, 0x00, 0xb4),
			Spacing: 4,
		},
	}
}

// Validate reports whether o can be rendered.
func (o *Options) Validate() error {
	// GenerateRGBA needs Width*Height*4 bytes.
	if o.Width <= 0 || o.Height <= 0 || o.Width > math.MaxInt/4/o.Height {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if o.Stripes != nil && o.Stripes.Spacing < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSpacing, o.Stripes.Spacing)
	}
	if img := o.BgImage; img != nil {
		if img.Width <= 0 || img.Height <= 0 || img.Width > math.MaxInt/4/img.Height ||
			len(img.Data) < img.Width*img.Height*4 {
			return fmt.Errorf("%w: %dx%d image with %d bytes", ErrBgImageData, img.Width, img.Height, len(img.Data))
		}
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
