package userbar

import (
	"errors"
	"math"
	"testing"
)

// plainOptions returns options with every optional layer disabled and a
// flat background.
func plainOptions(w, h int, bg Color) Options {
	o := DefaultOptions()
	o.Width, o.Height = w, h
	o.TopColor, o.BottomColor = bg, bg
	o.Ellipse = nil
	o.Border = nil
	o.Stripes = nil
	return o
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.Width != 350 || o.Height != 19 {
		t.Errorf("size = %dx%d, want 350x19", o.Width, o.Height)
	}
	if o.TopColor != RGB(0, 0, 0xff) || o.BottomColor != RGB(0x80, 0xff, 0xff) {
		t.Errorf("gradient = %v -> %v", o.TopColor, o.BottomColor)
	}
	if o.Ellipse == nil || *o.Ellipse != RGBA(0xff, 0xff, 0xff, 0x28) {
		t.Errorf("Ellipse = %v, want #ffffff28", o.Ellipse)
	}
	if o.Border == nil || *o.Border != RGBA(0, 0, 0, 0xff) {
		t.Errorf("Border = %v, want #000000ff", o.Border)
	}
	if o.Stripes == nil || o.Stripes.Spacing != 4 || o.Stripes.OnMainDiagonal {
		t.Errorf("Stripes = %+v", o.Stripes)
	}
	if o.BgImage != nil {
		t.Error("BgImage should be disabled by default")
	}
	if o.TextPlacement != AutoPlacement() {
		t.Errorf("TextPlacement = %v, want auto,auto", o.TextPlacement)
	}
	if err := o.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDefaultOptionsAreIndependent(t *testing.T) {
	a := DefaultOptions()
	a.Ellipse.A = 0
	a.Stripes.Spacing = 9
	b := DefaultOptions()
	if b.Ellipse.A != 0x28 || b.Stripes.Spacing != 4 {
		t.Error("DefaultOptions shares state between calls")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Options)
		want   error
	}{
		{"zero width", func(o *Options) { o.Width = 0 }, ErrInvalidSize},
		{"negative height", func(o *Options) { o.Height = -1 }, ErrInvalidSize},
		{"zero spacing", func(o *Options) { o.Stripes.Spacing = 0 }, ErrInvalidSpacing},
		{"short image data", func(o *Options) {
			o.BgImage = &BgImage{Width: 2, Height: 2, Data: make([]byte, 15)}
		}, ErrBgImageData},
		{"empty image", func(o *Options) { o.BgImage = &BgImage{} }, ErrBgImageData},
		{"canvas size overflows", func(o *Options) { o.Width, o.Height = math.MaxInt/2, 3 }, ErrInvalidSize},
		{"image size overflows", func(o *Options) {
			o.BgImage = &BgImage{Width: 1 << 62, Height: 4, Data: make([]byte, 16)}
		}, ErrBgImageData},
		{"valid image", func(o *Options) {
			o.BgImage = &BgImage{Width: 2, Height: 2, Data: make([]byte, 16)}
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(&o)
			err := o.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
