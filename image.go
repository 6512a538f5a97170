package userbar

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Decoders accepted for background images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// NewBgImage converts img to a background image placed at p.
// Any image type is accepted; pixels are converted to non-premultiplied
// RGBA8.
func NewBgImage(img image.Image, p Placement) *BgImage {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) || nrgba.Stride != b.Dx()*4 {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &BgImage{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Data:      nrgba.Pix,
		Placement: p,
	}
}

// DecodeBgImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image from r.
func DecodeBgImage(r io.Reader, p Placement) (*BgImage, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("userbar: decode background image: %w", err)
	}
	bg := NewBgImage(img, p)
	Logger().Debug("userbar: background image decoded",
		"format", format, "width", bg.Width, "height", bg.Height)
	return bg, nil
}

// LoadBgImage reads a background image from path.
func LoadBgImage(path string, p Placement) (*BgImage, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("userbar: open background image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeBgImage(f, p)
}

// ScaleToHeight returns a copy of b resampled to height h, keeping the
// aspect ratio. Placement is preserved.
func (b *BgImage) ScaleToHeight(h int) *BgImage {
	if h <= 0 || h == b.Height {
		return b
	}
	w := max(1, (b.Width*h+b.Height/2)/b.Height)
	src := &image.NRGBA{
		Pix:    b.Data,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return &BgImage{
		Width:     w,
		Height:    h,
		Data:      dst.Pix,
		Placement: b.Placement,
	}
}
