package userbar

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"time"

	"github.com/gogpu/userbar/internal/raster"
)

// Generate renders o and returns Width*Height*3 bytes of row-major sRGB
// pixel data.
func Generate(o *Options) ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	c := raster.New(o.Width, o.Height)
	composite(c, o.Layers())
	return c.Bytes(), nil
}

// composite runs layers over c in order.
func composite(c *raster.Canvas, layers []Layer) {
	log := Logger()
	for _, l := range layers {
		start := time.Now()
		l.apply(c)
		log.Debug("userbar: layer composited",
			slog.String("kind", l.Kind.String()),
			slog.Duration("elapsed", time.Since(start)))
	}
}

// GenerateRGBA renders o and returns Width*Height*4 bytes of row-major
// sRGB pixel data with every alpha byte set to 0xff.
func GenerateRGBA(o *Options) ([]byte, error) {
	rgb, err := Generate(o)
	if err != nil {
		return nil, err
	}
	n := len(rgb) / 3
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		copy(out[i*4:i*4+3], rgb[i*3:i*3+3])
		out[i*4+3] = 0xff
	}
	return out, nil
}

// GenerateImage renders o into an opaque *image.NRGBA.
func GenerateImage(o *Options) (*image.NRGBA, error) {
	pix, err := GenerateRGBA(o)
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: o.Width * 4,
		Rect:   image.Rect(0, 0, o.Width, o.Height),
	}, nil
}

// WritePNG renders o and encodes it to w as PNG. The image is opaque, so
// the encoder writes an RGB PNG.
func WritePNG(w io.Writer, o *Options) error {
	img, err := GenerateImage(o)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("userbar: encode PNG: %w", err)
	}
	return nil
}
