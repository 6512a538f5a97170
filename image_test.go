package userbar

import (
	"bytes"
	"errors"
	"image"
	stdcolor "image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestNewBgImageFromNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(1, 0, stdcolor.NRGBA{R: 1, G: 2, B: 3, A: 4})

	bg := NewBgImage(src, Placement{Horz: Start(3), Vert: End(1)})
	if bg.Width != 2 || bg.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", bg.Width, bg.Height)
	}
	if !bytes.Equal(bg.Data[4:8], []byte{1, 2, 3, 4}) {
		t.Errorf("pixel 1 = %v, want [1 2 3 4]", bg.Data[4:8])
	}
	if bg.Placement.Horz != Start(3) || bg.Placement.Vert != End(1) {
		t.Errorf("placement = %v", bg.Placement)
	}
}

func TestNewBgImageConverts(t *testing.T) {
	gray := image.NewGray(image.Rect(5, 5, 8, 7))
	gray.SetGray(7, 6, stdcolor.Gray{Y: 0x80})

	bg := NewBgImage(gray, AutoPlacement())
	if bg.Width != 3 || bg.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", bg.Width, bg.Height)
	}
	if len(bg.Data) != 3*2*4 {
		t.Fatalf("len(Data) = %d, want 24", len(bg.Data))
	}
	last := bg.Data[len(bg.Data)-4:]
	if !bytes.Equal(last, []byte{0x80, 0x80, 0x80, 0xff}) {
		t.Errorf("last pixel = %v, want gray 0x80 opaque", last)
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeBgImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.SetNRGBA(3, 2, stdcolor.NRGBA{R: 0xff, A: 0x80})

	bg, err := DecodeBgImage(bytes.NewReader(encodePNG(t, src)), AutoPlacement())
	if err != nil {
		t.Fatalf("DecodeBgImage: %v", err)
	}
	if bg.Width != 4 || bg.Height != 3 {
		t.Fatalf("size = %dx%d, want 4x3", bg.Width, bg.Height)
	}
	if !bytes.Equal(bg.Data[len(bg.Data)-4:], []byte{0xff, 0, 0, 0x80}) {
		t.Errorf("last pixel = %v", bg.Data[len(bg.Data)-4:])
	}
}

func TestDecodeBgImageGarbage(t *testing.T) {
	if _, err := DecodeBgImage(bytes.NewReader([]byte("not an image")), AutoPlacement()); err == nil {
		t.Error("DecodeBgImage accepted garbage")
	}
}

func TestLoadBgImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	if err := os.WriteFile(path, encodePNG(t, image.NewGray(image.Rect(0, 0, 5, 5))), 0o600); err != nil {
		t.Fatal(err)
	}
	bg, err := LoadBgImage(path, AutoPlacement())
	if err != nil {
		t.Fatalf("LoadBgImage: %v", err)
	}
	if bg.Width != 5 || bg.Height != 5 {
		t.Errorf("size = %dx%d, want 5x5", bg.Width, bg.Height)
	}
}

func TestLoadBgImageMissing(t *testing.T) {
	_, err := LoadBgImage(filepath.Join(t.TempDir(), "missing.png"), AutoPlacement())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestScaleToHeight(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	bg := NewBgImage(src, Placement{Horz: End(2), Vert: Center()})

	scaled := bg.ScaleToHeight(19)
	if scaled.Width != 38 || scaled.Height != 19 {
		t.Fatalf("size = %dx%d, want 38x19", scaled.Width, scaled.Height)
	}
	if len(scaled.Data) != 38*19*4 {
		t.Fatalf("len(Data) = %d", len(scaled.Data))
	}
	if scaled.Placement != bg.Placement {
		t.Errorf("placement = %v, want %v", scaled.Placement, bg.Placement)
	}
	// A solid image stays solid.
	if !bytes.Equal(scaled.Data[:4], []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("first pixel = %v", scaled.Data[:4])
	}

	if same := bg.ScaleToHeight(20); same != bg {
		t.Error("ScaleToHeight to the current height should return the receiver")
	}
}

func TestBgImageRendered(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, stdcolor.NRGBA{G: 0xff, A: 0xff})

	o := plainOptions(3, 3, RGB(0, 0, 0))
	o.BgImage = NewBgImage(src, Placement{Horz: Center(), Vert: Center()})
	px := render(t, o)
	if got, want := px(1, 1), roundTrip(RGB(0, 0xff, 0)); got != want {
		t.Errorf("centre = %v, want %v", got, want)
	}
}

func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 10)
	}
	return img
}
