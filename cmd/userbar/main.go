// Command userbar renders a userbar banner to a PNG file.
//
// Usage:
//
//	userbar -t "some text" -o bar.png [options]
//
// Flags override a -config preset, which overrides the built-in defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/userbar"
	"github.com/gogpu/userbar/internal/preset"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("userbar: ")
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// flags holds the parsed command line. Alias pairs share a variable.
type flags struct {
	gradTop, gradBottom userbar.Color
	width, height       int
	output              string

	bgImage string
	bgPos   userbar.Placement
	bgFit   bool

	text             string
	textPos          userbar.Placement
	textColor        userbar.ColorA
	textOutlineColor userbar.ColorA

	noEllipse       bool
	ellipseColor    userbar.ColorA
	textOverEllipse bool

	noBorder    bool
	borderColor userbar.ColorA

	noScan    bool
	scanColor userbar.ColorA
	scanFlip  bool
	scanWidth int

	config  string
	format  string
	verbose bool
}

func newFlagSet(f *flags, stderr io.Writer) *flag.FlagSet {
	def := userbar.DefaultOptions()
	fs := flag.NewFlagSet("userbar", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.TextVar(&f.gradTop, "grad-top", def.TopColor, "color of the top of the background gradient")
	fs.TextVar(&f.gradBottom, "grad-bottom", def.BottomColor, "color of the bottom of the background gradient")
	for _, name := range []string{"w", "width"} {
		fs.IntVar(&f.width, name, def.Width, "output width")
	}
	for _, name := range []string{"h", "height"} {
		fs.IntVar(&f.height, name, def.Height, "output height")
	}
	for _, name := range []string{"o", "output"} {
		fs.StringVar(&f.output, name, "", "output file (required)")
	}

	for _, name := range []string{"i", "bg-image"} {
		fs.StringVar(&f.bgImage, name, "", "background image (PNG, JPEG, GIF, BMP, TIFF or WebP)")
	}
	fs.TextVar(&f.bgPos, "bg-pos", userbar.AutoPlacement(), "placement of the background image")
	fs.BoolVar(&f.bgFit, "bg-fit", false, "scale the background image to the output height")

	for _, name := range []string{"t", "text"} {
		fs.StringVar(&f.text, name, "", "text to draw (required unless set by -config)")
	}
	fs.TextVar(&f.textPos, "text-pos", def.TextPlacement, "placement of the text")
	fs.TextVar(&f.textColor, "text-color", def.TextColor, "color of the text")
	fs.TextVar(&f.textOutlineColor, "text-outline-color", def.TextOutlineColor, "color of the text outline")

	fs.BoolVar(&f.noEllipse, "no-ellipse", false, "disable the glare ellipse")
	fs.TextVar(&f.ellipseColor, "ellipse-color", *def.Ellipse, "color of the ellipse")
	fs.BoolVar(&f.textOverEllipse, "text-over-ellipse", false, "draw the text above the ellipse instead of below")

	fs.BoolVar(&f.noBorder, "no-border", false, "disable the border")
	fs.TextVar(&f.borderColor, "border-color", *def.Border, "color of the border")

	fs.BoolVar(&f.noScan, "no-scan", false, "disable the scanlines")
	fs.TextVar(&f.scanColor, "scan-color", def.Stripes.Color, "color of the scanlines")
	fs.BoolVar(&f.scanFlip, "scan-flip", false, "flip the scanline direction")
	fs.IntVar(&f.scanWidth, "scan-width", def.Stripes.Spacing, "width of the scanline pattern")

	fs.StringVar(&f.config, "config", "", "TOML preset applied before the flags")
	fs.StringVar(&f.format, "format", "png", "output format: png, rgb or rgba (raw pixels)")
	fs.BoolVar(&f.verbose, "v", false, "log debug output to stderr")
	return fs
}

func run(args []string, stderr io.Writer) error {
	var f flags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unrecognized arguments: %q", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	has := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	if f.verbose {
		userbar.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer userbar.SetLogger(nil)
	}

	if f.output == "" {
		return errors.New("-o/-output is required")
	}
	opts := userbar.DefaultOptions()
	if f.config != "" {
		p, err := preset.Load(f.config)
		if err != nil {
			return err
		}
		// A fitted preset background must see the final height.
		if has("w", "width") {
			p.Width = &f.width
		}
		if has("h", "height") {
			p.Height = &f.height
		}
		if err := p.Apply(&opts); err != nil {
			return err
		}
	}

	if has("grad-top") {
		opts.TopColor = f.gradTop
	}
	if has("grad-bottom") {
		opts.BottomColor = f.gradBottom
	}
	if has("w", "width") {
		opts.Width = f.width
	}
	if has("h", "height") {
		opts.Height = f.height
	}

	switch {
	case has("i", "bg-image"):
		img, err := userbar.LoadBgImage(f.bgImage, f.bgPos)
		if err != nil {
			return err
		}
		if f.bgFit {
			img = img.ScaleToHeight(opts.Height)
		}
		opts.BgImage = img
	case opts.BgImage != nil:
		// Background from the preset.
		if has("bg-pos") {
			img := *opts.BgImage
			img.Placement = f.bgPos
			opts.BgImage = &img
		}
		if f.bgFit {
			opts.BgImage = opts.BgImage.ScaleToHeight(opts.Height)
		}
	case has("bg-pos"):
		return errors.New("-bg-pos provided without a background image")
	case has("bg-fit"):
		return errors.New("-bg-fit provided without a background image")
	}

	if has("t", "text") {
		opts.Text = f.text
	}
	if opts.Text == "" {
		return errors.New("-t/-text is required")
	}
	if has("text-pos") {
		opts.TextPlacement = f.textPos
	}
	if has("text-color") {
		opts.TextColor = f.textColor
	}
	if has("text-outline-color") {
		opts.TextOutlineColor = f.textOutlineColor
	}

	switch {
	case f.noEllipse:
		opts.Ellipse = nil
	case has("ellipse-color"):
		opts.Ellipse = &f.ellipseColor
	}
	if f.textOverEllipse {
		opts.TextOverEllipse = true
	}

	switch {
	case f.noBorder:
		opts.Border = nil
	case has("border-color"):
		opts.Border = &f.borderColor
	}

	if f.noScan {
		opts.Stripes = nil
	} else if has("scan-color", "scan-flip", "scan-width") {
		s := *userbar.DefaultOptions().Stripes
		if opts.Stripes != nil {
			s = *opts.Stripes
		}
		if has("scan-color") {
			s.Color = f.scanColor
		}
		if f.scanFlip {
			s.OnMainDiagonal = true
		}
		if has("scan-width") {
			s.Spacing = f.scanWidth
		}
		opts.Stripes = &s
	}

	return write(f.output, f.format, &opts)
}

// write renders opts to path in the given format.
func write(path, format string, opts *userbar.Options) (err error) {
	var render func(io.Writer) error
	switch format {
	case "png":
		render = func(w io.Writer) error { return userbar.WritePNG(w, opts) }
	case "rgb", "rgba":
		gen := userbar.Generate
		if format == "rgba" {
			gen = userbar.GenerateRGBA
		}
		render = func(w io.Writer) error {
			buf, err := gen(opts)
			if err != nil {
				return err
			}
			_, err = w.Write(buf)
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want png, rgb or rgba)", format)
	}

	// Validate before creating the file so a bad request leaves nothing behind.
	if err := opts.Validate(); err != nil {
		return err
	}

	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := render(out); err != nil {
		return err
	}
	userbar.Logger().Debug("userbar: wrote output", "path", path, "format", format,
		"width", opts.Width, "height", opts.Height)
	return nil
}
