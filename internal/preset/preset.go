// Package preset loads userbar options from TOML files.
//
// A preset only overrides what it names. Applying one to
// userbar.DefaultOptions() gives the preset's banner; applying it to
// options that already carry other settings leaves those untouched.
//
//	width = 350
//	height = 19
//
//	[text]
//	content = "hello"
//	position = "-6,center"
//	color = "#fff"
//	outline = "#000"
//
//	[gradient]
//	top = "#00f"
//	bottom = "#80ffff"
//
//	[stripes]
//	enabled = true
//	color = "#000000b4"
//	spacing = 4
//
//	[background]
//	image = "bg.png"
//	position = "auto,center"
//	fit = true
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/userbar"
)

// ErrUnknownKey is returned when a preset contains keys that map to no option.
var ErrUnknownKey = errors.New("preset: unknown key")

// Preset is a decoded preset file. Nil fields are absent from the file.
type Preset struct {
	Width  *int `toml:"width"`
	Height *int `toml:"height"`

	Text       Text       `toml:"text"`
	Gradient   Gradient   `toml:"gradient"`
	Ellipse    Toggle     `toml:"ellipse"`
	Border     Toggle     `toml:"border"`
	Stripes    Stripes    `toml:"stripes"`
	Background Background `toml:"background"`

	// dir resolves relative background image paths.
	dir string
}

// Text is the [text] table.
type Text struct {
	Content     *string            `toml:"content"`
	Position    *userbar.Placement `toml:"position"`
	Color       *userbar.ColorA    `toml:"color"`
	Outline     *userbar.ColorA    `toml:"outline"`
	OverEllipse *bool              `toml:"over_ellipse"`
}

// Gradient is the [gradient] table.
type Gradient struct {
	Top    *userbar.Color `toml:"top"`
	Bottom *userbar.Color `toml:"bottom"`
}

// Toggle is an optional layer with a single color: [ellipse] and [border].
type Toggle struct {
	Enabled *bool           `toml:"enabled"`
	Color   *userbar.ColorA `toml:"color"`
}

// Stripes is the [stripes] table.
type Stripes struct {
	Enabled *bool           `toml:"enabled"`
	Color   *userbar.ColorA `toml:"color"`
	Flip    *bool           `toml:"flip"`
	Spacing *int            `toml:"spacing"`
}

// Background is the [background] table.
type Background struct {
	Image    *string            `toml:"image"`
	Position *userbar.Placement `toml:"position"`
	// Fit scales the image to the banner height.
	Fit *bool `toml:"fit"`
}

// Decode reads a preset from r. Relative image paths resolve against the
// working directory.
func Decode(r io.Reader) (*Preset, error) {
	var p Preset
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("preset: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return &p, nil
}

// Load reads the preset at path. Relative image paths resolve against the
// directory containing the preset.
func Load(path string) (*Preset, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("preset: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.dir = filepath.Dir(path)
	userbar.Logger().Debug("preset: loaded", "path", path)
	return p, nil
}

// Apply overrides the fields of o that the preset sets.
//
// Enabling a layer that o has disabled restores its default color unless
// the preset names one. A background image is loaded from disk here.
func (p *Preset) Apply(o *userbar.Options) error {
	def := userbar.DefaultOptions()

	setIf(&o.Width, p.Width)
	setIf(&o.Height, p.Height)

	setIf(&o.Text, p.Text.Content)
	setIf(&o.TextPlacement, p.Text.Position)
	setIf(&o.TextColor, p.Text.Color)
	setIf(&o.TextOutlineColor, p.Text.Outline)
	setIf(&o.TextOverEllipse, p.Text.OverEllipse)

	setIf(&o.TopColor, p.Gradient.Top)
	setIf(&o.BottomColor, p.Gradient.Bottom)

	o.Ellipse = p.Ellipse.apply(o.Ellipse, *def.Ellipse)
	o.Border = p.Border.apply(o.Border, *def.Border)
	o.Stripes = p.Stripes.apply(o.Stripes, *def.Stripes)

	return p.Background.apply(o, p.dir)
}

func (t Toggle) apply(cur *userbar.ColorA, def userbar.ColorA) *userbar.ColorA {
	if t.Enabled != nil && !*t.Enabled {
		return nil
	}
	if t.Color != nil {
		c := *t.Color
		return &c
	}
	if t.Enabled != nil && cur == nil {
		return &def
	}
	return cur
}

func (s Stripes) apply(cur *userbar.StripePattern, def userbar.StripePattern) *userbar.StripePattern {
	if s.Enabled != nil && !*s.Enabled {
		return nil
	}
	if s.Enabled == nil && s.Color == nil && s.Flip == nil && s.Spacing == nil {
		return cur
	}
	out := def
	if cur != nil {
		out = *cur
	}
	setIf(&out.Color, s.Color)
	setIf(&out.OnMainDiagonal, s.Flip)
	setIf(&out.Spacing, s.Spacing)
	return &out
}

func (b Background) apply(o *userbar.Options, dir string) error {
	if b.Image == nil {
		if b.Position != nil && o.BgImage != nil {
			img := *o.BgImage
			img.Placement = *b.Position
			o.BgImage = &img
		}
		return nil
	}

	path := *b.Image
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	pos := userbar.AutoPlacement()
	setIf(&pos, b.Position)

	img, err := userbar.LoadBgImage(path, pos)
	if err != nil {
		return fmt.Errorf("preset: background: %w", err)
	}
	if b.Fit != nil && *b.Fit {
		img = img.ScaleToHeight(o.Height)
	}
	o.BgImage = img
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
