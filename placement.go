package userbar

import (
	"fmt"
	"strconv"
	"strings"
)

// Anchor selects how an extent is positioned along one axis.
type Anchor uint8

const (
	// AnchorAuto defers to a caller-supplied fallback.
	AnchorAuto Anchor = iota
	// AnchorCenter centres the inner extent.
	AnchorCenter
	// AnchorStart leaves Offset pixels before the inner extent (left/top).
	AnchorStart
	// AnchorEnd leaves Offset pixels after the inner extent (right/bottom).
	AnchorEnd
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorAuto:
		return "auto"
	case AnchorCenter:
		return "center"
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
}

// AxisPlacement positions a 1-D extent inside another.
// Offset is only meaningful for AnchorStart and AnchorEnd.
type AxisPlacement struct {
	Anchor Anchor
	Offset int
}

// Auto returns a placement that defers to the caller's fallback.
func Auto() AxisPlacement { return AxisPlacement{Anchor: AnchorAuto} }

// Center returns a centring placement.
func Center() AxisPlacement { return AxisPlacement{Anchor: AnchorCenter} }

// Start returns a placement d pixels from the left/top edge.
func Start(d int) AxisPlacement { return AxisPlacement{Anchor: AnchorStart, Offset: d} }

// End returns a placement d pixels from the right/bottom edge.
func End(d int) AxisPlacement { return AxisPlacement{Anchor: AnchorEnd, Offset: d} }

// Resolve returns the pixel offset of an inner extent placed by p inside an
// outer extent. AnchorAuto is replaced by fallback; a fallback that is
// itself Auto is a programming error and panics.
func (p AxisPlacement) Resolve(fallback AxisPlacement, inner, outer int) int {
	if p.Anchor == AnchorAuto {
		p = fallback
	}
	switch p.Anchor {
	case AnchorCenter:
		return (outer - inner) / 2
	case AnchorStart:
		return p.Offset
	case AnchorEnd:
		return outer - inner - p.Offset
	default:
		panic(fmt.Sprintf("userbar: unresolved placement %v", p.Anchor))
	}
}

// Resolve is the function form of AxisPlacement.Resolve.
func Resolve(p, fallback AxisPlacement, inner, outer int) int {
	return p.Resolve(fallback, inner, outer)
}

// String formats p the way ParseAxisPlacement reads it: "auto", "center",
// "N" for Start(N) and "-N" for End(N).
func (p AxisPlacement) String() string {
	switch p.Anchor {
	case AnchorAuto:
		return "auto"
	case AnchorCenter:
		return "center"
	case AnchorStart:
		return strconv.Itoa(p.Offset)
	case AnchorEnd:
		return "-" + strconv.Itoa(p.Offset)
	default:
		return p.Anchor.String()
	}
}

// ParseAxisPlacement parses one axis: "auto", "center", "N" (Start) or
// "-N" (End).
func ParseAxisPlacement(s string) (AxisPlacement, error) {
	switch s {
	case "auto":
		return Auto(), nil
	case "center":
		return Center(), nil
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		d, err := strconv.Atoi(rest)
		if err != nil {
			return AxisPlacement{}, fmt.Errorf("%w %q", ErrInvalidPlacement, s)
		}
		return End(d), nil
	}
	d, err := strconv.Atoi(s)
	if err != nil {
		return AxisPlacement{}, fmt.Errorf("%w %q", ErrInvalidPlacement, s)
	}
	return Start(d), nil
}

// Placement is a pair of independent axis placements.
type Placement struct {
	Horz AxisPlacement
	Vert AxisPlacement
}

// AutoPlacement returns a placement that is Auto on both axes.
func AutoPlacement() Placement {
	return Placement{Horz: Auto(), Vert: Auto()}
}

// ParsePlacement parses "H,V", where each component is accepted by
// ParseAxisPlacement.
func ParsePlacement(s string) (Placement, error) {
	h, v, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(v, ",") {
		return Placement{}, fmt.Errorf("%w %q: expected 2 components", ErrInvalidPlacement, s)
	}
	horz, err := ParseAxisPlacement(h)
	if err != nil {
		return Placement{}, fmt.Errorf("horizontal: %w", err)
	}
	vert, err := ParseAxisPlacement(v)
	if err != nil {
		return Placement{}, fmt.Errorf("vertical: %w", err)
	}
	return Placement{Horz: horz, Vert: vert}, nil
}

// String returns p as "H,V".
func (p Placement) String() string {
	return p.Horz.String() + "," + p.Vert.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePlacement.
func (p *Placement) UnmarshalText(text []byte) error {
	v, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
