package userbar

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		p, fallback  AxisPlacement
		inner, outer int
		want         int
	}{
		{"center", Center(), Auto(), 4, 10, 3},
		{"center truncates", Center(), Auto(), 4, 11, 3},
		{"center negative truncates toward zero", Center(), Auto(), 11, 4, -3},
		{"end", End(2), Auto(), 4, 10, 4},
		{"start", Start(2), Auto(), 100, 10, 2},
		{"auto uses fallback", Auto(), End(6), 20, 350, 324},
		{"auto center", Auto(), Center(), 7, 19, 6},
		{"fallback ignored", Start(1), End(6), 20, 350, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.p, tt.fallback, tt.inner, tt.outer); got != tt.want {
				t.Errorf("Resolve(%v, %v, %d, %d) = %d, want %d",
					tt.p, tt.fallback, tt.inner, tt.outer, got, tt.want)
			}
		})
	}
}

func TestResolveUnresolvedAutoPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve(Auto, Auto) did not panic")
		}
	}()
	Resolve(Auto(), Auto(), 1, 2)
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in   string
		want Placement
	}{
		{"auto,auto", AutoPlacement()},
		{"center,center", Placement{Horz: Center(), Vert: Center()}},
		{"4,-2", Placement{Horz: Start(4), Vert: End(2)}},
		{"-0,0", Placement{Horz: End(0), Vert: Start(0)}},
		{"auto,-3", Placement{Horz: Auto(), Vert: End(3)}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlacement(tt.in)
			if err != nil {
				t.Fatalf("ParsePlacement(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlacement(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if s := got.String(); s != tt.in {
				t.Errorf("String() = %q, want %q", s, tt.in)
			}
		})
	}
}

func TestParsePlacementErrors(t *testing.T) {
	for _, in := range []string{"", "auto", "1,2,3", "left,0", "0,bottom", "-x,0"} {
		if _, err := ParsePlacement(in); !errors.Is(err, ErrInvalidPlacement) {
			t.Errorf("ParsePlacement(%q) error = %v, want ErrInvalidPlacement", in, err)
		}
	}
}

func TestPlacementUnmarshalText(t *testing.T) {
	var p Placement
	if err := p.UnmarshalText([]byte("center,-1")); err != nil {
		t.Fatal(err)
	}
	if p.Horz != Center() || p.Vert != End(1) {
		t.Errorf("UnmarshalText = %+v", p)
	}
}
