package colour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestToLab(t *testing.T) {
	tests := []struct {
		name  string
		color Packed
		want  Lab
	}{
		{name: "black", color: Black, want: Lab{}},
		{name: "white", color: White, want: Lab{L: 100, A: 0.0053, B: -0.0104}},
		{name: "red", color: Compose(255, 0, 0), want: Lab{L: 53.2329, A: 80.1093, B: 67.2201}},
		{name: "green", color: Compose(0, 255, 0), want: Lab{L: 87.7370, A: -86.1846, B: 83.1812}},
		{name: "blue", color: Compose(0, 0, 255), want: Lab{L: 32.3026, A: 79.1967, B: -107.8637}},
		{name: "grey", color: Compose(128, 128, 128), want: Lab{L: 53.5850, A: 0.0032, B: -0.0062}},
		{name: "near black uses linear segment", color: Compose(1, 2, 3), want: Lab{L: 0.5099, A: -0.1223, B: -0.4708}},
	}

	opt := cmpopts.EquateApprox(0, 1e-3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLab(tt.color)
			if diff := cmp.Diff(tt.want, got, opt); diff != "" {
				t.Errorf("ToLab() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabRoundTrip(t *testing.T) {
	colours := []Packed{
		Black, White,
		Compose(255, 0, 0), Compose(0, 255, 0), Compose(0, 0, 255),
		Compose(255, 255, 0), Compose(0, 255, 255), Compose(255, 0, 255),
		Compose(128, 128, 128), Compose(200, 100, 50), Compose(18, 52, 86),
		Compose(1, 2, 3),
	}

	for _, c := range colours {
		t.Run(c.Hex(), func(t *testing.T) {
			got := FromLab(ToLab(c))
			if !withinOne(c, got) {
				t.Errorf("FromLab(ToLab(%s)) = %s, want within 1 per channel", c.Hex(), got.Hex())
			}
		})
	}
}

func TestFromLabClampsOutOfGamut(t *testing.T) {
	tests := []struct {
		name string
		lab  Lab
		want Packed
	}{
		{name: "beyond white", lab: Lab{L: 150}, want: White},
		{name: "below black", lab: Lab{L: -20}, want: Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromLab(tt.lab); got != tt.want {
				t.Errorf("FromLab(%v) = %s, want %s", tt.lab, got.Hex(), tt.want.Hex())
			}
		})
	}
}

func withinOne(a, b Packed) bool {
	ar, ag, ab := Decompose(a)
	br, bg, bb := Decompose(b)
	return absDiff(ar, br) <= 1 && absDiff(ag, bg) <= 1 && absDiff(ab, bb) <= 1
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
