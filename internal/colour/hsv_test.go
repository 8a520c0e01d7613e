package colour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestToHSV(t *testing.T) {
	tests := []struct {
		name  string
		color Packed
		want  HSV
	}{
		{name: "red", color: Compose(255, 0, 0), want: HSV{H: 0, S: 1, V: 1}},
		{name: "green", color: Compose(0, 255, 0), want: HSV{H: 120, S: 1, V: 1}},
		{name: "blue", color: Compose(0, 0, 255), want: HSV{H: 240, S: 1, V: 1}},
		{name: "magenta", color: Compose(255, 0, 255), want: HSV{H: 300, S: 1, V: 1}},
		{name: "black", color: Black, want: HSV{}},
		{name: "grey", color: Compose(128, 128, 128), want: HSV{H: 0, S: 0, V: 128.0 / 255}},
		{name: "cobalt", color: Compose(0x33, 0x66, 0xcc), want: HSV{H: 220, S: 0.75, V: 0.8}},
	}

	opt := cmpopts.EquateApprox(0, 1e-9)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHSV(tt.color)
			if diff := cmp.Diff(tt.want, got, opt); diff != "" {
				t.Errorf("ToHSV() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colours := []Packed{
		Black, White,
		Compose(255, 0, 0), Compose(0, 255, 0), Compose(0, 0, 255),
		Compose(0x33, 0x66, 0xcc), Compose(10, 200, 90), Compose(128, 128, 128),
		Compose(1, 2, 3), Compose(250, 128, 114),
	}

	for _, c := range colours {
		t.Run(c.Hex(), func(t *testing.T) {
			if got := HSVToColor(ToHSV(c)); got != c {
				t.Errorf("HSVToColor(ToHSV(%s)) = %s", c.Hex(), got.Hex())
			}
		})
	}
}

func TestHSVToColorPinsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		hsv  HSV
		want Packed
	}{
		{name: "saturation above one", hsv: HSV{H: 120, S: 1.5, V: 1}, want: Compose(0, 255, 0)},
		{name: "negative value", hsv: HSV{H: 120, S: 1, V: -0.2}, want: Black},
		{name: "value above one", hsv: HSV{H: 0, S: 0, V: 3}, want: White},
		{name: "hue of 360 is red", hsv: HSV{H: 360, S: 1, V: 1}, want: Compose(255, 0, 0)},
		{name: "negative hue is red", hsv: HSV{H: -40, S: 1, V: 1}, want: Compose(255, 0, 0)},
		{name: "nan saturation is grey", hsv: HSV{H: 90, S: math.NaN(), V: 1}, want: White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToColor(tt.hsv); got != tt.want {
				t.Errorf("HSVToColor(%v) = %s, want %s", tt.hsv, got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestAddDegrees(t *testing.T) {
	tests := []struct {
		name        string
		base, delta float64
		want        float64
	}{
		{name: "within range", base: 100, delta: 20, want: 120},
		{name: "wraps above 360", base: 350, delta: 30, want: 20},
		{name: "exactly 360 is kept", base: 180, delta: 180, want: 360},
		{name: "negative is mirrored", base: 10, delta: -30, want: 20},
		{name: "zero", base: 0, delta: 0, want: 0},
		{name: "large delta only wraps once", base: 300, delta: 500, want: 440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDegrees(tt.base, tt.delta); got != tt.want {
				t.Errorf("AddDegrees(%v, %v) = %v, want %v", tt.base, tt.delta, got, tt.want)
			}
		})
	}
}
