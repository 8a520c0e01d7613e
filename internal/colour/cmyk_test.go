package colour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestToCMYK(t *testing.T) {
	tests := []struct {
		name  string
		color Packed
		want  CMYK
	}{
		{name: "red", color: Compose(255, 0, 0), want: CMYK{C: 0, M: 1, Y: 1, K: 0}},
		{name: "cyan", color: Compose(0, 255, 255), want: CMYK{C: 1, M: 0, Y: 0, K: 0}},
		{name: "white", color: White, want: CMYK{}},
		{name: "black collapses chroma", color: Black, want: CMYK{K: 1}},
		{name: "grey", color: Compose(128, 128, 128), want: CMYK{K: 127.0 / 255}},
		{name: "orange", color: Compose(200, 100, 50), want: CMYK{C: 0, M: 0.5, Y: 0.75, K: 55.0 / 255}},
	}

	opt := cmpopts.EquateApprox(0, 1e-9)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCMYK(tt.color)
			if diff := cmp.Diff(tt.want, got, opt); diff != "" {
				t.Errorf("ToCMYK() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCMYKRoundTrip(t *testing.T) {
	colours := []Packed{
		Black, White,
		Compose(255, 0, 0), Compose(0, 255, 0), Compose(0, 0, 255),
		Compose(255, 255, 0), Compose(0, 255, 255), Compose(255, 0, 255),
		Compose(128, 128, 128), Compose(200, 100, 50), Compose(18, 52, 86),
		Compose(1, 2, 3),
	}

	for _, c := range colours {
		t.Run(c.Hex(), func(t *testing.T) {
			got := FromCMYK(ToCMYK(c))
			if !withinOne(c, got) {
				t.Errorf("FromCMYK(ToCMYK(%s)) = %s, want within 1 per channel", c.Hex(), got.Hex())
			}
		})
	}
}

func TestFromCMYK(t *testing.T) {
	tests := []struct {
		name string
		cmyk CMYK
		want Packed
	}{
		{name: "pure key", cmyk: CMYK{K: 1}, want: Black},
		{name: "key overrides chroma", cmyk: CMYK{C: 0.7, M: 0.2, Y: 0.9, K: 1}, want: Black},
		{name: "none", cmyk: CMYK{}, want: White},
		{name: "half magenta", cmyk: CMYK{M: 0.5}, want: Compose(255, 128, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromCMYK(tt.cmyk); got != tt.want {
				t.Errorf("FromCMYK(%v) = %s, want %s", tt.cmyk, got.Hex(), tt.want.Hex())
			}
		})
	}
}
