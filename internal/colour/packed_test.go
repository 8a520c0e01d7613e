package colour

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestComposeDecompose(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Packed
	}{
		{name: "black", r: 0, g: 0, b: 0, want: 0xff000000},
		{name: "white", r: 255, g: 255, b: 255, want: 0xffffffff},
		{name: "red", r: 255, g: 0, b: 0, want: 0xffff0000},
		{name: "mixed", r: 0x12, g: 0x34, b: 0x56, want: 0xff123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("Compose() = %#08x, want %#08x", uint32(got), uint32(tt.want))
			}
			r, g, b := Decompose(got)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Decompose() = (%d, %d, %d), want (%d, %d, %d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestDecomposeIgnoresAlpha(t *testing.T) {
	r, g, b := Decompose(Packed(0x00a0b0c0))
	if r != 0xa0 || g != 0xb0 || b != 0xc0 {
		t.Errorf("Decompose() = (%#x, %#x, %#x), want (0xa0, 0xb0, 0xc0)", r, g, b)
	}
}

func TestRgbClamps(t *testing.T) {
	if got, want := Rgb(-10, 300, 128), Compose(0, 255, 128); got != want {
		t.Errorf("Rgb(-10, 300, 128) = %s, want %s", got, want)
	}
}

func TestComposeFloat(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    Packed
	}{
		{name: "truncates", r: 12.99, g: 0.5, b: 254.999, want: Compose(12, 0, 254)},
		{name: "clamps", r: -3.2, g: 255.7, b: 1000, want: Compose(0, 255, 255)},
		{name: "nan", r: math.NaN(), g: 10, b: 10, want: Compose(0, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeFloat(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("ComposeFloat() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPackedColorInterop(t *testing.T) {
	c := Compose(10, 20, 30)
	if got := FromColor(c); got != c {
		t.Errorf("FromColor(Packed) = %s, want %s", got, c)
	}

	nrgba := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	if got := FromColor(nrgba); got != c {
		t.Errorf("FromColor(NRGBA) = %s, want %s", got, c)
	}

	if got, want := c.Hex(), "#0a141e"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
	if got, want := c.String(), "rgb(10, 20, 30)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Packed
	}{
		{name: "long hex", input: "#3366cc", want: Compose(0x33, 0x66, 0xcc)},
		{name: "upper hex", input: "#3366CC", want: Compose(0x33, 0x66, 0xcc)},
		{name: "short hex", input: "#36c", want: Compose(0x33, 0x66, 0xcc)},
		{name: "bare hex", input: "3366cc", want: Compose(0x33, 0x66, 0xcc)},
		{name: "rgb function", input: "rgb(51, 102, 204)", want: Compose(51, 102, 204)},
		{name: "rgb function no spaces", input: "RGB(1,2,3)", want: Compose(1, 2, 3)},
		{name: "named", input: "red", want: Compose(255, 0, 0)},
		{name: "named mixed case", input: "CornflowerBlue", want: Compose(100, 149, 237)},
		{name: "surrounding space", input: "  #000000 ", want: Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.input)
			if err != nil {
				t.Fatalf("ParseColour(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColourErrors(t *testing.T) {
	inputs := []string{
		"",
		"#12345",
		"#gggggg",
		"rgb(1, 2)",
		"rgb(1, 2, 256)",
		"rgb(a, b, c)",
		"notacolour",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColour(in)
			if !errors.Is(err, ErrInvalidColour) {
				t.Errorf("ParseColour(%q) error = %v, want ErrInvalidColour", in, err)
			}
		})
	}
}
