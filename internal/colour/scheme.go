package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScheme is returned for a Scheme value with no generator.
var ErrUnknownScheme = errors.New("unknown colour scheme")

// Scheme selects one of the four-colour scheme generators.
type Scheme int

const (
	// SchemeAnalogous rotates the hue 15 and 30 degrees either way.
	SchemeAnalogous Scheme = iota
	// SchemeMonochromatic keeps the hue and scales saturation and value.
	SchemeMonochromatic
	// SchemeTriad rotates the hue by 120 and 240 degrees.
	SchemeTriad
	// SchemeComplementary pairs the colour with its opposite hue.
	SchemeComplementary
)

var schemeNames = map[Scheme]string{
	SchemeAnalogous:     "analogous",
	SchemeMonochromatic: "monochromatic",
	SchemeTriad:         "triad",
	SchemeComplementary: "complementary",
}

// Schemes returns every scheme in declaration order.
func Schemes() []Scheme {
	return []Scheme{SchemeAnalogous, SchemeMonochromatic, SchemeTriad, SchemeComplementary}
}

// String returns the lowercase scheme name.
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme parses a scheme name, case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	in := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Schemes() {
		if schemeNames[s] == in {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: analogous, monochromatic, triad, complementary)", ErrUnknownScheme, name)
}

// SchemeOfType returns the four colours of the given scheme for c.
// An unrecognised scheme returns a nil slice and an error wrapping
// ErrUnknownScheme.
func SchemeOfType(c Packed, scheme Scheme) ([]Packed, error) {
	hsv := ToHSV(c)

	var out [4]Packed
	switch scheme {
	case SchemeAnalogous:
		out = AnalogousColours(hsv)
	case SchemeMonochromatic:
		out = MonochromaticColours(hsv)
	case SchemeTriad:
		out = TriadColours(hsv)
	case SchemeComplementary:
		out = ComplementaryColours(hsv)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, int(scheme))
	}
	return out[:], nil
}

// AnalogousColours returns the colours 15 and 30 degrees either side of hsv,
// each slightly desaturated and darkened.
func AnalogousColours(hsv HSV) [4]Packed {
	return [4]Packed{
		HSVToColor(HSV{H: AddDegrees(hsv.H, 15), S: hsv.S - 0.05, V: hsv.V - 0.05}),
		HSVToColor(HSV{H: AddDegrees(hsv.H, 30), S: hsv.S - 0.05, V: hsv.V - 0.1}),
		HSVToColor(HSV{H: AddDegrees(hsv.H, -15), S: hsv.S - 0.05, V: hsv.V - 0.05}),
		HSVToColor(HSV{H: AddDegrees(hsv.H, -30), S: hsv.S - 0.05, V: hsv.V - 0.1}),
	}
}

// MonochromaticColours returns four shades sharing the hue of hsv.
func MonochromaticColours(hsv HSV) [4]Packed {
	return [4]Packed{
		HSVToColor(HSV{H: hsv.H, S: hsv.S, V: hsv.V / 2}),
		HSVToColor(HSV{H: hsv.H, S: hsv.S / 2, V: hsv.V / 3}),
		HSVToColor(HSV{H: hsv.H, S: hsv.S / 3, V: hsv.V * 2 / 3}),
		HSVToColor(HSV{H: hsv.H, S: hsv.S, V: hsv.V * 4 / 5}),
	}
}

// TriadColours returns two colours at each of the other triad points.
func TriadColours(hsv HSV) [4]Packed {
	return [4]Packed{
		HSVToColor(HSV{H: AddDegrees(hsv.H, 120), S: hsv.S, V: hsv.V}),
		HSVToColor(HSV{H: AddDegrees(hsv.H, 120), S: hsv.S * 7 / 6, V: hsv.V - 0.05}),
		HSVToColor(HSV{H: AddDegrees(hsv.H, 240), S: hsv.S, V: hsv.V}),
		HSVToColor(HSV{H: AddDegrees(hsv.H, 240), S: hsv.S * 7 / 6, V: hsv.V - 0.05}),
	}
}

// ComplementaryColours returns two variants of hsv followed by two of its
// complement.
func ComplementaryColours(hsv HSV) [4]Packed {
	return [4]Packed{
		HSVToColor(HSV{H: hsv.H, S: hsv.S * 5 / 7, V: hsv.V}),
		HSVToColor(HSV{H: hsv.H, S: hsv.S, V: hsv.V * 4 / 5}),
		HSVToColor(HSV{H: AddDegrees(hsv.H, 180), S: hsv.S, V: hsv.V}),
		HSVToColor(HSV{H: AddDegrees(hsv.H, 180), S: hsv.S * 5 / 7, V: hsv.V}),
	}
}

// ComplementaryColour returns the colour opposite c on the colour wheel,
// keeping its saturation and value.
func ComplementaryColour(c Packed) Packed {
	hsv := ToHSV(c)
	hsv.H = AddDegrees(180, hsv.H)
	return HSVToColor(hsv)
}
