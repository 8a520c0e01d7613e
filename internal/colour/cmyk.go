package colour

import (
	"fmt"
	"math"
)

// CMYK is a subtractive colour with each component nominally in [0, 1].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// String returns the colour in the format "cmyk(c, m, y, k)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%.3f, %.3f, %.3f, %.3f)", c.C, c.M, c.Y, c.K)
}

// ToCMYK converts a colour to CMYK. Pure black has zero chroma components.
func ToCMYK(p Packed) CMYK {
	r, g, b := Decompose(p)
	c := 1 - float64(r)/255
	m := 1 - float64(g)/255
	y := 1 - float64(b)/255

	k := math.Min(1, math.Min(c, math.Min(m, y)))
	if k == 1 {
		return CMYK{K: 1}
	}

	return CMYK{
		C: (c - k) / (1 - k),
		M: (m - k) / (1 - k),
		Y: (y - k) / (1 - k),
		K: k,
	}
}

// FromCMYK converts CMYK back to a packed colour, rounding each channel.
func FromCMYK(cmyk CMYK) Packed {
	c := cmyk.C*(1-cmyk.K) + cmyk.K
	m := cmyk.M*(1-cmyk.K) + cmyk.K
	y := cmyk.Y*(1-cmyk.K) + cmyk.K
	return Rgb(
		int(math.Round((1-c)*255)),
		int(math.Round((1-m)*255)),
		int(math.Round((1-y)*255)),
	)
}
