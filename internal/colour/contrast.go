package colour

// ContrastingColour picks Black or White for c from a weighted sum of its raw
// 8-bit channels: a = 1 - (0.00299R + 0.00587G + 0.00114B). The weights are
// applied to 0-255 magnitudes without normalising, so a drops below 0.5 for
// all but very dark colours.
func ContrastingColour(c Packed) Packed {
	if contrastWeight(c) < 0.5 {
		return White
	}
	return Black
}

func contrastWeight(c Packed) float64 {
	r, g, b := Decompose(c)
	return 1 - (0.00299*float64(r) + 0.00587*float64(g) + 0.00114*float64(b))
}
