package colour

import (
	"fmt"
	"math"
)

// HSV is a hue (degrees), saturation and value triple. Values produced by
// arithmetic on an HSV are not normalised; HSVToColor pins them.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// String returns the HSV value in the format "hsv(h, s, v)".
func (h HSV) String() string {
	return fmt.Sprintf("hsv(%.1f, %.3f, %.3f)", h.H, h.S, h.V)
}

// ToHSV converts a colour to HSV.
// Returns hue (0-360), saturation (0-1), value (0-1).
func ToHSV(c Packed) HSV {
	r, g, b := Decompose(c)
	rf, gf, bf := float64(r), float64(g), float64(b)

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	delta := maxVal - minVal

	v := maxVal / 255.0
	if delta == 0 {
		// Achromatic (grey).
		return HSV{H: 0, S: 0, V: v}
	}

	s := delta / maxVal

	var h float64
	switch maxVal {
	case rf:
		h = (gf - bf) / delta
	case gf:
		h = 2 + (bf-rf)/delta
	default:
		h = 4 + (rf-gf)/delta
	}

	h *= 60
	if h < 0 {
		h += 360
	}
	return HSV{H: h, S: s, V: v}
}

// HSVToColor converts HSV to a colour the way the host platform does:
// saturation and value are pinned to [0, 1], a hue outside [0, 360) is
// treated as 0, and channels are rounded.
func HSVToColor(hsv HSV) Packed {
	s := pin01(hsv.S)
	v := pin01(hsv.V)
	vByte := roundByte(v * 255)

	if s <= 1.0/4096 {
		return Compose(vByte, vByte, vByte)
	}

	hx := 0.0
	if hsv.H >= 0 && hsv.H < 360 {
		hx = hsv.H / 60
	}
	w := math.Floor(hx)
	f := hx - w

	p := roundByte((1 - s) * v * 255)
	q := roundByte((1 - s*f) * v * 255)
	t := roundByte((1 - s*(1-f)) * v * 255)

	switch int(w) {
	case 0:
		return Compose(vByte, t, p)
	case 1:
		return Compose(q, vByte, p)
	case 2:
		return Compose(p, vByte, t)
	case 3:
		return Compose(p, q, vByte)
	case 4:
		return Compose(t, p, vByte)
	default:
		return Compose(vByte, p, q)
	}
}

func pin01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func roundByte(v float64) uint8 {
	return uint8(math.Floor(v + 0.5))
}

// AddDegrees rotates a hue by delta degrees. A sum above 360 has 360
// subtracted; a negative sum is mirrored to its absolute value rather than
// wrapped, so AddDegrees(10, -30) is 20, not 340.
func AddDegrees(base, delta float64) float64 {
	sum := base + delta
	switch {
	case sum > 360:
		return sum - 360
	case sum < 0:
		return -sum
	default:
		return sum
	}
}
