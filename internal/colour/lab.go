package colour

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lab is a CIE L*a*b* colour under the D65 reference white.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// String returns the colour in the format "lab(L, a, b)".
func (l Lab) String() string {
	return fmt.Sprintf("lab(%.2f, %.2f, %.2f)", l.L, l.A, l.B)
}

// Chroma returns sqrt(a² + b²).
func (l Lab) Chroma() float64 {
	return math.Hypot(l.A, l.B)
}

// D65 reference white, XYZ scaled to 0-100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// Companding threshold and linear segment, (6/29)^3 and (1/3)(29/6)^2.
var (
	labEpsilon = math.Pow(6.0/29.0, 3)
	labSlope   = (1.0 / 3.0) * math.Pow(29.0/6.0, 2)
)

const labOffset = 4.0 / 29.0

// Linear sRGB to XYZ, rows pre-scaled for a 0-100 XYZ range.
var rgbToXYZ = mat.NewDense(3, 3, []float64{
	41.24, 35.76, 18.05,
	21.26, 71.52, 7.22,
	1.93, 11.92, 95.05,
})

// XYZ (0-1) to linear sRGB.
var xyzToRGB = mat.NewDense(3, 3, []float64{
	3.2406, -1.5372, -0.4986,
	-0.9689, 1.8758, 0.0415,
	0.0557, -0.2040, 1.0570,
})

func mulVec(m mat.Matrix, x, y, z float64) (float64, float64, float64) {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{x, y, z}))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}

// ToLab converts a colour to CIE L*a*b*.
func ToLab(c Packed) Lab {
	r, g, b := Decompose(c)

	rl := linearise(float64(r) / 255.0)
	gl := linearise(float64(g) / 255.0)
	bl := linearise(float64(b) / 255.0)

	x, y, z := mulVec(rgbToXYZ, rl, gl, bl)

	fx := labCompand(x / whiteX)
	fy := labCompand(y / whiteY)
	fz := labCompand(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// FromLab converts a CIE L*a*b* colour back to a packed colour. Channels
// outside the sRGB gamut are clamped.
func FromLab(lab Lab) Packed {
	fy := (lab.L + 16.0) / 116.0
	fx := lab.A/500 + fy
	fz := fy - lab.B/200

	x := labUncompand(fx) * whiteX / 100
	y := labUncompand(fy) * whiteY / 100
	z := labUncompand(fz) * whiteZ / 100

	r, g, b := mulVec(xyzToRGB, x, y, z)

	return ComposeFloat(delinearise(r)*255, delinearise(g)*255, delinearise(b)*255)
}

// linearise removes the sRGB transfer curve from a [0, 1] component.
func linearise(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// delinearise applies the sRGB transfer curve.
func delinearise(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return v * 12.92
}

func labCompand(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labSlope*t + labOffset
}

func labUncompand(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > 0.008856 {
		return ft3
	}
	return (ft - labOffset) / 7.787
}
