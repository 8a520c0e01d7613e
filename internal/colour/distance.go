package colour

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownFormula is returned for a Formula value with no implementation.
var ErrUnknownFormula = errors.New("unknown distance formula")

// Formula selects a Delta-E colour difference formula.
type Formula int

const (
	// FormulaCIE76 is the Euclidean distance in Lab space.
	FormulaCIE76 Formula = iota
	// FormulaCIE94 weights chroma and hue differences by the first colour's chroma.
	FormulaCIE94
	// FormulaCIE2000 is CIEDE2000.
	FormulaCIE2000
)

// DefaultFormula is used by Distance.
const DefaultFormula = FormulaCIE94

var formulaNames = map[Formula]string{
	FormulaCIE76:   "cie76",
	FormulaCIE94:   "cie94",
	FormulaCIE2000: "cie2000",
}

// Formulas returns every formula in declaration order.
func Formulas() []Formula {
	return []Formula{FormulaCIE76, FormulaCIE94, FormulaCIE2000}
}

// String returns the lowercase formula name.
func (f Formula) String() string {
	if name, ok := formulaNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// ParseFormula parses a formula name such as "cie94" or "CIE2000".
// "ciede2000" is accepted as an alias.
func ParseFormula(name string) (Formula, error) {
	in := strings.ToLower(strings.TrimSpace(name))
	if in == "ciede2000" {
		return FormulaCIE2000, nil
	}
	for _, f := range Formulas() {
		if formulaNames[f] == in {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: cie76, cie94, cie2000)", ErrUnknownFormula, name)
}

// Distance returns the CIE94 difference between two colours.
func Distance(a, b Packed) float64 {
	return DeltaE94(ToLab(a), ToLab(b))
}

// DistanceWithFormula returns the difference between two colours using the
// given formula. Both colours are converted to Lab first.
func DistanceWithFormula(a, b Packed, formula Formula) (float64, error) {
	var fn func(Lab, Lab) float64
	switch formula {
	case FormulaCIE76:
		fn = DeltaE76
	case FormulaCIE94:
		fn = DeltaE94
	case FormulaCIE2000:
		fn = DeltaE2000
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownFormula, int(formula))
	}
	return fn(ToLab(a), ToLab(b)), nil
}

// DeltaE76 is the Euclidean distance between two Lab colours.
func DeltaE76(c1, c2 Lab) float64 {
	dL := c1.L - c2.L
	da := c1.A - c2.A
	db := c1.B - c2.B
	return math.Sqrt(dL*dL + da*da + db*db)
}

// DeltaE94 is the CIE94 graphic-arts difference (kL = kC = kH = 1).
// The chroma weights come from c1 only, so the result is not symmetric.
func DeltaE94(c1, c2 Lab) float64 {
	const (
		k1 = 0.045
		k2 = 0.015
	)

	chroma1 := c1.Chroma()
	chroma2 := c2.Chroma()

	dL := c1.L - c2.L
	dC := chroma1 - chroma2
	da := c1.A - c2.A
	db := c1.B - c2.B
	// Rounding can push the radicand slightly negative.
	dH := math.Sqrt(math.Max(0, da*da+db*db-dC*dC))

	sC := 1 + k1*chroma1
	sH := 1 + k2*chroma1

	return math.Sqrt(dL*dL + (dC/sC)*(dC/sC) + (dH/sH)*(dH/sH))
}

// DeltaE2000 is the CIEDE2000 difference (kL = kC = kH = 1).
func DeltaE2000(c1, c2 Lab) float64 {
	pow25to7 := math.Pow(25, 7)

	chromaMean := (c1.Chroma() + c2.Chroma()) / 2
	cm7 := math.Pow(chromaMean, 7)
	g := 0.5 * (1 - math.Sqrt(cm7/(cm7+pow25to7)))

	a1p := c1.A * (1 + g)
	a2p := c2.A * (1 + g)
	c1p := math.Hypot(a1p, c1.B)
	c2p := math.Hypot(a2p, c2.B)
	h1p := hueAngle(c1.B, a1p)
	h2p := hueAngle(c2.B, a2p)

	dLp := c2.L - c1.L
	dCp := c2p - c1p

	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		switch {
		case dhp > 180:
			dhp -= 360
		case dhp < -180:
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))

	lMean := (c1.L + c2.L) / 2
	cpMean := (c1p + c2p) / 2

	hpMean := h1p + h2p
	if c1p*c2p != 0 {
		switch {
		case math.Abs(h1p-h2p) <= 180:
			hpMean /= 2
		case h1p+h2p < 360:
			hpMean = (hpMean + 360) / 2
		default:
			hpMean = (hpMean - 360) / 2
		}
	}

	t := 1 -
		0.17*math.Cos(rad(hpMean-30)) +
		0.24*math.Cos(rad(2*hpMean)) +
		0.32*math.Cos(rad(3*hpMean+6)) -
		0.20*math.Cos(rad(4*hpMean-63))

	dTheta := 30 * math.Exp(-math.Pow((hpMean-275)/25, 2))
	cpm7 := math.Pow(cpMean, 7)
	rC := 2 * math.Sqrt(cpm7/(cpm7+pow25to7))

	lm50 := (lMean - 50) * (lMean - 50)
	sL := 1 + 0.015*lm50/math.Sqrt(20+lm50)
	sC := 1 + 0.045*cpMean
	sH := 1 + 0.015*cpMean*t
	rT := -math.Sin(rad(2*dTheta)) * rC

	lTerm := dLp / sL
	cTerm := dCp / sC
	hTerm := dHp / sH

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rT*cTerm*hTerm)
}

// hueAngle returns atan2(b, a) in degrees within [0, 360), or 0 when both
// components are zero.
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
