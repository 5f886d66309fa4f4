package cam

import (
	"math"

	"github.com/kovidgoyal/unicolour/colorconv"
)

// ViewingConditions holds everything derived from a Configuration that does
// not depend on the stimulus.
type ViewingConditions struct {
	Model  Model
	Config Configuration

	F, C, Nc float64
	// degree of adaptation
	D float64
	// luminance level adaptation factor
	FL       float64
	N, Z     float64
	Nbb, Ncb float64
	// achromatic response of white
	Aw   float64
	dRGB Vec3
}

func (vc *ViewingConditions) toCones(xyz Vec3) Vec3 {
	if vc.Model == CAM16 {
		return m16.Apply(xyz)
	}
	return mCAT02.Apply(xyz)
}

func (vc *ViewingConditions) fromCones(rgb Vec3) Vec3 {
	if vc.Model == CAM16 {
		return m16Inv.Apply(rgb)
	}
	return mCAT02Inv.Apply(rgb)
}

func (vc *ViewingConditions) adapted(rgbc Vec3) Vec3 {
	if vc.Model == CAM16 {
		return rgbc
	}
	return cat02ToHPE.Apply(rgbc)
}

func (vc *ViewingConditions) unadapted(rgbp Vec3) Vec3 {
	if vc.Model == CAM16 {
		return rgbp
	}
	return hpeToCAT02.Apply(rgbp)
}

func (vc *ViewingConditions) compress(x float64) float64 {
	p := math.Pow(vc.FL*math.Abs(x)/100, 0.42)
	return math.Copysign(400*p/(p+27.13), x) + 0.1
}

func (vc *ViewingConditions) decompress(x float64) float64 {
	x -= 0.1
	abs := math.Abs(x)
	return math.Copysign(100/vc.FL*math.Pow(27.13*abs/(400-abs), 1/0.42), x)
}

func NewViewingConditions(model Model, config Configuration) *ViewingConditions {
	vc := &ViewingConditions{Model: model, Config: config}
	vc.F, vc.C, vc.Nc = config.Surround.coefficients()
	la := config.AdaptingLuminance
	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	vc.FL = 0.2*k4*(5*la) + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*la)
	white := config.WhitePoint.Vec3().Scale(100)
	vc.N = config.BackgroundLuminance / white[1]
	vc.Z = 1.48 + math.Sqrt(vc.N)
	vc.Nbb = 0.725 * math.Pow(vc.N, -0.2)
	vc.Ncb = vc.Nbb
	vc.D = max(0, min(vc.F*(1-(1/3.6)*math.Exp((-la-42)/92)), 1))

	rgbw := vc.toCones(white)
	for i := range 3 {
		vc.dRGB[i] = vc.D*white[1]/rgbw[i] + 1 - vc.D
	}
	rgbcw := Vec3{vc.dRGB[0] * rgbw[0], vc.dRGB[1] * rgbw[1], vc.dRGB[2] * rgbw[2]}
	aw := vc.adapted(rgbcw).Select(vc.compress)
	vc.Aw = (2*aw[0] + aw[1] + aw[2]/20 - 0.305) * vc.Nbb
	return vc
}

// Correlates are the perceptual attributes predicted by the model.
type Correlates struct {
	J float64 // lightness
	C float64 // chroma
	H float64 // hue angle in degrees
	M float64 // colourfulness
	S float64 // saturation
	Q float64 // brightness
	// Hq is hue quadrature, 0 to 400 with 0 at unique red
	Hq float64
}

func (c Correlates) IsNaN() bool {
	return Vec3{c.J, c.C, c.H}.IsNaN()
}

type uniqueHue struct {
	h, e, quadrature float64
}

var uniqueHues = [...]uniqueHue{
	{20.14, 0.8, 0},
	{90, 0.7, 100},
	{164.25, 1.0, 200},
	{237.53, 1.2, 300},
	{380.14, 0.8, 400},
}

func huePrime(h float64) float64 {
	if h < uniqueHues[0].h {
		return h + 360
	}
	return h
}

func eccentricity(h float64) float64 {
	return 0.25 * (math.Cos(huePrime(h)*math.Pi/180+2) + 3.8)
}

// HueQuadrature maps a hue angle onto the unique hue scale.
func HueQuadrature(h float64) float64 {
	hp := huePrime(h)
	for i := range len(uniqueHues) - 1 {
		lo, hi := uniqueHues[i], uniqueHues[i+1]
		if hp >= lo.h && hp < hi.h {
			a := (hp - lo.h) / lo.e
			return lo.quadrature + 100*a/(a+(hi.h-hp)/hi.e)
		}
	}
	return math.NaN()
}

// FromXYZ computes the correlates for xyz, which must be relative to the
// configured white with Y of white = 100.
func (vc *ViewingConditions) FromXYZ(xyz Vec3) Correlates {
	rgb := vc.toCones(xyz)
	rgbc := Vec3{vc.dRGB[0] * rgb[0], vc.dRGB[1] * rgb[1], vc.dRGB[2] * rgb[2]}
	ra := vc.adapted(rgbc).Select(vc.compress)
	a := ra[0] - 12*ra[1]/11 + ra[2]/11
	b := (ra[0] + ra[1] - 2*ra[2]) / 9
	h := colorconv.Modulo(math.Atan2(b, a)*180/math.Pi, 360)
	et := eccentricity(h)
	A := (2*ra[0] + ra[1] + ra[2]/20 - 0.305) * vc.Nbb
	J := 100 * math.Pow(A/vc.Aw, vc.C*vc.Z)
	Q := (4 / vc.C) * math.Sqrt(J/100) * (vc.Aw + 4) * math.Pow(vc.FL, 0.25)
	t := (50000.0 / 13 * vc.Nc * vc.Ncb * et * math.Hypot(a, b)) / (ra[0] + ra[1] + 21*ra[2]/20)
	C := math.Pow(t, 0.9) * math.Sqrt(J/100) * math.Pow(1.64-math.Pow(0.29, vc.N), 0.73)
	M := C * math.Pow(vc.FL, 0.25)
	s := 100 * math.Sqrt(M/Q)
	return Correlates{J: J, C: C, H: h, M: M, S: s, Q: Q, Hq: HueQuadrature(h)}
}

// ToXYZ inverts the model from lightness, chroma and hue angle. The result
// is relative to the configured white with Y of white = 100.
func (vc *ViewingConditions) ToXYZ(J, C, h float64) Vec3 {
	t := math.Pow(C/(math.Sqrt(J/100)*math.Pow(1.64-math.Pow(0.29, vc.N), 0.73)), 1/0.9)
	et := eccentricity(h)
	A := vc.Aw * math.Pow(J/100, 1/(vc.C*vc.Z))
	p1 := 50000.0 / 13 * vc.Nc * vc.Ncb * et
	p2 := A/vc.Nbb + 0.305
	rad := h * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	gamma := 23 * p2 * t / (23*p1 + 11*t*cos + 108*t*sin)
	if C == 0 || t == 0 {
		gamma = 0
	}
	a, b := gamma*cos, gamma*sin
	ra := Vec3{
		(460*p2 + 451*a + 288*b) / 1403,
		(460*p2 - 891*a - 261*b) / 1403,
		(460*p2 - 220*a - 6300*b) / 1403,
	}
	rgbc := vc.unadapted(ra.Select(vc.decompress))
	rgb := Vec3{rgbc[0] / vc.dRGB[0], rgbc[1] / vc.dRGB[1], rgbc[2] / vc.dRGB[2]}
	return vc.fromCones(rgb)
}

// FromRelativeXYZ takes XYZ with Y of white = 1 relative to xyzWhite,
// adapting it to the model's white first.
func (vc *ViewingConditions) FromRelativeXYZ(xyz Vec3, xyzWhite colorconv.WhitePoint) Correlates {
	return vc.FromXYZ(colorconv.AdaptXYZ(xyz, xyzWhite, vc.Config.WhitePoint).Scale(100))
}

// ToRelativeXYZ is the inverse of FromRelativeXYZ.
func (vc *ViewingConditions) ToRelativeXYZ(J, C, h float64, xyzWhite colorconv.WhitePoint) Vec3 {
	return colorconv.AdaptXYZ(vc.ToXYZ(J, C, h).Scale(1.0/100), vc.Config.WhitePoint, xyzWhite)
}
