package colorconv

import (
	"math"
)

const (
	jzB  = 1.15
	jzG  = 0.66
	jzC1 = 3424.0 / 4096
	jzC2 = 2413.0 / 128
	jzC3 = 2392.0 / 128
	jzN  = 2610.0 / 16384
	jzP  = 1.7 * 2523.0 / 32
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11
)

var (
	jzXYZToLMS = Mat3{
		{0.41478972, 0.579999, 0.0146480},
		{-0.2015100, 1.120649, 0.0531008},
		{-0.0166008, 0.264800, 0.6684799},
	}
	jzLMSToIab = Mat3{
		{0.5, 0.5, 0},
		{3.524000, -4.066708, 0.542708},
		{0.199076, 1.096799, -1.295875},
	}
	jzLMSToXYZ = jzXYZToLMS.Inverse()
	jzIabToLMS = jzLMSToIab.Inverse()
)

func jzPQ(x float64) float64 {
	p := math.Pow(math.Abs(x)/10000, jzN)
	return math.Copysign(math.Pow((jzC1+jzC2*p)/(1+jzC3*p), jzP), x)
}

func jzInversePQ(x float64) float64 {
	p := math.Pow(math.Abs(x), 1/jzP)
	return math.Copysign(10000*math.Pow((jzC1-p)/(jzC3*p-jzC2), 1/jzN), x)
}

// XYZToJzazbz converts XYZ to Jzazbz. The scalar maps relative luminance 1
// onto cd/m².
func XYZToJzazbz(xyz Vec3, white WhitePoint, scalar float64) Vec3 {
	abs := AdaptXYZ(xyz, white, D65.WhitePoint()).Scale(scalar)
	x, y, z := abs[0], abs[1], abs[2]
	xp := jzB*x - (jzB-1)*z
	yp := jzG*y - (jzG-1)*x
	lms := jzXYZToLMS.Apply(Vec3{xp, yp, z}).Select(jzPQ)
	iab := jzLMSToIab.Apply(lms)
	iz := iab[0]
	jz := (1+jzD)*iz/(1+jzD*iz) - jzD0
	return Vec3{jz, iab[1], iab[2]}
}

func JzazbzToXYZ(jab Vec3, white WhitePoint, scalar float64) Vec3 {
	jz := jab[0] + jzD0
	iz := jz / (1 + jzD - jzD*jz)
	lms := jzIabToLMS.Apply(Vec3{iz, jab[1], jab[2]}).Select(jzInversePQ)
	p := jzLMSToXYZ.Apply(lms)
	xp, yp, z := p[0], p[1], p[2]
	x := (xp + (jzB-1)*z) / jzB
	y := (yp + (jzG-1)*x) / jzG
	return AdaptXYZ(Vec3{x, y, z}.Scale(1/scalar), D65.WhitePoint(), white)
}
