package colorconv

import (
	"math"
)

// SMPTE ST 2084 perceptual quantizer constants.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

var (
	ictcpXYZToLMS = Mat3{
		{0.3593, 0.6976, -0.0359},
		{-0.1921, 1.1005, 0.0754},
		{0.0071, 0.0748, 0.8433},
	}
	ictcpLMSToICtCp = Mat3{
		{2048, 2048, 0},
		{6610, -13613, 7003},
		{17933, -17390, -543},
	}.Scale(1.0 / 4096)
	ictcpLMSToXYZ   = ictcpXYZToLMS.Inverse()
	ictcpICtCpToLMS = ictcpLMSToICtCp.Inverse()
)

// PQ encodes absolute luminance normalised so that 1 is 10000 cd/m².
func PQ(y float64) float64 {
	p := math.Pow(math.Abs(y), pqM1)
	return math.Copysign(math.Pow((pqC1+pqC2*p)/(1+pqC3*p), pqM2), y)
}

func InversePQ(e float64) float64 {
	p := math.Pow(math.Abs(e), 1/pqM2)
	return math.Copysign(math.Pow(max(p-pqC1, 0)/(pqC2-pqC3*p), 1/pqM1), e)
}

// XYZToICtCp converts XYZ to ICtCp. The scalar maps relative luminance 1
// onto cd/m².
func XYZToICtCp(xyz Vec3, white WhitePoint, scalar float64) Vec3 {
	abs := AdaptXYZ(xyz, white, D65.WhitePoint()).Scale(scalar)
	lms := ictcpXYZToLMS.Apply(abs).Select(func(x float64) float64 { return PQ(x / 10000) })
	return ictcpLMSToICtCp.Apply(lms)
}

func ICtCpToXYZ(ictcp Vec3, white WhitePoint, scalar float64) Vec3 {
	lms := ictcpICtCpToLMS.Apply(ictcp).Select(func(x float64) float64 { return InversePQ(x) * 10000 })
	abs := ictcpLMSToXYZ.Apply(lms)
	return AdaptXYZ(abs.Scale(1/scalar), D65.WhitePoint(), white)
}
