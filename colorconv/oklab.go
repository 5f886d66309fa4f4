package colorconv

import (
	"math"
)

// Oklab is defined against D65 XYZ.
var (
	xyzToOklabLMS = Mat3{
		{0.8190224432164319, 0.3619062562801221, -0.12887378261216414},
		{0.0329836671980271, 0.9292868468965546, 0.03614466816999844},
		{0.048177199566046255, 0.26423952494422764, 0.6335478258136937},
	}
	oklabLMSToLab = Mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabLMSToXYZ = xyzToOklabLMS.Inverse()
	oklabLabToLMS = oklabLMSToLab.Inverse()
)

func XYZToOklab(xyz Vec3, white WhitePoint) Vec3 {
	d65 := AdaptXYZ(xyz, white, D65.WhitePoint())
	lms := xyzToOklabLMS.Apply(d65).Select(math.Cbrt)
	return oklabLMSToLab.Apply(lms)
}

func OklabToXYZ(lab Vec3, white WhitePoint) Vec3 {
	lms := oklabLabToLMS.Apply(lab).Select(func(x float64) float64 { return x * x * x })
	return AdaptXYZ(oklabLMSToXYZ.Apply(lms), D65.WhitePoint(), white)
}
