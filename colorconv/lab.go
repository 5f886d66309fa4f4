package colorconv

import (
	"math"
)

// CIE constants in their exact rational form.
const (
	labDelta   = 6.0 / 29.0
	labEpsilon = labDelta * labDelta * labDelta // 216/24389
	labKappa   = 24389.0 / 27.0
)

func ff(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func finv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

// XYZToLab converts XYZ (Y of white = 1) to CIELAB relative to white.
func XYZToLab(xyz Vec3, white WhitePoint) Vec3 {
	fx := ff(xyz[0] / white.X)
	fy := ff(xyz[1] / white.Y)
	fz := ff(xyz[2] / white.Z)
	return Vec3{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

func LabToXYZ(lab Vec3, white WhitePoint) Vec3 {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return Vec3{finv(fx) * white.X, finv(fy) * white.Y, finv(fz) * white.Z}
}

// LightnessToLuminance gives the relative luminance Y (0 to 1) that has the
// CIE lightness L.
func LightnessToLuminance(l float64) float64 {
	return finv((l + 16) / 116)
}

// LuminanceToLightness is the inverse of LightnessToLuminance.
func LuminanceToLightness(y float64) float64 {
	return 116*ff(y) - 16
}

func uvPrime(xyz Vec3) (u, v float64) {
	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	if d == 0 {
		return 0, 0
	}
	return 4 * xyz[0] / d, 9 * xyz[1] / d
}

// XYZToLuv converts to CIELUV. Black has no defined chromaticity and maps
// to u = v = 0.
func XYZToLuv(xyz Vec3, white WhitePoint) Vec3 {
	yr := xyz[1] / white.Y
	var l float64
	if yr > labEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = labKappa * yr
	}
	u, v := uvPrime(xyz)
	uw, vw := uvPrime(white.Vec3())
	if u == 0 && v == 0 {
		return Vec3{l, 0, 0}
	}
	return Vec3{l, 13 * l * (u - uw), 13 * l * (v - vw)}
}

func LuvToXYZ(luv Vec3, white WhitePoint) Vec3 {
	l, u, v := luv[0], luv[1], luv[2]
	if l == 0 {
		return Vec3{}
	}
	var y float64
	if l > labKappa*labEpsilon {
		y = math.Pow((l+16)/116, 3)
	} else {
		y = l / labKappa
	}
	y *= white.Y
	uw, vw := uvPrime(white.Vec3())
	up := u/(13*l) + uw
	vp := v/(13*l) + vw
	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)
	return Vec3{x, y, z}
}

// XYZToXYY converts to chromaticity plus luminance. A zero sum (black)
// takes the chromaticity of white instead of dividing by zero.
func XYZToXYY(xyz Vec3, white WhitePoint) Vec3 {
	sum := xyz[0] + xyz[1] + xyz[2]
	if sum == 0 {
		c := white.Chromaticity()
		return Vec3{c.X, c.Y, xyz[1]}
	}
	return Vec3{xyz[0] / sum, xyz[1] / sum, xyz[1]}
}

func XYYToXYZ(xyy Vec3) Vec3 {
	x, y, lum := xyy[0], xyy[1], xyy[2]
	if y == 0 {
		return Vec3{}
	}
	return Vec3{x * lum / y, lum, (1 - x - y) * lum / y}
}

// ToPolar converts the two cartesian axes of a Lab-like triplet to chroma
// and hue, keeping the first component.
func ToPolar(lab Vec3) Vec3 {
	c := math.Hypot(lab[1], lab[2])
	h := Modulo(math.Atan2(lab[2], lab[1])*180/math.Pi, 360)
	return Vec3{lab[0], c, h}
}

func FromPolar(lch Vec3) Vec3 {
	rad := lch[2] * math.Pi / 180
	return Vec3{lch[0], lch[1] * math.Cos(rad), lch[1] * math.Sin(rad)}
}
