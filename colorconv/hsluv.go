package colorconv

import (
	"math"
)

// Linear sRGB from D65 XYZ, as published with HSLuv.
var hsluvM = Mat3{
	{3.240969941904521, -1.537383177570093, -0.498610760293},
	{-0.96924363628087, 1.87596750150772, 0.041555057407175},
	{0.055630079696993, -0.20397695888897, 1.056971514242878},
}

// Line is y = Slope * x + Intercept in the chroma plane of LCHuv.
type Line struct {
	Slope, Intercept float64
}

// BoundingLines returns the six lines, two per RGB channel, that bound the
// sRGB gamut in the uv chroma plane at lightness l.
func BoundingLines(l float64) [6]Line {
	sub1 := math.Pow(l+16, 3) / 1560896
	sub2 := sub1
	if sub1 <= labEpsilon {
		sub2 = l / labKappa
	}
	var ans [6]Line
	for c := range 3 {
		m1, m2, m3 := hsluvM[c][0], hsluvM[c][1], hsluvM[c][2]
		for t := range 2 {
			tt := float64(t)
			top1 := (284517*m1 - 94839*m3) * sub2
			top2 := (838422*m3+769860*m2+731718*m1)*l*sub2 - 769860*tt*l
			bottom := (632260*m3-126452*m2)*sub2 + 126452*tt
			ans[c*2+t] = Line{top1 / bottom, top2 / bottom}
		}
	}
	return ans
}

// MaxChroma is the largest in gamut chroma at lightness l along hue h
// (degrees).
func MaxChroma(l, h float64) float64 {
	rad := h * math.Pi / 180
	ans := math.Inf(1)
	for _, line := range BoundingLines(l) {
		length := line.Intercept / (math.Sin(rad) - line.Slope*math.Cos(rad))
		if length >= 0 {
			ans = min(ans, length)
		}
	}
	return ans
}

// MaxSafeChroma is the largest chroma at lightness l that is in gamut for
// every hue.
func MaxSafeChroma(l float64) float64 {
	ans := math.Inf(1)
	for _, line := range BoundingLines(l) {
		ans = min(ans, math.Abs(line.Intercept)/math.Sqrt(line.Slope*line.Slope+1))
	}
	return ans
}

const (
	hsluvWhite = 99.9999999
	hsluvBlack = 1e-8
)

func lchuvToHSLuvLike(lch Vec3, limit func(l, h float64) float64) Vec3 {
	l, c, h := lch[0], lch[1], lch[2]
	switch {
	case l > hsluvWhite:
		return Vec3{h, 0, 100}
	case l < hsluvBlack:
		return Vec3{h, 0, 0}
	}
	return Vec3{h, c / limit(l, h) * 100, l}
}

func hsluvLikeToLCHuv(hsl Vec3, limit func(l, h float64) float64) Vec3 {
	h, s, l := hsl[0], hsl[1], hsl[2]
	switch {
	case l > hsluvWhite:
		return Vec3{100, 0, h}
	case l < hsluvBlack:
		return Vec3{0, 0, h}
	}
	return Vec3{l, limit(l, h) / 100 * s, h}
}

func perpendicular(l, _ float64) float64 { return MaxSafeChroma(l) }

func LCHuvToHSLuv(lch Vec3) Vec3 { return lchuvToHSLuvLike(lch, MaxChroma) }
func HSLuvToLCHuv(hsl Vec3) Vec3 { return hsluvLikeToLCHuv(hsl, MaxChroma) }
func LCHuvToHPLuv(lch Vec3) Vec3 { return lchuvToHSLuvLike(lch, perpendicular) }
func HPLuvToLCHuv(hpl Vec3) Vec3 { return hsluvLikeToLCHuv(hpl, perpendicular) }
