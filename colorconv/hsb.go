package colorconv

import (
	"math"
)

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// Modulo returns v mod m in the range [0, m). NaN stays NaN.
func Modulo(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

// ConstrainRGB clamps every channel to [0, 1].
func ConstrainRGB(rgb Vec3) Vec3 { return rgb.Select(clamp01) }

// ConstrainHSB wraps the hue and clamps the other two components. The same
// rule applies to HSL.
func ConstrainHSB(hsb Vec3) Vec3 {
	return Vec3{Modulo(hsb[0], 360), clamp01(hsb[1]), clamp01(hsb[2])}
}

// ConstrainHWB additionally scales whiteness and blackness down when their
// sum exceeds 1.
func ConstrainHWB(hwb Vec3) Vec3 {
	w, b := clamp01(hwb[1]), clamp01(hwb[2])
	if sum := w + b; sum > 1 {
		w, b = w/sum, b/sum
	}
	return Vec3{Modulo(hwb[0], 360), w, b}
}

// RGBToHSB converts encoded RGB in [0, 1] to hue (degrees), saturation and
// brightness. Achromatic input gets hue 0.
func RGBToHSB(rgb Vec3) Vec3 {
	c := ConstrainRGB(rgb)
	r, g, b := c[0], c[1], c[2]
	mx := max(r, g, b)
	mn := min(r, g, b)
	delta := mx - mn
	var h float64
	switch {
	case delta == 0:
		h = 0
	case mx == r:
		h = 60 * Modulo((g-b)/delta, 6)
	case mx == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	var s float64
	if mx != 0 {
		s = delta / mx
	}
	return Vec3{Modulo(h, 360), s, mx}
}

func HSBToRGB(hsb Vec3) Vec3 {
	c := ConstrainHSB(hsb)
	h, s, v := c[0], c[1], c[2]
	chroma := v * s
	hp := h / 60
	x := chroma * (1 - math.Abs(Modulo(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	case hp < 6:
		r, g, b = chroma, 0, x
	default:
		// NaN hue
		n := math.NaN()
		return Vec3{n, n, n}
	}
	m := v - chroma
	return Vec3{r + m, g + m, b + m}
}

func HSBToHSL(hsb Vec3) Vec3 {
	c := ConstrainHSB(hsb)
	h, s, v := c[0], c[1], c[2]
	l := v * (1 - s/2)
	var sl float64
	if l > 0 && l < 1 {
		sl = (v - l) / min(l, 1-l)
	}
	return Vec3{h, sl, l}
}

func HSLToHSB(hsl Vec3) Vec3 {
	c := ConstrainHSB(hsl)
	h, s, l := c[0], c[1], c[2]
	v := l + s*min(l, 1-l)
	var sv float64
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	return Vec3{h, sv, v}
}

func HSBToHWB(hsb Vec3) Vec3 {
	c := ConstrainHSB(hsb)
	h, s, v := c[0], c[1], c[2]
	return Vec3{h, (1 - s) * v, 1 - v}
}

func HWBToHSB(hwb Vec3) Vec3 {
	c := ConstrainHWB(hwb)
	h, w, blk := c[0], c[1], c[2]
	v := 1 - blk
	var s float64
	if v > 0 {
		s = 1 - w/v
	}
	return Vec3{h, s, v}
}
