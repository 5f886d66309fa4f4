package colorconv

import (
	"math"
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// Euclidean distance, the basis of CIE76, Ok and the CAM UCS metrics.
func Euclidean(a, b Vec3) float64 {
	return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))
}

// CIE94Weights are the application dependent constants of ΔE94.
type CIE94Weights struct {
	KL, K1, K2 float64
}

var (
	CIE94GraphicArts = CIE94Weights{KL: 1, K1: 0.045, K2: 0.015}
	CIE94Textiles    = CIE94Weights{KL: 2, K1: 0.048, K2: 0.014}
)

// DeltaE94 is asymmetric, reference is the first Lab.
func DeltaE94(reference, sample Vec3, w CIE94Weights) float64 {
	dl := reference[0] - sample[0]
	c1 := math.Hypot(reference[1], reference[2])
	c2 := math.Hypot(sample[1], sample[2])
	dc := c1 - c2
	da, db := reference[1]-sample[1], reference[2]-sample[2]
	dh2 := max(0, da*da+db*db-dc*dc)
	sc := 1 + w.K1*c1
	sh := 1 + w.K2*c1
	l := dl / w.KL
	c := dc / sc
	return math.Sqrt(l*l + c*c + dh2/(sh*sh))
}

const pow25to7 = 6103515625.0

// DeltaE2000 with unit parametric factors.
func DeltaE2000(lab1, lab2 Vec3) float64 {
	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]
	cBar := (math.Hypot(a1, b1) + math.Hypot(a2, b2)) / 2
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25to7)))
	ap1, ap2 := (1+g)*a1, (1+g)*a2
	cp1, cp2 := math.Hypot(ap1, b1), math.Hypot(ap2, b2)
	hp := func(b, ap float64) float64 {
		if b == 0 && ap == 0 {
			return 0
		}
		return Modulo(rad2deg(math.Atan2(b, ap)), 360)
	}
	hp1, hp2 := hp(b1, ap1), hp(b2, ap2)

	dlp := l2 - l1
	dcp := cp2 - cp1
	var dhp float64
	if cp1*cp2 != 0 {
		dhp = hp2 - hp1
		switch {
		case dhp > 180:
			dhp -= 360
		case dhp < -180:
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(cp1*cp2) * math.Sin(deg2rad(dhp/2))

	lBarp := (l1 + l2) / 2
	cBarp := (cp1 + cp2) / 2
	hBarp := hp1 + hp2
	if cp1*cp2 != 0 {
		switch {
		case math.Abs(hp1-hp2) <= 180:
			hBarp /= 2
		case hp1+hp2 < 360:
			hBarp = (hBarp + 360) / 2
		default:
			hBarp = (hBarp - 360) / 2
		}
	}
	t := 1 - 0.17*math.Cos(deg2rad(hBarp-30)) + 0.24*math.Cos(deg2rad(2*hBarp)) +
		0.32*math.Cos(deg2rad(3*hBarp+6)) - 0.20*math.Cos(deg2rad(4*hBarp-63))
	dTheta := 30 * math.Exp(-((hBarp-275)/25)*((hBarp-275)/25))
	cBarp7 := math.Pow(cBarp, 7)
	rc := 2 * math.Sqrt(cBarp7/(cBarp7+pow25to7))
	lm50 := (lBarp - 50) * (lBarp - 50)
	sl := 1 + 0.015*lm50/math.Sqrt(20+lm50)
	sc := 1 + 0.045*cBarp
	sh := 1 + 0.015*cBarp*t
	rt := -math.Sin(deg2rad(2*dTheta)) * rc

	l, c, h := dlp/sl, dcp/sc, dHp/sh
	return math.Sqrt(l*l + c*c + h*h + rt*c*h)
}

// DeltaECMC is the CMC l:c metric, asymmetric with reference first. 2:1 is
// used for acceptability and 1:1 for perceptibility.
func DeltaECMC(reference, sample Vec3, l, c float64) float64 {
	lch1 := ToPolar(reference)
	l1, c1, h1 := lch1[0], lch1[1], lch1[2]
	dl := reference[0] - sample[0]
	dc := c1 - math.Hypot(sample[1], sample[2])
	da, db := reference[1]-sample[1], reference[2]-sample[2]
	dh2 := max(0, da*da+db*db-dc*dc)

	sl := 0.511
	if l1 >= 16 {
		sl = 0.040975 * l1 / (1 + 0.01765*l1)
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638
	c14 := c1 * c1 * c1 * c1
	f := math.Sqrt(c14 / (c14 + 1900))
	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(deg2rad(h1+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(deg2rad(h1+35)))
	}
	sh := sc * (f*t + 1 - f)
	x, y := dl/(l*sl), dc/(c*sc)
	return math.Sqrt(x*x + y*y + dh2/(sh*sh))
}

// DeltaEITP is ΔE ITP (ITU-R BT.2124) from two ICtCp triplets.
func DeltaEITP(ictcp1, ictcp2 Vec3) float64 {
	di := ictcp1[0] - ictcp2[0]
	dt := 0.5 * (ictcp1[1] - ictcp2[1])
	dp := ictcp1[2] - ictcp2[2]
	return 720 * math.Sqrt(di*di+dt*dt+dp*dp)
}

// DeltaEZ is ΔEz from two Jzczhz triplets.
func DeltaEZ(jzczhz1, jzczhz2 Vec3) float64 {
	dj := jzczhz1[0] - jzczhz2[0]
	dc := jzczhz1[1] - jzczhz2[1]
	dh := deg2rad(jzczhz1[2] - jzczhz2[2])
	dH := 2 * math.Sqrt(jzczhz1[1]*jzczhz2[1]) * math.Sin(dh/2)
	return math.Sqrt(dj*dj + dc*dc + dH*dH)
}

// DeltaEHyAB is the hybrid city block plus euclidean metric in Lab.
func DeltaEHyAB(lab1, lab2 Vec3) float64 {
	return math.Abs(lab1[0]-lab2[0]) + math.Hypot(lab1[1]-lab2[1], lab1[2]-lab2[2])
}
