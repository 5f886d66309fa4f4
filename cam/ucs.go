package cam

import (
	"math"

	"github.com/kovidgoyal/unicolour/colorconv"
)

// Coefficients of the CAM02-UCS and CAM16-UCS uniform spaces.
const (
	ucsC1 = 0.007
	ucsC2 = 0.0228
)

// ToUCS maps lightness, colourfulness and hue onto the cartesian J′a′b′
// uniform colour space.
func (c Correlates) ToUCS() Vec3 {
	jp := (1 + 100*ucsC1) * c.J / (1 + ucsC1*c.J)
	mp := math.Log1p(ucsC2*c.M) / ucsC2
	rad := c.H * math.Pi / 180
	return Vec3{jp, mp * math.Cos(rad), mp * math.Sin(rad)}
}

// FromUCS inverts ToUCS, returning lightness, colourfulness and hue angle.
func FromUCS(ucs Vec3) (J, M, h float64) {
	jp := ucs[0]
	J = jp / (1 + 100*ucsC1 - ucsC1*jp)
	mp := math.Hypot(ucs[1], ucs[2])
	M = math.Expm1(ucsC2*mp) / ucsC2
	h = colorconv.Modulo(math.Atan2(ucs[2], ucs[1])*180/math.Pi, 360)
	return
}

// UCSToXYZ converts a J′a′b′ triplet back to XYZ relative to xyzWhite with
// Y of white = 1.
func (vc *ViewingConditions) UCSToXYZ(ucs Vec3, xyzWhite colorconv.WhitePoint) Vec3 {
	J, M, h := FromUCS(ucs)
	C := M / math.Pow(vc.FL, 0.25)
	return vc.ToRelativeXYZ(J, C, h, xyzWhite)
}

// XYZToUCS is the forward counterpart of UCSToXYZ.
func (vc *ViewingConditions) XYZToUCS(xyz Vec3, xyzWhite colorconv.WhitePoint) Vec3 {
	return vc.FromRelativeXYZ(xyz, xyzWhite).ToUCS()
}

// Distance is the euclidean distance in J′a′b′.
func Distance(a, b Vec3) float64 {
	return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))
}
