package colorconv

import (
	"fmt"
	"strings"
)

// WhitePoint is the tristimulus value of a reference white, normalized so
// that Y = 1.
type WhitePoint struct {
	X, Y, Z float64
}

// Chromaticity is a CIE 1931 xy coordinate.
type Chromaticity struct {
	X, Y float64
}

type Illuminant int

const (
	UnknownIlluminant Illuminant = iota
	A
	C
	D50
	D55
	D65
	D75
	E
	F2
	F7
	F11
)

// ASTM E308 tristimulus values for the 2° observer.
var illuminantWhites = map[Illuminant]WhitePoint{
	A:   {1.09850, 1, 0.35585},
	C:   {0.98074, 1, 1.18232},
	D50: {0.96422, 1, 0.82521},
	D55: {0.95682, 1, 0.92149},
	D65: {0.95047, 1, 1.08883},
	D75: {0.94972, 1, 1.22638},
	E:   {1, 1, 1},
	F2:  {0.99187, 1, 0.67395},
	F7:  {0.95044, 1, 1.08755},
	F11: {1.00966, 1, 0.64370},
}

var illuminantNames = map[Illuminant]string{
	A: "A", C: "C", D50: "D50", D55: "D55", D65: "D65", D75: "D75",
	E: "E", F2: "F2", F7: "F7", F11: "F11",
}

func (i Illuminant) String() string {
	if n, ok := illuminantNames[i]; ok {
		return n
	}
	return "Unknown"
}

// WhitePoint returns the white point of the illuminant. Unknown illuminants
// give the equal-energy white.
func (i Illuminant) WhitePoint() WhitePoint {
	if w, ok := illuminantWhites[i]; ok {
		return w
	}
	return illuminantWhites[E]
}

func IlluminantFromName(name string) (Illuminant, error) {
	for i, n := range illuminantNames {
		if strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return UnknownIlluminant, fmt.Errorf("unknown illuminant: %q", name)
}

func (w WhitePoint) Vec3() Vec3 { return Vec3{w.X, w.Y, w.Z} }

// Chromaticity of the white point. A white point with zero sum has no
// defined chromaticity and gives NaN.
func (w WhitePoint) Chromaticity() Chromaticity {
	sum := w.X + w.Y + w.Z
	return Chromaticity{w.X / sum, w.Y / sum}
}

func (w WhitePoint) String() string {
	return fmt.Sprintf("WhitePoint{%.5f %.5f %.5f}", w.X, w.Y, w.Z)
}

// WhitePointFromChromaticity builds the Y = 1 white point with the given
// chromaticity.
func WhitePointFromChromaticity(c Chromaticity) WhitePoint {
	return WhitePoint{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

// UV returns the CIE 1960 UCS coordinates of the chromaticity.
func (c Chromaticity) UV() (u, v float64) {
	d := -2*c.X + 12*c.Y + 3
	return 4 * c.X / d, 6 * c.Y / d
}

// ChromaticityFromUV is the inverse of Chromaticity.UV.
func ChromaticityFromUV(u, v float64) Chromaticity {
	d := 2*u - 8*v + 4
	return Chromaticity{3 * u / d, 2 * v / d}
}
