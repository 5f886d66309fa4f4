package colorconv

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Companding converts a single channel between linear light and its encoded
// value. Implementations must preserve the sign of negative inputs so that
// out of gamut values survive a round trip.
type Companding interface {
	ToLinear(v float64) float64
	FromLinear(v float64) float64
}

type CompandingFuncs struct {
	Decode, Encode func(float64) float64
}

func (c CompandingFuncs) ToLinear(v float64) float64   { return c.Decode(v) }
func (c CompandingFuncs) FromLinear(v float64) float64 { return c.Encode(v) }

// RGBModel describes an additive RGB space by the chromaticities of its
// primaries, its reference white and its transfer function.
type RGBModel struct {
	Name       string
	R, G, B    Chromaticity
	WhitePoint WhitePoint
	Companding Companding
}

func (m *RGBModel) String() string { return m.Name }

func srgb_to_linear(v float64) float64 {
	if abs := math.Abs(v); abs <= 0.04045 {
		return v / 12.92
	} else {
		return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), v)
	}
}

func linear_to_srgb(v float64) float64 {
	if abs := math.Abs(v); abs > 0.0031308 {
		return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, v)
	}
	return 12.92 * v
}

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020_to_linear(v float64) float64 {
	if abs := math.Abs(v); abs < rec2020Beta*4.5 {
		return v / 4.5
	} else {
		return math.Copysign(math.Pow((abs+(rec2020Alpha-1))/rec2020Alpha, 1/0.45), v)
	}
}

func linear_to_rec2020(v float64) float64 {
	if abs := math.Abs(v); abs > rec2020Beta {
		return math.Copysign(rec2020Alpha*math.Pow(abs, 0.45)-(rec2020Alpha-1), v)
	}
	return 4.5 * v
}

func a98_to_linear(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 563.0/256), v)
}

func linear_to_a98(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 256.0/563), v)
}

func prophoto_to_linear(v float64) float64 {
	const Et2 = 16.0 / 512
	if abs := math.Abs(v); abs <= Et2 {
		return v / 16
	} else {
		return math.Copysign(math.Pow(abs, 1.8), v)
	}
}

func linear_to_prophoto(v float64) float64 {
	const Et = 1.0 / 512
	if abs := math.Abs(v); abs >= Et {
		return math.Copysign(math.Pow(abs, 1/1.8), v)
	}
	return 16 * v
}

// Gamma returns a pure power law companding with the given exponent.
func Gamma(gamma float64) Companding {
	return CompandingFuncs{
		Decode: func(v float64) float64 { return math.Copysign(math.Pow(math.Abs(v), gamma), v) },
		Encode: func(v float64) float64 { return math.Copysign(math.Pow(math.Abs(v), 1/gamma), v) },
	}
}

var (
	SRGBCompanding     Companding = CompandingFuncs{srgb_to_linear, linear_to_srgb}
	Rec2020Companding  Companding = CompandingFuncs{rec2020_to_linear, linear_to_rec2020}
	A98Companding      Companding = CompandingFuncs{a98_to_linear, linear_to_a98}
	ProPhotoCompanding Companding = CompandingFuncs{prophoto_to_linear, linear_to_prophoto}
	LinearCompanding   Companding = CompandingFuncs{func(v float64) float64 { return v }, func(v float64) float64 { return v }}
)

var (
	SRGB = &RGBModel{
		Name: "sRGB",
		R:    Chromaticity{0.64, 0.33}, G: Chromaticity{0.30, 0.60}, B: Chromaticity{0.15, 0.06},
		WhitePoint: D65.WhitePoint(), Companding: SRGBCompanding,
	}
	DisplayP3 = &RGBModel{
		Name: "Display P3",
		R:    Chromaticity{0.680, 0.320}, G: Chromaticity{0.265, 0.690}, B: Chromaticity{0.150, 0.060},
		WhitePoint: D65.WhitePoint(), Companding: SRGBCompanding,
	}
	Rec2020 = &RGBModel{
		Name: "Rec. 2020",
		R:    Chromaticity{0.708, 0.292}, G: Chromaticity{0.170, 0.797}, B: Chromaticity{0.131, 0.046},
		WhitePoint: D65.WhitePoint(), Companding: Rec2020Companding,
	}
	A98 = &RGBModel{
		Name: "A98 RGB",
		R:    Chromaticity{0.64, 0.33}, G: Chromaticity{0.21, 0.71}, B: Chromaticity{0.15, 0.06},
		WhitePoint: D65.WhitePoint(), Companding: A98Companding,
	}
	ProPhoto = &RGBModel{
		Name: "ProPhoto RGB",
		R:    Chromaticity{0.734699, 0.265301}, G: Chromaticity{0.159597, 0.840403}, B: Chromaticity{0.036598, 0.000105},
		WhitePoint: D50.WhitePoint(), Companding: ProPhotoCompanding,
	}
)

var rgbModels = []*RGBModel{SRGB, DisplayP3, Rec2020, A98, ProPhoto}

// RGBModelFromName looks up one of the predefined models, ignoring case and
// non alphanumeric characters, so "display-p3" and "Display P3" both match.
func RGBModelFromName(name string) (*RGBModel, error) {
	key := normalizeName(name)
	for _, m := range rgbModels {
		if normalizeName(m.Name) == key {
			return m, nil
		}
	}
	switch key {
	case "p3":
		return DisplayP3, nil
	case "bt2020", "rec2020":
		return Rec2020, nil
	case "adobergb", "a98":
		return A98, nil
	case "romm", "rommrgb", "prophoto":
		return ProPhoto, nil
	}
	return nil, fmt.Errorf("unknown RGB model: %q", name)
}

func normalizeName(s string) string {
	b := make([]byte, 0, len(s))
	for i := range len(s) {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b = append(b, c+'a'-'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b = append(b, c)
		}
	}
	return string(b)
}

// LinearToXYZMatrix builds the linear RGB to XYZ matrix of the model from its
// primaries and white, then re-references it to xyzWhite.
func (m *RGBModel) LinearToXYZMatrix(xyzWhite WhitePoint) Mat3 {
	p := Mat3{
		{m.R.X / m.R.Y, m.G.X / m.G.Y, m.B.X / m.B.Y},
		{1, 1, 1},
		{(1 - m.R.X - m.R.Y) / m.R.Y, (1 - m.G.X - m.G.Y) / m.G.Y, (1 - m.B.X - m.B.Y) / m.B.Y},
	}
	s := p.Inverse().Apply(m.WhitePoint.Vec3())
	return Adapt(p.Multiply(Diagonal(s[0], s[1], s[2])), m.WhitePoint, xyzWhite)
}

func (m *RGBModel) ToLinear(rgb Vec3) Vec3 {
	return rgb.Select(m.Companding.ToLinear)
}

func (m *RGBModel) FromLinear(lin Vec3) Vec3 {
	return lin.Select(m.Companding.FromLinear)
}

// LinearRGBToXYZ and XYZToLinearRGB take a matrix precomputed with
// LinearToXYZMatrix.
func LinearRGBToXYZ(toXYZ Mat3, lin Vec3) Vec3 { return toXYZ.Apply(lin) }

func XYZToLinearRGB(fromXYZ Mat3, xyz Vec3) Vec3 { return fromXYZ.Apply(xyz) }
