// Package cam implements the CIECAM02 and CAM16 colour appearance models
// along with their uniform colour spaces.
package cam

import (
	"fmt"
	"math"
	"strings"

	"github.com/kovidgoyal/unicolour/colorconv"
)

var _ = fmt.Print

type Vec3 = colorconv.Vec3
type Mat3 = colorconv.Mat3

type Surround int

const (
	Average Surround = iota
	Dim
	Dark
)

var surroundNames = [...]string{Average: "average", Dim: "dim", Dark: "dark"}

func (s Surround) String() string {
	if s >= 0 && int(s) < len(surroundNames) {
		return surroundNames[s]
	}
	return fmt.Sprintf("Surround(%d)", int(s))
}

func SurroundFromName(name string) (Surround, error) {
	for i, n := range surroundNames {
		if strings.EqualFold(n, name) {
			return Surround(i), nil
		}
	}
	return Average, fmt.Errorf("unknown surround: %q", name)
}

// coefficients returns F, c and Nc for the surround.
func (s Surround) coefficients() (f, c, nc float64) {
	switch s {
	case Dim:
		return 0.9, 0.59, 0.9
	case Dark:
		return 0.8, 0.525, 0.8
	default:
		return 1.0, 0.69, 1.0
	}
}

// Configuration describes the viewing conditions.
type Configuration struct {
	WhitePoint colorconv.WhitePoint
	// AdaptingLuminance is L_A in cd/m²
	AdaptingLuminance float64
	// BackgroundLuminance is Y_b relative to a white of 100
	BackgroundLuminance float64
	Surround            Surround
}

// DefaultConfiguration is a D65 display viewed in an average surround,
// 64 lux ambient with a 20% grey background.
var DefaultConfiguration = Configuration{
	WhitePoint:          colorconv.D65.WhitePoint(),
	AdaptingLuminance:   64 / math.Pi * 0.2,
	BackgroundLuminance: 20,
	Surround:            Average,
}

func (c Configuration) String() string {
	return fmt.Sprintf("CAM{%s La=%.3f Yb=%.3f %s}", c.WhitePoint, c.AdaptingLuminance, c.BackgroundLuminance, c.Surround)
}

// Model selects between CIECAM02 and CAM16. They differ only in the cone
// space used for adaptation and compression.
type Model int

const (
	CAM02 Model = iota
	CAM16
)

func (m Model) String() string {
	if m == CAM16 {
		return "CAM16"
	}
	return "CAM02"
}

var (
	mCAT02 = Mat3{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}
	mHPE = Mat3{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0, 0, 1},
	}
	m16 = Mat3{
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	}
	mCAT02Inv = mCAT02.Inverse()
	m16Inv    = m16.Inverse()
	// CAT02 sharpened cones to Hunt-Pointer-Estevez and back
	cat02ToHPE = mHPE.Multiply(mCAT02Inv)
	hpeToCAT02 = cat02ToHPE.Inverse()
)
