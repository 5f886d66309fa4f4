package unicolour

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// Space identifies one of the supported colour spaces.
type Space int

const (
	RGB Space = iota
	RGBLinear
	HSB
	HSL
	HWB
	XYZ
	XYY
	Lab
	LCHab
	Luv
	LCHuv
	HSLuv
	HPLuv
	ICtCp
	Jzazbz
	Jzczhz
	Oklab
	Oklch
	CAM02
	CAM16
	HCT

	numSpaces
)

// NoHue is the hue index of spaces without a hue axis.
const NoHue = -1

type spaceInfo struct {
	name     string
	hueIndex int
}

var spaceInfos = [numSpaces]spaceInfo{
	RGB:       {"RGB", NoHue},
	RGBLinear: {"RGBLinear", NoHue},
	HSB:       {"HSB", 0},
	HSL:       {"HSL", 0},
	HWB:       {"HWB", 0},
	XYZ:       {"XYZ", NoHue},
	XYY:       {"xyY", NoHue},
	Lab:       {"Lab", NoHue},
	LCHab:     {"LCHab", 2},
	Luv:       {"Luv", NoHue},
	LCHuv:     {"LCHuv", 2},
	HSLuv:     {"HSLuv", 0},
	HPLuv:     {"HPLuv", 0},
	ICtCp:     {"ICtCp", NoHue},
	Jzazbz:    {"Jzazbz", NoHue},
	Jzczhz:    {"Jzczhz", 2},
	Oklab:     {"Oklab", NoHue},
	Oklch:     {"Oklch", 2},
	CAM02:     {"CAM02", NoHue},
	CAM16:     {"CAM16", NoHue},
	HCT:       {"HCT", 0},
}

func (s Space) IsValid() bool { return s >= 0 && s < numSpaces }

func (s Space) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceInfos[s].name
}

// HueIndex is the index of the hue component or NoHue.
func (s Space) HueIndex() int {
	if !s.IsValid() {
		return NoHue
	}
	return spaceInfos[s].hueIndex
}

func (s Space) HasHueAxis() bool { return s.HueIndex() != NoHue }

// Spaces returns every supported space in declaration order.
func Spaces() []Space {
	ans := make([]Space, numSpaces)
	for i := range ans {
		ans[i] = Space(i)
	}
	return ans
}

// SpaceFromName parses a space name, ignoring case. A few common aliases
// such as "hsv" and "srgb" are accepted.
func SpaceFromName(name string) (Space, error) {
	for i, info := range spaceInfos {
		if strings.EqualFold(info.name, name) {
			return Space(i), nil
		}
	}
	switch strings.ToLower(name) {
	case "srgb":
		return RGB, nil
	case "linear", "rgb-linear", "linearrgb":
		return RGBLinear, nil
	case "hsv":
		return HSB, nil
	case "lch":
		return LCHab, nil
	case "cam02-ucs", "cam02ucs":
		return CAM02, nil
	case "cam16-ucs", "cam16ucs":
		return CAM16, nil
	}
	return RGB, fmt.Errorf("%w: %q", ErrUnsupportedSpace, name)
}

func (s Space) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSpace, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Space) UnmarshalText(text []byte) (err error) {
	*s, err = SpaceFromName(string(text))
	return
}
