package colorconv

import (
	"fmt"
)

var _ = fmt.Print

// CICP is the set of ITU-T H.273 code points that identify the colour
// primaries and transfer function of a video or image signal.
type CICP struct {
	ColorPrimaries, TransferCharacteristics, MatrixCoefficients, VideoFullRange uint8
}

func (c CICP) String() string {
	return fmt.Sprintf("CICP{%d/%d/%d/%d}", c.ColorPrimaries, c.TransferCharacteristics, c.MatrixCoefficients, c.VideoFullRange)
}

var PQCompanding Companding = CompandingFuncs{InversePQ, PQ}

func isBT709Transfer(tc uint8) bool {
	switch tc {
	case 1, 6, 14, 15:
		return true
	}
	return false
}

func cicpCompanding(tc uint8) (Companding, string) {
	if isBT709Transfer(tc) {
		return Rec2020Companding, "BT.709"
	}
	switch tc {
	case 4:
		return Gamma(2.2), "gamma 2.2"
	case 5:
		return Gamma(2.8), "gamma 2.8"
	case 8:
		return LinearCompanding, "linear"
	case 13:
		return SRGBCompanding, "sRGB"
	case 16:
		return PQCompanding, "PQ"
	}
	return nil, ""
}

func cicpPrimaries(cp uint8) *RGBModel {
	switch cp {
	case 1:
		return SRGB
	case 9:
		return Rec2020
	case 12:
		return DisplayP3
	}
	return nil
}

// RGBModel returns the RGB model the code points describe. Well known
// combinations return the predefined models; otherwise a new model is built
// from the primaries with the signalled transfer function. Only full range
// RGB coded signals are supported.
func (c CICP) RGBModel() (*RGBModel, error) {
	if c.MatrixCoefficients != 0 && c.VideoFullRange != 1 {
		return nil, fmt.Errorf("%s is not a full range RGB signal", c)
	}
	base := cicpPrimaries(c.ColorPrimaries)
	if base == nil {
		return nil, fmt.Errorf("%s has unsupported colour primaries", c)
	}
	comp, cname := cicpCompanding(c.TransferCharacteristics)
	if comp == nil {
		return nil, fmt.Errorf("%s has unsupported transfer characteristics", c)
	}
	switch {
	case base == SRGB && c.TransferCharacteristics == 13, base == DisplayP3 && c.TransferCharacteristics == 13:
		return base, nil
	case base == Rec2020 && isBT709Transfer(c.TransferCharacteristics):
		return base, nil
	}
	m := *base
	m.Name = base.Name + " " + cname
	m.Companding = comp
	return &m, nil
}
