package unicolour

import (
	"fmt"
	"strings"

	"github.com/kovidgoyal/unicolour/colorconv"
)

// Deficiency is a type of colour vision deficiency that can be simulated.
type Deficiency int

const (
	Protanopia Deficiency = iota
	Deuteranopia
	Tritanopia
	Achromatopsia
)

var deficiencyNames = [...]string{"protanopia", "deuteranopia", "tritanopia", "achromatopsia"}

var deficiencyAliases = [...]string{"protan", "deutan", "tritan", "achroma"}

func (d Deficiency) String() string {
	if d >= 0 && int(d) < len(deficiencyNames) {
		return deficiencyNames[d]
	}
	return fmt.Sprintf("Deficiency(%d)", int(d))
}

// DeficiencyFromName accepts the condition name or the cone that is
// missing: "protan", "deutan", "tritan" and "achroma" prefixes all work.
func DeficiencyFromName(name string) (Deficiency, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) >= 5 {
		for i, dn := range deficiencyNames {
			if strings.HasPrefix(dn, n) || strings.HasPrefix(deficiencyAliases[i], n) || strings.HasPrefix(n, deficiencyAliases[i]) {
				return Deficiency(i), nil
			}
		}
	}
	return Protanopia, fmt.Errorf("%w: %q", ErrUnknownDeficiency, name)
}

// Machado, Oliveira and Fernandes (2009) at severity 1, applied to linear
// RGB.
var deficiencyMatrices = [...]colorconv.Mat3{
	Protanopia: {
		{0.152286, 1.052583, -0.204868},
		{0.114503, 0.786281, 0.099216},
		{-0.003882, -0.048116, 1.051998},
	},
	Deuteranopia: {
		{0.367322, 0.860646, -0.227968},
		{0.280085, 0.672501, 0.047413},
		{-0.011820, 0.042940, 0.968881},
	},
	Tritanopia: {
		{1.255528, -0.076749, -0.178779},
		{-0.078411, 0.930809, 0.147602},
		{0.004733, 0.691367, 0.303900},
	},
}

// Simulate returns the colour as seen with the deficiency.
func (u *Unicolour) Simulate(d Deficiency) (*Unicolour, error) {
	var v colorconv.Vec3
	switch d {
	case Protanopia, Deuteranopia, Tritanopia:
		v = deficiencyMatrices[d].Apply(u.rep(RGBLinear).Constrained().Vec3())
	case Achromatopsia:
		y := u.RelativeLuminance()
		v = colorconv.Vec3{y, y, y}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDeficiency, d)
	}
	return u.config.New(RGBLinear, v[0], v[1], v[2], u.alpha.A)
}
