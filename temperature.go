package unicolour

import (
	"github.com/kovidgoyal/unicolour/colorconv"
)

// Temperature is the correlated colour temperature and Duv of the colour's
// chromaticity. Chromaticities too far from the Planckian locus give NaN.
func (u *Unicolour) Temperature() colorconv.Temperature {
	x, y, _ := u.rep(XYY).Values()
	return colorconv.TemperatureFromChromaticity(colorconv.Chromaticity{X: x, Y: y})
}

// FromTemperature creates the colour of the given CCT in kelvin, offset by
// duv from the Planckian locus, with luminance as its XYZ Y.
func (config *Configuration) FromTemperature(cct, duv, luminance float64) (*Unicolour, error) {
	c := colorconv.ChromaticityFromTemperature(colorconv.Temperature{CCT: cct, Duv: duv})
	return config.New(XYY, c.X, c.Y, luminance, 1)
}

func FromTemperature(cct, duv, luminance float64) (*Unicolour, error) {
	return DefaultConfiguration.FromTemperature(cct, duv, luminance)
}
