package colorconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametricCurveMatchesSRGB(t *testing.T) {
	c, err := NewParametricCurve(2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045)
	require.NoError(t, err)
	assert.Equal(t, SplitFunction, c.Function)
	for _, v := range []float64{-0.5, -0.01, 0, 0.001, 0.03, 0.2, 0.5, 0.8, 1, 1.2} {
		assert.InDelta(t, SRGBCompanding.ToLinear(v), c.ToLinear(v), 1e-9, "%v", v)
		assert.InDelta(t, SRGBCompanding.FromLinear(v), c.FromLinear(v), 1e-6, "%v", v)
	}
}

func TestParametricCurveRoundTrips(t *testing.T) {
	for _, tc := range []struct {
		fn     ParametricFunction
		params []float64
	}{
		{SimpleGammaFunction, []float64{2.2}},
		{ConditionalZeroFunction, []float64{2.0, 0.9, 0.1}},
		{ConditionalCFunction, []float64{2.0, 0.9, 0.1, 0.05}},
		{SplitFunction, []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045}},
		{ComplexFunction, []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045, 0.01, 0.002}},
	} {
		c, err := NewParametricCurve(tc.params...)
		require.NoError(t, err)
		assert.Equal(t, tc.fn, c.Function, c.String())
		for _, v := range []float64{0.05, 0.2, 0.5, 0.9, 1} {
			assert.InDelta(t, v, c.FromLinear(c.ToLinear(v)), 1e-9, "%s at %v", c, v)
			assert.InDelta(t, -v, c.FromLinear(c.ToLinear(-v)), 1e-9, "%s at %v", c, -v)
		}
	}
}

func TestParametricCurveErrors(t *testing.T) {
	for _, params := range [][]float64{nil, {1, 2}, {1, 2, 3, 4, 5, 6}, {0}, {2, 0, 1}, {2, 1, 0, 0, 0.1}} {
		_, err := NewParametricCurve(params...)
		assert.Error(t, err, "%v", params)
	}
}
