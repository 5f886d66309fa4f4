package unicolour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allMetrics() []Metric {
	ans := make([]Metric, numMetrics)
	for i := range ans {
		ans[i] = Metric(i)
	}
	return ans
}

func TestIdenticalColoursHaveNoDifference(t *testing.T) {
	for _, u := range randomColours(20, 41) {
		r, g, b := u.RGB().Values()
		same := MustNew(RGB, r, g, b)
		for _, m := range allMetrics() {
			d, err := u.Difference(same, m)
			require.NoError(t, err)
			require.InDelta(t, 0, d, 1e-9, m.String())
		}
	}
}

func TestDifferenceKnownValues(t *testing.T) {
	a := MustNew(Lab, 50, 2.6772, -79.7751)
	b := MustNew(Lab, 50, 0, -82.7485)
	d, err := a.Difference(b, CIEDE2000)
	require.NoError(t, err)
	assert.InDelta(t, 2.0425, d, 1e-4)

	d, err = MustNew(Lab, 50, 0, 0).Difference(MustNew(Lab, 60, 0, 0), CIE76)
	require.NoError(t, err)
	assert.InDelta(t, 10, d, 1e-9)
	d, err = MustNew(Lab, 50, 0, 0).Difference(MustNew(Lab, 60, 0, 0), CIE94Textiles)
	require.NoError(t, err)
	assert.InDelta(t, 5, d, 1e-9)

	d, err = MustNew(Oklab, 0.5, 0, 0).Difference(MustNew(Oklab, 0.5, 0.03, 0.04), Ok)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, d, 1e-9)
}

func TestDifferenceAgainstColorful(t *testing.T) {
	colours := randomColours(40, 43)
	for i := 1; i < len(colours); i++ {
		a, b := colours[i-1], colours[i]
		ka := colorful.Color{R: a.RGB().Triplet.First, G: a.RGB().Triplet.Second, B: a.RGB().Triplet.Third}
		kb := colorful.Color{R: b.RGB().Triplet.First, G: b.RGB().Triplet.Second, B: b.RGB().Triplet.Third}
		d, err := a.Difference(b, CIEDE2000)
		require.NoError(t, err)
		require.InDelta(t, 100*ka.DistanceCIEDE2000(kb), d, 0.1, "pair %d", i)
	}
}

func TestCAM16Scaling(t *testing.T) {
	a, b := MustNew(RGB, 0.8, 0.2, 0.1), MustNew(RGB, 0.2, 0.4, 0.9)
	raw, err := a.Difference(b, CAM02UCS)
	require.NoError(t, err)
	assert.Greater(t, raw, 0.0)
	d16, err := a.Difference(b, CAM16UCS)
	require.NoError(t, err)
	u1, u2 := a.CAM16().Vec3(), b.CAM16().Vec3()
	dist := math.Sqrt((u1[0]-u2[0])*(u1[0]-u2[0]) + (u1[1]-u2[1])*(u1[1]-u2[1]) + (u1[2]-u2[2])*(u1[2]-u2[2]))
	assert.InDelta(t, 1.41*math.Pow(dist, 0.63), d16, 1e-9)
}

func TestDifferenceErrors(t *testing.T) {
	a := MustNew(RGB, 1, 0, 0)
	_, err := a.Difference(a, Metric(-3))
	require.ErrorIs(t, err, ErrUnknownMetric)
	b, err := MustNewConfiguration().New(RGB, 1, 0, 0, 1)
	require.NoError(t, err)
	_, err = a.Difference(b, CIE76)
	require.ErrorIs(t, err, ErrConfigurationMismatch)

	m, err := MetricFromName("cmc")
	require.NoError(t, err)
	assert.Equal(t, CMCAcceptability, m)
	m, err = MetricFromName("ok")
	require.NoError(t, err)
	assert.Equal(t, Ok, m)
	_, err = MetricFromName("delta")
	require.ErrorIs(t, err, ErrUnknownMetric)
}

func TestContrast(t *testing.T) {
	white := MustNew(RGB, 1, 1, 1)
	assert.InDelta(t, 1, white.Contrast(white), 1e-12)
	assert.InDelta(t, 1, white.RelativeLuminance(), 1e-9)
	grey := MustNew(RGB, 0.5, 0.5, 0.5)
	l := math.Pow((0.5+0.055)/1.055, 2.4)
	assert.InDelta(t, l, grey.RelativeLuminance(), 1e-9)
	assert.InDelta(t, 1.05/(l+0.05), grey.Contrast(white), 1e-9)
	// out of gamut channels are constrained first
	assert.InDelta(t, 1, MustNew(RGB, 2, 2, 2).RelativeLuminance(), 1e-9)
}
