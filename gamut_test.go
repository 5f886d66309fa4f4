package unicolour

import (
	"math/rand/v2"
	"testing"

	"github.com/kovidgoyal/unicolour/colorconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToGamutInGamut(t *testing.T) {
	for _, u := range randomColours(50, 51) {
		require.True(t, u.IsInDisplayGamut())
		require.Same(t, u, u.MapToGamut())
	}
}

func TestMapToGamut(t *testing.T) {
	for _, tc := range []struct {
		l, c, h float64
		outcome gamutOutcome
	}{
		{0.7, 0.35, 150, gamutJNDClip},
		{0.5, 0.4, 30, gamutJNDClip},
		{0.9, 0.3, 260, gamutJNDClip},
		{0.2, 0.25, 300, gamutJNDClip},
		{0.95, 0.15, 100, gamutFallbackClip},
	} {
		u, err := NewWithAlpha(Oklch, tc.l, tc.c, tc.h, 0.7)
		require.NoError(t, err)
		require.False(t, u.IsInDisplayGamut(), "%v", tc)
		m, candidate, outcome := u.mapToGamut()
		assert.Equal(t, tc.outcome, outcome, "%v", tc)
		require.NotNil(t, candidate)
		require.True(t, m.IsInDisplayGamut(), "%v", tc)
		assert.Equal(t, 0.7, m.Alpha().A)

		l, c, h := m.Oklch().Values()
		assert.InDelta(t, tc.l, l, 0.05, "lightness of %v", tc)
		assert.Less(t, c, tc.c, "chroma of %v", tc)
		assert.LessOrEqual(t, hueDistance(tc.h, h), 10.0, "hue of %v", tc)

		// the last unclipped candidate is within a just noticeable
		// difference of its clip, and the result is that clip
		d, err := candidate.Difference(candidate.clipped(), Ok)
		require.NoError(t, err)
		assert.LessOrEqual(t, d, gamutJND+gamutEpsilon, "%v", tc)
		requireTriplet(t, candidate.clipped().RGB().Triplet, m.RGB().Triplet, 1e-12)
		if outcome == gamutJNDClip {
			assert.Less(t, gamutJND-d, gamutEpsilon, "%v", tc)
		}
	}
}

func TestMapToGamutJNDProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))
	mapped := 0
	for mapped < 200 {
		u := MustNew(Oklch, 0.02+0.96*r.Float64(), 0.5*r.Float64(), 360*r.Float64())
		if u.IsInDisplayGamut() {
			continue
		}
		mapped++
		m, candidate, outcome := u.mapToGamut()
		require.True(t, m.IsInDisplayGamut(), "%s", u)
		d, err := candidate.Difference(candidate.clipped(), Ok)
		require.NoError(t, err)
		require.LessOrEqual(t, d, gamutJND+gamutEpsilon, "%s via %d", u, outcome)
	}
}

func hueDistance(a, b float64) float64 {
	d := colorconv.Modulo(a-b, 360)
	return min(d, 360-d)
}

func TestMapToGamutExtremes(t *testing.T) {
	white := MustNew(Oklch, 1.2, 0.3, 40).MapToGamut()
	requireTriplet(t, Triplet{1, 1, 1, NoHue}, white.RGB().Triplet, 0)
	black := MustNew(Oklch, -0.1, 0.3, 40).MapToGamut()
	requireTriplet(t, Triplet{0, 0, 0, NoHue}, black.RGB().Triplet, 0)
	// out of gamut RGB is mapped too
	m := MustNew(RGB, 1.2, -0.1, 0.3).MapToGamut()
	assert.True(t, m.IsInDisplayGamut())
}
