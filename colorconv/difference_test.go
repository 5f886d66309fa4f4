package colorconv

import (
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaE2000(t *testing.T) {
	for _, tc := range []struct {
		a, b     Vec3
		expected float64
	}{
		{Vec3{50, 2.6772, -79.7751}, Vec3{50, 0, -82.7485}, 2.0425},
		{Vec3{50, 2.5, 0}, Vec3{50, 0, -2.5}, 4.3065},
		{Vec3{50, 0, 0}, Vec3{50, -1, 2}, 2.3669},
		{Vec3{2.0776, 0.0795, -1.1350}, Vec3{0.9033, -0.0636, -0.5514}, 0.9082},
	} {
		assert.InDelta(t, tc.expected, DeltaE2000(tc.a, tc.b), 1e-4, "%v %v", tc.a, tc.b)
		assert.InDelta(t, tc.expected, DeltaE2000(tc.b, tc.a), 1e-4, "symmetric %v %v", tc.a, tc.b)
	}
}

func TestDeltaEAgainstColorful(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	d65 := D65.WhitePoint()
	m := SRGB.LinearToXYZMatrix(d65)
	lab := func(rgb Vec3) Vec3 { return XYZToLab(m.Apply(SRGB.ToLinear(rgb)), d65) }
	for i := range 200 {
		c1, c2 := randomRGB(r), randomRGB(r)
		k1 := colorful.Color{R: c1[0], G: c1[1], B: c1[2]}
		k2 := colorful.Color{R: c2[0], G: c2[1], B: c2[2]}
		l1, l2 := lab(c1), lab(c2)
		require.InDelta(t, 100*k1.DistanceLab(k2), Euclidean(l1, l2), 0.1, "sample %d", i)
		require.InDelta(t, 100*k1.DistanceCIEDE2000(k2), DeltaE2000(l1, l2), 0.1, "sample %d", i)
	}
}

func TestDeltaEProperties(t *testing.T) {
	a, b := Vec3{60, 40, -20}, Vec3{55, 10, 30}
	for name, f := range map[string]func(Vec3, Vec3) float64{
		"CIE94":         func(x, y Vec3) float64 { return DeltaE94(x, y, CIE94GraphicArts) },
		"CIE94Textiles": func(x, y Vec3) float64 { return DeltaE94(x, y, CIE94Textiles) },
		"CMC21":         func(x, y Vec3) float64 { return DeltaECMC(x, y, 2, 1) },
		"CMC11":         func(x, y Vec3) float64 { return DeltaECMC(x, y, 1, 1) },
		"HyAB":          DeltaEHyAB,
		"CIEDE2000":     DeltaE2000,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Zero(t, f(a, a))
			assert.Greater(t, f(a, b), 0.0)
		})
	}
	// reference dependent metrics
	assert.NotEqual(t, DeltaE94(a, b, CIE94GraphicArts), DeltaE94(b, a, CIE94GraphicArts))
	assert.NotEqual(t, DeltaECMC(a, b, 2, 1), DeltaECMC(b, a, 2, 1))
	// the lightness weight of 2:1 halves the lightness term
	light := Vec3{70, 40, -20}
	assert.Less(t, DeltaECMC(a, light, 2, 1), DeltaECMC(a, light, 1, 1))
	assert.InDelta(t, 15.0+30.0, DeltaEHyAB(Vec3{50, 0, 0}, Vec3{65, 18, 24}), 1e-9)
}

func TestDeltaEITPAndZ(t *testing.T) {
	assert.InDelta(t, 720*0.01, DeltaEITP(Vec3{0.5, 0, 0}, Vec3{0.51, 0, 0}), 1e-12)
	assert.InDelta(t, 720*0.005, DeltaEITP(Vec3{0.5, 0, 0}, Vec3{0.5, 0.01, 0}), 1e-12)
	// a pure hue rotation of half a turn is twice the chroma
	assert.InDelta(t, 0.02, DeltaEZ(Vec3{0.1, 0.01, 0}, Vec3{0.1, 0.01, 180}), 1e-12)
	assert.InDelta(t, 0.01, DeltaEZ(Vec3{0.1, 0.01, 30}, Vec3{0.11, 0.01, 30}), 1e-12)
}
