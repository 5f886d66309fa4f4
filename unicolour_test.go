package unicolour

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func requireTriplet(t *testing.T, expected, actual Triplet, eps float64, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateApprox(0, eps)); diff != "" {
		require.FailNow(t, "triplets differ (-expected +actual):\n"+diff, msgAndArgs...)
	}
}

func randomColours(n int, seed uint64) []*Unicolour {
	r := rand.New(rand.NewPCG(seed, seed+1))
	ans := make([]*Unicolour, n)
	for i := range ans {
		ans[i] = MustNew(RGB, 0.05+0.9*r.Float64(), 0.05+0.9*r.Float64(), 0.05+0.9*r.Float64())
	}
	return ans
}

func TestScenarios(t *testing.T) {
	red, err := FromHex("#FF0000")
	require.NoError(t, err)
	requireTriplet(t, Triplet{1, 0, 0, NoHue}, red.RGB().Triplet, 0)
	requireTriplet(t, Triplet{0, 1, 0.5, 0}, red.HSL().Triplet, 1e-12)

	black, err := FromHex("#000000")
	require.NoError(t, err)
	white, err := FromHex("#FFFFFF")
	require.NoError(t, err)
	assert.InDelta(t, 21, black.Contrast(white), 1e-9)
	assert.InDelta(t, 21, white.Contrast(black), 1e-9)

	grey := MustNew(Lab, 50, 0, 0)
	d, err := grey.Difference(MustNew(Lab, 50, 0, 0), CIE76)
	require.NoError(t, err)
	assert.Zero(t, d)

	mixed, err := MustNew(RGB, 1, 0, 0).Mix(MustNew(RGB, 0, 0, 1), RGB, 0.5, false)
	require.NoError(t, err)
	requireTriplet(t, Triplet{0.5, 0, 0.5, NoHue}, mixed.RGB().Triplet, 1e-12)
	assert.Equal(t, 1.0, mixed.Alpha().A)
}

// Every space reached from RGB and then used as the initial space must lead
// back to the same RGB.
func TestRoundTripThroughEverySpace(t *testing.T) {
	for i, u := range randomColours(100, 21) {
		expected := u.RGB().Triplet
		for _, space := range Spaces() {
			a, b, c := u.rep(space).Values()
			v, err := New(space, a, b, c)
			require.NoError(t, err)
			eps := 1e-6
			if space == HCT {
				eps = 1e-5
			}
			requireTriplet(t, expected, v.RGB().Triplet, eps, "sample %d via %s", i, space)
		}
	}
}

func TestEveryRepresentationFromEverySpace(t *testing.T) {
	base := MustNew(Oklch, 0.6, 0.1, 200)
	for _, space := range Spaces() {
		a, b, c := base.rep(space).Values()
		u := MustNew(space, a, b, c)
		assert.Equal(t, space, u.InitialSpace())
		for _, target := range Spaces() {
			r, err := u.Get(target)
			require.NoError(t, err)
			require.Equal(t, target, r.Space)
			require.False(t, r.IsNaN(), "%s from %s", target, space)
			require.Equal(t, target.HueIndex(), r.Triplet.HueIndex)
		}
	}
}

func TestUnsupportedSpace(t *testing.T) {
	_, err := New(Space(99), 0, 0, 0)
	require.ErrorIs(t, err, ErrUnsupportedSpace)
	_, err = MustNew(RGB, 0, 0, 0).Get(numSpaces)
	require.ErrorIs(t, err, ErrUnsupportedSpace)
	_, err = SpaceFromName("cmyk")
	require.ErrorIs(t, err, ErrUnsupportedSpace)
	s, err := SpaceFromName("hsv")
	require.NoError(t, err)
	require.Equal(t, HSB, s)
	var parsed Space
	require.NoError(t, parsed.UnmarshalText([]byte("oklch")))
	require.Equal(t, Oklch, parsed)
	text, err := XYY.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "xyY", string(text))
}

func TestNaNPropagation(t *testing.T) {
	u := MustNew(RGB, math.NaN(), 0.5, 0.5)
	for _, space := range Spaces() {
		r := u.rep(space)
		assert.True(t, r.UseAsNaN(), space.String())
		if space != RGB {
			assert.Equal(t, HeritageNaN, r.Heritage, space.String())
		}
	}
	assert.Equal(t, "-", u.Hex())
	assert.False(t, u.IsInDisplayGamut())
	assert.Same(t, u, u.MapToGamut())
	assert.True(t, u.Temperature().IsNaN())
}

func TestGreyscaleHeritage(t *testing.T) {
	grey := MustNew(RGB, 0.5, 0.5, 0.5)
	assert.True(t, grey.RGB().UseAsGreyscale())
	assert.Equal(t, HeritageGreyscale, grey.HSB().Heritage)
	assert.False(t, grey.HSB().UseAsHued())
	assert.Equal(t, HeritageGreyscale, grey.Oklch().Heritage)

	blue := MustNew(RGB, 0, 0, 1)
	assert.Equal(t, HeritageNone, blue.HSB().Heritage)
	assert.True(t, blue.HSB().UseAsHued())

	// an explicit hue is meaningful even with no saturation
	hsb := MustNew(HSB, 120, 0, 0.5)
	assert.True(t, hsb.HSB().UseAsHued())
	assert.True(t, hsb.HSB().UseAsGreyscale())
	assert.Equal(t, HeritageGreyscaleAndHued, hsb.HSL().Heritage)
}

func TestHCT(t *testing.T) {
	u := MustNew(HCT, 120, 40, 50)
	s, ok := u.HCTSearch()
	require.True(t, ok)
	assert.True(t, s.Converged)
	back := u.HCT().Triplet
	assert.InDelta(t, 50, u.HCT().Triplet.Third, 1e-9)
	assert.Equal(t, 120.0, back.First)

	bad := MustNew(HCT, math.NaN(), 40, 50)
	s, ok = bad.HCTSearch()
	require.True(t, ok)
	assert.False(t, s.Converged)
	assert.True(t, bad.XYZ().IsNaN())

	_, ok = MustNew(RGB, 1, 0, 0).HCTSearch()
	assert.False(t, ok)
}

func TestConstrainedHueIsBelow360(t *testing.T) {
	for _, space := range []Space{HSB, LCHab, Oklch, HCT} {
		vals := Triplet{0.5, 0.1, 0.5, space.HueIndex()}.WithHue(-1e-14)
		u := MustNew(space, vals.First, vals.Second, vals.Third)
		h := u.rep(space).Constrained().Hue()
		assert.Equal(t, 0.0, h, space.String())
	}
	a, b := MustNew(Oklch, 0.5, 0.1, -1e-14), MustNew(Oklch, 0.5, 0.1, -1e-14)
	m, err := a.Mix(b, Oklch, 0.5, false)
	require.NoError(t, err)
	assert.Less(t, m.Oklch().Triplet.Hue(), 360.0)
}

func TestCAMModels(t *testing.T) {
	white := MustNew(RGB, 1, 1, 1)
	for _, c := range []struct {
		name string
		J    float64
	}{
		{"CAM02", white.CAM02Model().J},
		{"CAM16", white.CAM16Model().J},
	} {
		assert.InDelta(t, 100, c.J, 1e-6, c.name)
	}
	red := MustNew(RGB, 1, 0, 0).CAM16Model()
	assert.Greater(t, red.C, 50.0)
	assert.True(t, red.Hq >= 0 && red.Hq < 400)
	jp := MustNew(RGB, 1, 0, 0).CAM16().Triplet.First
	assert.InDelta(t, 1.7*red.J/(1+0.007*red.J), jp, 1e-9)
}

func TestConcurrentReads(t *testing.T) {
	u := MustNew(Oklch, 0.5, 0.12, 40)
	expected := MustNew(Oklch, 0.5, 0.12, 40)
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range Spaces() {
				u.rep(s)
			}
		}()
	}
	wg.Wait()
	for _, s := range Spaces() {
		assert.Equal(t, expected.rep(s), u.rep(s), s.String())
	}
}

func TestConvertAll(t *testing.T) {
	colours := randomColours(200, 33)
	reps, err := ConvertAll(colours, Oklab)
	require.NoError(t, err)
	require.Len(t, reps, len(colours))
	for i, c := range colours {
		fresh := MustNew(RGB, c.RGB().Triplet.First, c.RGB().Triplet.Second, c.RGB().Triplet.Third)
		require.Equal(t, fresh.Oklab(), reps[i])
	}
	_, err = ConvertAll(colours, Space(-1))
	require.ErrorIs(t, err, ErrUnsupportedSpace)
	_, err = ConvertAll([]*Unicolour{colours[0], nil}, Lab)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnsupportedSpace))
}

func TestString(t *testing.T) {
	u, err := NewWithAlpha(RGB, 1, 0.5, 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "#FF8000 RGB(1, 0.5, 0) alpha 0.5", u.String())
}
