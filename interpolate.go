package unicolour

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/unicolour/colorconv"
)

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

// effectiveHues picks the hues to interpolate between. A representation
// whose hue is only a placeholder takes the hue of the other, then the
// shorter way round the circle is chosen.
func effectiveHues(a, b Representation) (h1, h2 float64) {
	h1 = colorconv.Modulo(a.Triplet.Hue(), 360)
	h2 = colorconv.Modulo(b.Triplet.Hue(), 360)
	switch ah, bh := a.UseAsHued(), b.UseAsHued(); {
	case ah && !bh:
		h2 = h1
	case bh && !ah:
		h1 = h2
	}
	if math.Abs(h2-h1) > 180 {
		if h1 < h2 {
			h1 += 360
		} else {
			h2 += 360
		}
	}
	return
}

func interpolateTriplets(t1, t2 Triplet, amount float64) Triplet {
	return Triplet{
		lerp(t1.First, t2.First, amount),
		lerp(t1.Second, t2.Second, amount),
		lerp(t1.Third, t2.Third, amount),
		t1.HueIndex,
	}
}

// Mix interpolates from u towards other in space. amount 0 is u and 1 is
// other, values outside [0, 1] extrapolate. When premultiply is true the
// non hue components are weighted by alpha. Both colours must share a
// configuration.
func (u *Unicolour) Mix(other *Unicolour, space Space, amount float64, premultiply bool) (*Unicolour, error) {
	if !space.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSpace, space)
	}
	if u.config != other.config {
		return nil, ErrConfigurationMismatch
	}
	a, b := u.rep(space), other.rep(space)
	t1, t2 := a.Triplet, b.Triplet
	if space.HasHueAxis() {
		h1, h2 := effectiveHues(a, b)
		t1, t2 = t1.WithHue(h1), t2.WithHue(h2)
	}
	alpha1, alpha2 := u.alpha.Constrained(), other.alpha.Constrained()
	if premultiply {
		t1, t2 = t1.premultiplied(alpha1), t2.premultiplied(alpha2)
	}
	alpha := lerp(alpha1, alpha2, amount)
	t := interpolateTriplets(t1, t2, amount)
	if premultiply {
		t = t.unpremultiplied(alpha)
	}
	ans := &Unicolour{
		config:  u.config,
		initial: Representation{Space: space, Triplet: t.WithHueModulo(), Heritage: combineHeritage(a, b)},
		alpha:   Alpha{alpha},
	}
	r := ans.initial
	ans.cache[space].Store(&r)
	return ans, nil
}

// Palette returns count colours evenly spaced from u to other, inclusive of
// both ends. A count of one gives just u.
func (u *Unicolour) Palette(other *Unicolour, space Space, count int, premultiply bool) (ans []*Unicolour, err error) {
	if count < 1 {
		return nil, nil
	}
	if _, err = u.Mix(other, space, 0, premultiply); err != nil {
		return nil, err
	}
	ans = make([]*Unicolour, count)
	step := 0.0
	if count > 1 {
		step = 1 / float64(count-1)
	}
	err = parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			ans[i], _ = u.Mix(other, space, float64(i)*step, premultiply)
		}
	}, 0, count)
	if err != nil {
		return nil, err
	}
	return ans, nil
}
