package unicolour

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/unicolour/colorconv"
)

// Triplet holds the three components of a colour along with the index of
// the component that is a hue angle, if any.
type Triplet struct {
	First, Second, Third float64
	HueIndex             int
}

func NewTriplet(first, second, third float64, hueIndex int) Triplet {
	return Triplet{first, second, third, hueIndex}
}

func tripletFromVec(v colorconv.Vec3, hueIndex int) Triplet {
	return Triplet{v[0], v[1], v[2], hueIndex}
}

func (t Triplet) Tuple() (float64, float64, float64) { return t.First, t.Second, t.Third }

func (t Triplet) Vec3() colorconv.Vec3 { return colorconv.Vec3{t.First, t.Second, t.Third} }

func (t Triplet) Get(i int) float64 { return t.Vec3()[i] }

func (t Triplet) With(i int, v float64) Triplet {
	vals := t.Vec3()
	vals[i] = v
	return tripletFromVec(vals, t.HueIndex)
}

// Hue returns the hue component, or NaN when there is no hue axis.
func (t Triplet) Hue() float64 {
	if t.HueIndex == NoHue {
		return math.NaN()
	}
	return t.Get(t.HueIndex)
}

func (t Triplet) WithHue(h float64) Triplet {
	if t.HueIndex == NoHue {
		return t
	}
	return t.With(t.HueIndex, h)
}

// WithHueModulo reduces the hue to [0, 360).
func (t Triplet) WithHueModulo() Triplet {
	if t.HueIndex == NoHue {
		return t
	}
	return t.WithHue(colorconv.Modulo(t.Hue(), 360))
}

func (t Triplet) IsNaN() bool { return t.Vec3().IsNaN() }

// premultiplied scales every component except the hue by alpha.
func (t Triplet) premultiplied(alpha float64) Triplet {
	vals := t.Vec3()
	for i := range vals {
		if i != t.HueIndex {
			vals[i] *= alpha
		}
	}
	return tripletFromVec(vals, t.HueIndex)
}

func (t Triplet) unpremultiplied(alpha float64) Triplet {
	if alpha == 0 {
		alpha = 1
	}
	return t.premultiplied(1 / alpha)
}

func (t Triplet) String() string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", t.First, t.Second, t.Third)
}
