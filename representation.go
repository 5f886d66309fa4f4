package unicolour

import (
	"fmt"

	"github.com/kovidgoyal/unicolour/colorconv"
)

// Representation is a colour expressed in one space. It is immutable.
type Representation struct {
	Space    Space
	Triplet  Triplet
	Heritage Heritage
}

func newRepresentation(space Space, v colorconv.Vec3, heritage Heritage) Representation {
	return Representation{Space: space, Triplet: tripletFromVec(v, space.HueIndex()), Heritage: heritage}
}

func (r Representation) Values() (float64, float64, float64) { return r.Triplet.Tuple() }

func (r Representation) Vec3() colorconv.Vec3 { return r.Triplet.Vec3() }

// IsNaN is true when any component is not finite.
func (r Representation) IsNaN() bool { return r.Triplet.IsNaN() }

func (r Representation) HasHueAxis() bool { return r.Space.HasHueAxis() }

func (r Representation) UseAsNaN() bool {
	return r.Heritage == HeritageNaN || r.IsNaN()
}

func (r Representation) UseAsGreyscale() bool {
	return !r.UseAsNaN() && (r.Heritage.isGreyscale() || r.IsGreyscale())
}

// UseAsHued is true when the hue component carries information rather than
// being a placeholder for an achromatic colour.
func (r Representation) UseAsHued() bool {
	if r.UseAsNaN() || !r.HasHueAxis() {
		return false
	}
	switch r.Heritage {
	case HeritageNone, HeritageHued, HeritageGreyscaleAndHued:
		return true
	}
	return false
}

// IsGreyscale applies the rule of the representation's own space, exact
// comparisons only.
func (r Representation) IsGreyscale() bool {
	a, b, c := r.Values()
	switch r.Space {
	case RGB, RGBLinear:
		k := r.Constrained()
		return k.First == k.Second && k.Second == k.Third
	case HSB:
		return b <= 0 || c <= 0
	case HSL:
		return b <= 0 || c <= 0 || c >= 1
	case HWB:
		return b+c >= 1
	case XYZ:
		return b <= 0
	case XYY:
		return c <= 0
	case Lab, Luv:
		return a <= 0 || a >= 100 || (b == 0 && c == 0)
	case LCHab, LCHuv:
		return a <= 0 || a >= 100 || b <= 0
	case HSLuv, HPLuv:
		return b <= 0 || c <= 0 || c >= 100
	case ICtCp, Jzazbz, CAM02, CAM16:
		return a <= 0 || (b == 0 && c == 0)
	case Jzczhz:
		return a <= 0 || b <= 0
	case Oklab:
		return a <= 0 || a >= 1 || (b == 0 && c == 0)
	case Oklch:
		return a <= 0 || a >= 1 || b <= 0
	case HCT:
		return b <= 0 || c <= 0 || c >= 100
	}
	return false
}

func clamp(x, lo, hi float64) float64 { return max(lo, min(x, hi)) }

// Constrained is the triplet clamped to the valid range of the space with
// the hue reduced to [0, 360). Spaces without a natural range are returned
// unchanged.
func (r Representation) Constrained() Triplet {
	a, b, c := r.Values()
	v := r.Vec3()
	hi := r.Space.HueIndex()
	switch r.Space {
	case RGB, RGBLinear:
		return tripletFromVec(colorconv.ConstrainRGB(v), hi)
	case HSB, HSL:
		return tripletFromVec(colorconv.ConstrainHSB(v), hi)
	case HWB:
		return tripletFromVec(colorconv.ConstrainHWB(v), hi)
	case Lab, Luv:
		return Triplet{clamp(a, 0, 100), b, c, hi}
	case LCHab, LCHuv:
		return Triplet{clamp(a, 0, 100), max(b, 0), colorconv.Modulo(c, 360), hi}
	case HSLuv, HPLuv:
		return Triplet{colorconv.Modulo(a, 360), clamp(b, 0, 100), clamp(c, 0, 100), hi}
	case Oklab:
		return Triplet{clamp(a, 0, 1), b, c, hi}
	case Oklch:
		return Triplet{clamp(a, 0, 1), max(b, 0), colorconv.Modulo(c, 360), hi}
	case Jzczhz:
		return Triplet{a, max(b, 0), colorconv.Modulo(c, 360), hi}
	case HCT:
		return Triplet{colorconv.Modulo(a, 360), max(b, 0), clamp(c, 0, 100), hi}
	}
	return r.Triplet
}

func (r Representation) String() string {
	if r.IsNaN() {
		return fmt.Sprintf("%s(NaN)", r.Space)
	}
	return fmt.Sprintf("%s%s", r.Space, r.Triplet)
}
