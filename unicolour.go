package unicolour

import (
	"fmt"
	"sync/atomic"

	"github.com/kovidgoyal/unicolour/cam"
	"github.com/kovidgoyal/unicolour/colorconv"
	"github.com/kovidgoyal/unicolour/hct"
)

var _ = fmt.Print

// Unicolour is a colour defined in one space that lazily derives, and
// caches, its representation in every other space. It is safe for
// concurrent use. Every derived representation is a pure function of the
// initial one and the configuration so cached values never change.
type Unicolour struct {
	config  *Configuration
	initial Representation
	alpha   Alpha

	cache     [numSpaces]atomic.Pointer[Representation]
	hctSearch atomic.Pointer[hct.Search]
}

// New creates a colour from three components in space, under config, which
// may be nil to mean DefaultConfiguration.
func (config *Configuration) New(space Space, first, second, third, alpha float64) (*Unicolour, error) {
	if !space.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSpace, space)
	}
	if config == nil {
		config = DefaultConfiguration
	}
	u := &Unicolour{
		config:  config,
		initial: newRepresentation(space, colorconv.Vec3{first, second, third}, HeritageNone),
		alpha:   Alpha{alpha},
	}
	r := u.initial
	u.cache[space].Store(&r)
	return u, nil
}

// New creates a fully opaque colour under DefaultConfiguration.
func New(space Space, first, second, third float64) (*Unicolour, error) {
	return DefaultConfiguration.New(space, first, second, third, 1)
}

func NewWithAlpha(space Space, first, second, third, alpha float64) (*Unicolour, error) {
	return DefaultConfiguration.New(space, first, second, third, alpha)
}

// MustNew is like New but panics on error.
func MustNew(space Space, first, second, third float64) *Unicolour {
	u, err := New(space, first, second, third)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *Unicolour) Configuration() *Configuration { return u.config }
func (u *Unicolour) Alpha() Alpha                  { return u.alpha }
func (u *Unicolour) InitialSpace() Space           { return u.initial.Space }
func (u *Unicolour) Initial() Representation       { return u.initial }

// Get returns the representation of the colour in space.
func (u *Unicolour) Get(space Space) (Representation, error) {
	if !space.IsValid() {
		return Representation{}, fmt.Errorf("%w: %s", ErrUnsupportedSpace, space)
	}
	return u.rep(space), nil
}

func (u *Unicolour) rep(space Space) Representation {
	if r := u.cache[space].Load(); r != nil {
		return *r
	}
	r := u.derive(space)
	if !u.cache[space].CompareAndSwap(nil, &r) {
		return *u.cache[space].Load()
	}
	return r
}

func (u *Unicolour) initialIn(spaces ...Space) bool {
	for _, s := range spaces {
		if u.initial.Space == s {
			return true
		}
	}
	return false
}

// derive evaluates the single edge that leads to space from the space
// nearest to the initial one. Recursion through rep resolves the rest of
// the path.
func (u *Unicolour) derive(space Space) Representation {
	c := u.config
	white := c.XYZWhite
	var parent Representation
	var v colorconv.Vec3
	from := func(s Space) colorconv.Vec3 {
		parent = u.rep(s)
		return parent.Vec3()
	}
	constrained := func(s Space) colorconv.Vec3 {
		parent = u.rep(s)
		return parent.Constrained().Vec3()
	}

	switch space {
	case RGBLinear:
		if u.initialIn(RGB, HSB, HSL, HWB) {
			v = c.RGB.ToLinear(from(RGB))
		} else {
			v = colorconv.XYZToLinearRGB(c.xyzToRGB, from(XYZ))
		}
	case RGB:
		if u.initialIn(HSB, HSL, HWB) {
			v = colorconv.HSBToRGB(constrained(HSB))
		} else {
			v = c.RGB.FromLinear(from(RGBLinear))
		}
	case HSB:
		switch u.initial.Space {
		case HSL:
			v = colorconv.HSLToHSB(constrained(HSL))
		case HWB:
			v = colorconv.HWBToHSB(constrained(HWB))
		default:
			v = colorconv.RGBToHSB(constrained(RGB))
		}
	case HSL:
		v = colorconv.HSBToHSL(constrained(HSB))
	case HWB:
		v = colorconv.HSBToHWB(constrained(HSB))
	case XYZ:
		v = u.deriveXYZ(from)
	case XYY:
		v = colorconv.XYZToXYY(from(XYZ), white)
	case Lab:
		if u.initialIn(LCHab) {
			v = colorconv.FromPolar(from(LCHab))
		} else {
			v = colorconv.XYZToLab(from(XYZ), white)
		}
	case LCHab:
		v = colorconv.ToPolar(from(Lab))
	case Luv:
		if u.initialIn(LCHuv, HSLuv, HPLuv) {
			v = colorconv.FromPolar(from(LCHuv))
		} else {
			v = colorconv.XYZToLuv(from(XYZ), white)
		}
	case LCHuv:
		switch u.initial.Space {
		case HSLuv:
			v = colorconv.HSLuvToLCHuv(from(HSLuv))
		case HPLuv:
			v = colorconv.HPLuvToLCHuv(from(HPLuv))
		default:
			v = colorconv.ToPolar(from(Luv))
		}
	case HSLuv:
		v = colorconv.LCHuvToHSLuv(from(LCHuv))
	case HPLuv:
		v = colorconv.LCHuvToHPLuv(from(LCHuv))
	case ICtCp:
		v = colorconv.XYZToICtCp(from(XYZ), white, c.ICtCpScalar)
	case Jzazbz:
		if u.initialIn(Jzczhz) {
			v = colorconv.FromPolar(from(Jzczhz))
		} else {
			v = colorconv.XYZToJzazbz(from(XYZ), white, c.JzazbzScalar)
		}
	case Jzczhz:
		v = colorconv.ToPolar(from(Jzazbz))
	case Oklab:
		if u.initialIn(Oklch) {
			v = colorconv.FromPolar(from(Oklch))
		} else {
			v = colorconv.XYZToOklab(from(XYZ), white)
		}
	case Oklch:
		v = colorconv.ToPolar(from(Oklab))
	case CAM02:
		v = c.cam02.XYZToUCS(from(XYZ), white)
	case CAM16:
		v = c.cam16.XYZToUCS(from(XYZ), white)
	case HCT:
		v = hct.FromXYZ(from(XYZ), white)
	}
	return newRepresentation(space, v, heritageFrom(parent))
}

func (u *Unicolour) deriveXYZ(from func(Space) colorconv.Vec3) colorconv.Vec3 {
	c := u.config
	white := c.XYZWhite
	switch u.initial.Space {
	case XYY:
		return colorconv.XYYToXYZ(from(XYY))
	case Lab, LCHab:
		return colorconv.LabToXYZ(from(Lab), white)
	case Luv, LCHuv, HSLuv, HPLuv:
		return colorconv.LuvToXYZ(from(Luv), white)
	case ICtCp:
		return colorconv.ICtCpToXYZ(from(ICtCp), white, c.ICtCpScalar)
	case Jzazbz, Jzczhz:
		return colorconv.JzazbzToXYZ(from(Jzazbz), white, c.JzazbzScalar)
	case Oklab, Oklch:
		return colorconv.OklabToXYZ(from(Oklab), white)
	case CAM02:
		return c.cam02.UCSToXYZ(from(CAM02), white)
	case CAM16:
		return c.cam16.UCSToXYZ(from(CAM16), white)
	case HCT:
		xyz, search := hct.ToXYZ(from(HCT), white)
		if !search.Converged {
			h, ch, t := u.initial.Values()
			Logger().Debug("HCT search did not converge", "hue", h, "chroma", ch, "tone", t, "iterations", search.Iterations)
		}
		u.hctSearch.CompareAndSwap(nil, &search)
		return xyz
	}
	return colorconv.LinearRGBToXYZ(c.rgbToXYZ, from(RGBLinear))
}

// HCTSearch reports the outcome of the search from HCT to XYZ. It is only
// available for colours created in HCT.
func (u *Unicolour) HCTSearch() (hct.Search, bool) {
	if u.initial.Space != HCT {
		return hct.Search{}, false
	}
	u.rep(XYZ)
	return *u.hctSearch.Load(), true
}

// CAM02Model returns the full set of CIECAM02 correlates of the colour.
func (u *Unicolour) CAM02Model() cam.Correlates {
	return u.config.cam02.FromRelativeXYZ(u.rep(XYZ).Vec3(), u.config.XYZWhite)
}

// CAM16Model returns the full set of CAM16 correlates of the colour.
func (u *Unicolour) CAM16Model() cam.Correlates {
	return u.config.cam16.FromRelativeXYZ(u.rep(XYZ).Vec3(), u.config.XYZWhite)
}

func (u *Unicolour) RGB() Representation       { return u.rep(RGB) }
func (u *Unicolour) RGBLinear() Representation { return u.rep(RGBLinear) }
func (u *Unicolour) HSB() Representation       { return u.rep(HSB) }
func (u *Unicolour) HSL() Representation       { return u.rep(HSL) }
func (u *Unicolour) HWB() Representation       { return u.rep(HWB) }
func (u *Unicolour) XYZ() Representation       { return u.rep(XYZ) }
func (u *Unicolour) XYY() Representation       { return u.rep(XYY) }
func (u *Unicolour) Lab() Representation       { return u.rep(Lab) }
func (u *Unicolour) LCHab() Representation     { return u.rep(LCHab) }
func (u *Unicolour) Luv() Representation       { return u.rep(Luv) }
func (u *Unicolour) LCHuv() Representation     { return u.rep(LCHuv) }
func (u *Unicolour) HSLuv() Representation     { return u.rep(HSLuv) }
func (u *Unicolour) HPLuv() Representation     { return u.rep(HPLuv) }
func (u *Unicolour) ICtCp() Representation     { return u.rep(ICtCp) }
func (u *Unicolour) Jzazbz() Representation    { return u.rep(Jzazbz) }
func (u *Unicolour) Jzczhz() Representation    { return u.rep(Jzczhz) }
func (u *Unicolour) Oklab() Representation     { return u.rep(Oklab) }
func (u *Unicolour) Oklch() Representation     { return u.rep(Oklch) }
func (u *Unicolour) CAM02() Representation     { return u.rep(CAM02) }
func (u *Unicolour) CAM16() Representation     { return u.rep(CAM16) }
func (u *Unicolour) HCT() Representation       { return u.rep(HCT) }

func (u *Unicolour) String() string {
	return fmt.Sprintf("%s %s alpha %s", u.Hex(), u.initial, u.alpha)
}
