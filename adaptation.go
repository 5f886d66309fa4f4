package unicolour

import (
	"github.com/kovidgoyal/unicolour/colorconv"
)

// ConvertToConfiguration expresses the colour under target, adapting its
// XYZ from the current white point to the white point of target. A nil
// target means DefaultConfiguration.
func (u *Unicolour) ConvertToConfiguration(target *Configuration) *Unicolour {
	if target == nil {
		target = DefaultConfiguration
	}
	if target == u.config {
		return u
	}
	xyz := colorconv.AdaptXYZ(u.rep(XYZ).Vec3(), u.config.XYZWhite, target.XYZWhite)
	ans, _ := target.New(XYZ, xyz[0], xyz[1], xyz[2], u.alpha.A)
	return ans
}
