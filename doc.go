/*
Package unicolour converts colours between twenty one colour spaces and
derives perceptual quantities from them.

A Unicolour is created in one space, for example with New(Oklch, 0.7, 0.15, 250)
or FromHex("#FF8000"), and lazily computes its representation in any other
space on first request, caching the result. On top of that it provides colour
difference metrics, WCAG contrast, hue aware interpolation, gamut mapping,
correlated colour temperature and colour vision deficiency simulation.

All colours are interpreted under a Configuration. DefaultConfiguration is
sRGB with a D65 white.
*/
package unicolour

import "fmt"

type LibraryVersion struct {
	Major, Minor, Patch uint
}

func (v LibraryVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 as v is older than, equal to or newer than o.
func (v LibraryVersion) Compare(o LibraryVersion) int {
	for _, d := range [3][2]uint{{v.Major, o.Major}, {v.Minor, o.Minor}, {v.Patch, o.Patch}} {
		switch {
		case d[0] < d[1]:
			return -1
		case d[0] > d[1]:
			return 1
		}
	}
	return 0
}

func (v LibraryVersion) After(o LibraryVersion) bool  { return v.Compare(o) > 0 }
func (v LibraryVersion) Before(o LibraryVersion) bool { return v.Compare(o) < 0 }

var Version = LibraryVersion{1, 0, 0}
