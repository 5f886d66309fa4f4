// Package hct implements the Hue, Chroma, Tone space: hue and chroma from
// CAM16 and tone from CIE lightness, under fixed D65 viewing conditions.
package hct

import (
	"fmt"
	"math"
	"sync"

	"github.com/kovidgoyal/unicolour/cam"
	"github.com/kovidgoyal/unicolour/colorconv"
)

var _ = fmt.Print

type Vec3 = colorconv.Vec3

const (
	MaxIterations = 100
	Tolerance     = 1e-9
)

var d65 = colorconv.D65.WhitePoint()

// Configuration is the CAM16 viewing environment HCT is defined in: a
// mid grey background of L* = 50 with the adapting luminance derived from it.
var Configuration = cam.Configuration{
	WhitePoint:          d65,
	AdaptingLuminance:   200 / math.Pi * colorconv.LightnessToLuminance(50),
	BackgroundLuminance: colorconv.LightnessToLuminance(50) * 100,
	Surround:            cam.Average,
}

var viewingConditions = sync.OnceValue(func() *cam.ViewingConditions {
	return cam.NewViewingConditions(cam.CAM16, Configuration)
})

// Search describes the outcome of the reverse transform.
type Search struct {
	Converged  bool
	Iterations int
	// J is the CAM16 lightness the search settled on
	J float64
}

func (s Search) String() string {
	return fmt.Sprintf("Search{converged=%v iterations=%d J=%v}", s.Converged, s.Iterations, s.J)
}

// FromXYZ converts XYZ relative to xyzWhite (Y of white = 1) to H, C, T.
func FromXYZ(xyz Vec3, xyzWhite colorconv.WhitePoint) Vec3 {
	adapted := colorconv.AdaptXYZ(xyz, xyzWhite, d65)
	c := viewingConditions().FromXYZ(adapted.Scale(100))
	t := colorconv.XYZToLab(adapted, d65)[0]
	return Vec3{c.H, c.C, t}
}

// ToXYZ finds the XYZ with the given hue, chroma and tone. There is no closed
// form so it searches over CAM16 lightness for the J whose luminance matches
// the tone. If the search does not converge the result is all NaN.
func ToXYZ(hct Vec3, xyzWhite colorconv.WhitePoint) (Vec3, Search) {
	h, c, t := hct[0], hct[1], hct[2]
	if t <= 0 {
		return Vec3{}, Search{Converged: true}
	}
	vc := viewingConditions()
	target := colorconv.LightnessToLuminance(t)
	luminance := func(j float64) float64 { return vc.ToXYZ(j, c, h)[1] / 100 }

	var seeds [4]float64
	for i, corner := range [4][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		seeds[i] = vc.FromXYZ(Vec3{corner[0], target, corner[1]}.Scale(100)).J
	}
	// corner seeds far outside the spectral locus can have no CAM16 J
	j, diff := math.NaN(), math.NaN()
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, seed := range seeds {
		d := luminance(seed) - target
		if math.IsNaN(seed) || math.IsInf(seed, 0) || math.IsNaN(d) {
			continue
		}
		lo, hi = min(lo, seed), max(hi, seed)
		if math.IsNaN(diff) || math.Abs(d) < math.Abs(diff) {
			j, diff = seed, d
		}
	}
	if math.IsNaN(diff) {
		j = t
		diff = luminance(j) - target
		lo, hi = j, j
	}
	if math.IsNaN(diff) {
		n := math.NaN()
		return Vec3{n, n, n}, Search{Iterations: MaxIterations, J: n}
	}

	step := max((hi-lo)/2, 1)
	s := Search{}
	for s.Iterations < MaxIterations {
		if math.Abs(diff) < Tolerance {
			s.Converged = true
			break
		}
		s.Iterations++
		next := j + step
		if diff > 0 {
			next = j - step
		}
		if next <= 0 {
			step /= 2
			continue
		}
		d := luminance(next) - target
		if math.IsNaN(d) {
			step /= 2
			continue
		}
		if (d > 0) != (diff > 0) {
			step /= 2
		}
		j, diff = next, d
	}
	s.J = j
	if !s.Converged {
		n := math.NaN()
		return Vec3{n, n, n}, s
	}
	xyz := vc.ToXYZ(j, c, h).Scale(1.0 / 100)
	return colorconv.AdaptXYZ(xyz, d65, xyzWhite), s
}
