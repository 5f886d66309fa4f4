package unicolour

const (
	gamutJND           = 0.02
	gamutEpsilon       = 0.0001
	gamutMaxIterations = 1000
)

// IsInDisplayGamut is true when every RGB channel is within [0, 1]. NaN
// colours are never in gamut.
func (u *Unicolour) IsInDisplayGamut() bool {
	rgb := u.rep(RGB)
	if rgb.UseAsNaN() {
		return false
	}
	r, g, b := rgb.Values()
	return r >= 0 && r <= 1 && g >= 0 && g <= 1 && b >= 0 && b <= 1
}

func (u *Unicolour) clipped() *Unicolour {
	r, g, b := u.rep(RGB).Constrained().Tuple()
	ans, _ := u.config.New(RGB, r, g, b, u.alpha.A)
	return ans
}

type gamutOutcome int

const (
	gamutUnchanged gamutOutcome = iota
	gamutLightnessLimit
	gamutJNDClip
	gamutSearched
	gamutFallbackClip
)

// MapToGamut returns a colour inside the RGB gamut. Colours already in
// gamut and NaN colours are returned as is. Otherwise chroma is reduced in
// Oklch, keeping lightness and hue, until clipping the result to RGB is no
// longer noticeable.
func (u *Unicolour) MapToGamut() *Unicolour {
	ans, _, _ := u.mapToGamut()
	return ans
}

// mapToGamut also returns the last Oklch candidate of the chroma search,
// nil when no search was needed.
func (u *Unicolour) mapToGamut() (ans, candidate *Unicolour, outcome gamutOutcome) {
	if u.IsInDisplayGamut() || u.rep(RGB).UseAsNaN() {
		return u, nil, gamutUnchanged
	}
	l, c, h := u.rep(Oklch).Values()
	a := u.alpha.A
	if l >= 1 {
		ans, _ = u.config.New(RGB, 1, 1, 1, a)
		return ans, nil, gamutLightnessLimit
	}
	if l <= 0 {
		ans, _ = u.config.New(RGB, 0, 0, 0, a)
		return ans, nil, gamutLightnessLimit
	}

	lo, hi := 0.0, c
	minInGamut := true
	current := u
	for i := 0; i < gamutMaxIterations && hi-lo > gamutEpsilon; i++ {
		chroma := (lo + hi) / 2
		current, _ = u.config.New(Oklch, l, chroma, h, a)
		if minInGamut && current.IsInDisplayGamut() {
			lo = chroma
			continue
		}
		clipped := current.clipped()
		deltaE, _ := clipped.Difference(current, Ok)
		if deltaE < gamutJND {
			if gamutJND-deltaE < gamutEpsilon {
				return clipped, current, gamutJNDClip
			}
			minInGamut = false
			lo = chroma
		} else {
			hi = chroma
		}
	}
	if !current.IsInDisplayGamut() {
		Logger().Debug("gamut mapping fell back to clipping", "colour", u.initial.String())
		return current.clipped(), current, gamutFallbackClip
	}
	return current, current, gamutSearched
}
