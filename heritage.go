package unicolour

// Heritage records whether a representation inherited NaN, greyscale or a
// meaningful hue from the representation it was converted from. It decides
// whether a hue is real or only a placeholder when interpolating.
type Heritage int

const (
	HeritageNone Heritage = iota
	HeritageNaN
	HeritageGreyscale
	HeritageHued
	HeritageGreyscaleAndHued
)

var heritageNames = [...]string{"None", "NaN", "Greyscale", "Hued", "GreyscaleAndHued"}

func (h Heritage) String() string {
	if h >= 0 && int(h) < len(heritageNames) {
		return heritageNames[h]
	}
	return "Unknown"
}

func (h Heritage) isGreyscale() bool {
	return h == HeritageGreyscale || h == HeritageGreyscaleAndHued
}

// heritageFrom is the heritage of a representation derived from parent.
func heritageFrom(parent Representation) Heritage {
	greyscale, hued := parent.UseAsGreyscale(), parent.UseAsHued()
	switch {
	case parent.UseAsNaN():
		return HeritageNaN
	case greyscale && hued:
		return HeritageGreyscaleAndHued
	case greyscale:
		return HeritageGreyscale
	case hued:
		return HeritageHued
	}
	return HeritageNone
}

// combineHeritage is the heritage of a mix of a and b.
func combineHeritage(a, b Representation) Heritage {
	switch {
	case a.UseAsNaN() || b.UseAsNaN():
		return HeritageNaN
	case a.UseAsGreyscale() && b.UseAsGreyscale():
		if a.UseAsHued() || b.UseAsHued() {
			return HeritageGreyscaleAndHued
		}
		return HeritageGreyscale
	case a.UseAsHued() || b.UseAsHued():
		return HeritageHued
	}
	return HeritageNone
}
