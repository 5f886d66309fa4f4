package unicolour

import (
	"fmt"
	"math"
	"strings"

	"github.com/kovidgoyal/unicolour/colorconv"
)

// Metric selects a colour difference formula.
type Metric int

const (
	CIE76 Metric = iota
	CIE94
	CIE94Textiles
	CIEDE2000
	CMCAcceptability
	CMCPerceptibility
	ITP
	Z
	HyAB
	Ok
	CAM02UCS
	CAM16UCS

	numMetrics
)

var metricNames = [numMetrics]string{
	"CIE76", "CIE94", "CIE94Textiles", "CIEDE2000", "CMCAcceptability", "CMCPerceptibility",
	"ITP", "Z", "HyAB", "Ok", "CAM02", "CAM16",
}

func (m Metric) String() string {
	if m >= 0 && m < numMetrics {
		return metricNames[m]
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// MetricFromName parses a metric name, ignoring case. "cmc" means 2:1.
func MetricFromName(name string) (Metric, error) {
	for i, n := range metricNames {
		if strings.EqualFold(n, name) {
			return Metric(i), nil
		}
	}
	switch strings.ToLower(name) {
	case "cmc", "cmc21":
		return CMCAcceptability, nil
	case "cmc11":
		return CMCPerceptibility, nil
	case "de2000", "ciede00":
		return CIEDE2000, nil
	}
	return CIE76, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Metric) UnmarshalText(text []byte) (err error) {
	*m, err = MetricFromName(string(text))
	return
}

// CAM16 UCS differences are rescaled with ΔE' = 1.41 ΔE^0.63.
const (
	cam16Scale    = 1.41
	cam16Exponent = 0.63
)

// Difference measures how different other is from u, the reference for the
// asymmetric metrics CIE94 and CMC.
func (u *Unicolour) Difference(other *Unicolour, metric Metric) (float64, error) {
	if u.config != other.config {
		return math.NaN(), ErrConfigurationMismatch
	}
	vec := func(s Space) (colorconv.Vec3, colorconv.Vec3) {
		return u.rep(s).Vec3(), other.rep(s).Vec3()
	}
	switch metric {
	case CIE76:
		return colorconv.Euclidean(vec(Lab)), nil
	case CIE94:
		a, b := vec(Lab)
		return colorconv.DeltaE94(a, b, colorconv.CIE94GraphicArts), nil
	case CIE94Textiles:
		a, b := vec(Lab)
		return colorconv.DeltaE94(a, b, colorconv.CIE94Textiles), nil
	case CIEDE2000:
		return colorconv.DeltaE2000(vec(Lab)), nil
	case CMCAcceptability:
		a, b := vec(Lab)
		return colorconv.DeltaECMC(a, b, 2, 1), nil
	case CMCPerceptibility:
		a, b := vec(Lab)
		return colorconv.DeltaECMC(a, b, 1, 1), nil
	case ITP:
		return colorconv.DeltaEITP(vec(ICtCp)), nil
	case Z:
		return colorconv.DeltaEZ(vec(Jzczhz)), nil
	case HyAB:
		return colorconv.DeltaEHyAB(vec(Lab)), nil
	case Ok:
		return colorconv.Euclidean(vec(Oklab)), nil
	case CAM02UCS:
		return colorconv.Euclidean(vec(CAM02)), nil
	case CAM16UCS:
		d := colorconv.Euclidean(vec(CAM16))
		return cam16Scale * math.Pow(d, cam16Exponent), nil
	}
	return math.NaN(), fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
}

// RelativeLuminance is the WCAG luminance of the constrained linear RGB.
func (u *Unicolour) RelativeLuminance() float64 {
	r, g, b := u.rep(RGBLinear).Constrained().Tuple()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast is the WCAG contrast ratio, from 1 to 21, independent of order.
func (u *Unicolour) Contrast(other *Unicolour) float64 {
	l1, l2 := u.RelativeLuminance(), other.RelativeLuminance()
	return (max(l1, l2) + 0.05) / (min(l1, l2) + 0.05)
}
