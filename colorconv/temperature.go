package colorconv

import (
	"fmt"
	"math"
)

// Temperature is a correlated colour temperature in kelvin together with the
// signed distance Duv from the Planckian locus in the CIE 1960 UCS. Positive
// Duv lies above the locus (towards green).
type Temperature struct {
	CCT, Duv float64
}

func (t Temperature) IsNaN() bool {
	return math.IsNaN(t.CCT) || math.IsNaN(t.Duv)
}

func (t Temperature) String() string {
	if t.IsNaN() {
		return "-"
	}
	return fmt.Sprintf("%.1f K (Δuv %.5f)", t.CCT, t.Duv)
}

// isotemperature is one line of Robertson's table: reciprocal megakelvin, the
// point where the line crosses the locus and the slope of the line.
type isotemperature struct {
	mirek, u, v, t float64
}

var isotemperatures = [...]isotemperature{
	{0, 0.18006, 0.26352, -0.24341},
	{10, 0.18066, 0.26589, -0.25479},
	{20, 0.18133, 0.26846, -0.26876},
	{30, 0.18208, 0.27119, -0.28539},
	{40, 0.18293, 0.27407, -0.30470},
	{50, 0.18388, 0.27709, -0.32675},
	{60, 0.18494, 0.28021, -0.35156},
	{70, 0.18611, 0.28342, -0.37915},
	{80, 0.18740, 0.28668, -0.40955},
	{90, 0.18880, 0.28997, -0.44278},
	{100, 0.19032, 0.29326, -0.47888},
	{125, 0.19462, 0.30141, -0.58204},
	{150, 0.19962, 0.30921, -0.70471},
	{175, 0.20525, 0.31647, -0.84901},
	{200, 0.21142, 0.32312, -1.0182},
	{225, 0.21807, 0.32909, -1.2168},
	{250, 0.22511, 0.33439, -1.4512},
	{275, 0.23247, 0.33904, -1.7298},
	{300, 0.24010, 0.34308, -2.0637},
	{325, 0.24702, 0.34655, -2.4681},
	{350, 0.25591, 0.34951, -2.9641},
	{375, 0.26400, 0.35200, -3.5814},
	{400, 0.27218, 0.35407, -4.3633},
	{425, 0.28039, 0.35577, -5.3762},
	{450, 0.28863, 0.35714, -6.7262},
	{475, 0.29685, 0.35823, -8.5955},
	{500, 0.30505, 0.35907, -11.324},
	{525, 0.31320, 0.35968, -15.628},
	{550, 0.32129, 0.36011, -23.325},
	{575, 0.32931, 0.36038, -40.770},
	{600, 0.33724, 0.36051, -116.45},
}

// robertson finds the CCT by interpolating between the two isotemperature
// lines that straddle the point. Points outside the table give NaN.
func robertson(us, vs float64) float64 {
	var di, mi float64
	for j, iso := range isotemperatures {
		dj := ((vs - iso.v) - iso.t*(us-iso.u)) / math.Sqrt(1+iso.t*iso.t)
		if j != 0 && di/dj < 0 {
			return 1e6 / (mi + (di/(di-dj))*(iso.mirek-mi))
		}
		di, mi = dj, iso.mirek
	}
	return math.NaN()
}

// PlanckianUV approximates the CIE 1960 coordinates of a blackbody radiator
// (Krystek 1985, accurate from 1000 K to 15000 K).
func PlanckianUV(cct float64) (u, v float64) {
	t := cct
	u = (0.860117757 + 1.54118254e-4*t + 1.28641212e-7*t*t) / (1 + 8.42420235e-4*t + 7.08145163e-7*t*t)
	v = (0.317398726 + 4.22806245e-5*t + 4.20481691e-8*t*t) / (1 - 2.89741816e-5*t + 1.61456053e-7*t*t)
	return
}

// TemperatureFromChromaticity uses Robertson's method for the CCT and the
// distance to the Krystek locus point for Duv.
func TemperatureFromChromaticity(c Chromaticity) Temperature {
	us, vs := c.UV()
	cct := robertson(us, vs)
	if math.IsNaN(cct) {
		return Temperature{math.NaN(), math.NaN()}
	}
	ut, vt := PlanckianUV(cct)
	duv := math.Hypot(us-ut, vs-vt)
	if vs < vt {
		duv = -duv
	}
	return Temperature{cct, duv}
}

// locusNormal is the unit normal of the locus at cct, oriented towards
// increasing v.
func locusNormal(cct float64) (nu, nv float64) {
	const delta = 0.01
	u1, v1 := PlanckianUV(cct - delta)
	u2, v2 := PlanckianUV(cct + delta)
	du, dv := u2-u1, v2-v1
	l := math.Hypot(du, dv)
	nu, nv = -dv/l, du/l
	if nv < 0 {
		nu, nv = -nu, -nv
	}
	return
}

// ChromaticityFromTemperature offsets the locus point at t.CCT by t.Duv
// along the locus normal.
func ChromaticityFromTemperature(t Temperature) Chromaticity {
	u, v := PlanckianUV(t.CCT)
	nu, nv := locusNormal(t.CCT)
	return ChromaticityFromUV(u+t.Duv*nu, v+t.Duv*nv)
}
