package unicolour

import (
	"math"
	"strings"
	"testing"

	"github.com/kovidgoyal/unicolour/cam"
	"github.com/kovidgoyal/unicolour/colorconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	c := DefaultConfiguration
	assert.Same(t, colorconv.SRGB, c.RGB)
	assert.Equal(t, colorconv.D65.WhitePoint(), c.XYZWhite)
	assert.Equal(t, cam.DefaultConfiguration, c.CAM)
	assert.Equal(t, 100.0, c.ICtCpScalar)
	assert.Equal(t, 100.0, c.JzazbzScalar)
	y := c.RGBToXYZMatrix()[1]
	assert.InDelta(t, 0.2126, y[0], 1e-4)
	assert.InDelta(t, 0.7152, y[1], 1e-4)
	assert.InDelta(t, 0.0722, y[2], 1e-4)
}

func TestNewConfigurationValidation(t *testing.T) {
	for name, opt := range map[string]Option{
		"nil RGB":       WithRGB(nil),
		"zero white":    WithXYZWhitePoint(colorconv.WhitePoint{}),
		"ICtCp scalar":  WithICtCpScalar(0),
		"Jzazbz scalar": WithJzazbzScalar(-1),
		"CAM luminance": WithCAM(cam.Configuration{WhitePoint: colorconv.D65.WhitePoint(), Surround: cam.Dim}),
	} {
		_, err := NewConfiguration(opt)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, name)
	}
	assert.Panics(t, func() { MustNewConfiguration(WithRGB(nil)) })
}

func TestWideGamutConfiguration(t *testing.T) {
	p3, err := NewConfiguration(WithRGB(colorconv.DisplayP3))
	require.NoError(t, err)
	srgbRed := MustNew(RGB, 1, 0, 0)
	inP3 := srgbRed.ConvertToConfiguration(p3)
	assert.True(t, inP3.IsInDisplayGamut())
	r, g, b := inP3.RGB().Values()
	assert.Less(t, r, 1.0)
	assert.Greater(t, g, 0.0)
	assert.Greater(t, b, 0.0)

	p3Green, err := p3.New(RGB, 0, 1, 0, 1)
	require.NoError(t, err)
	assert.False(t, p3Green.ConvertToConfiguration(nil).IsInDisplayGamut())
}

func TestLoadConfiguration(t *testing.T) {
	c, err := LoadConfiguration(strings.NewReader(`
rgb: display-p3
white: D50
cam:
  white: [0.95047, 1, 1.08883]
  adapting_luminance: 10
  surround: dim
ictcp_scalar: 203
`))
	require.NoError(t, err)
	assert.Same(t, colorconv.DisplayP3, c.RGB)
	assert.Equal(t, colorconv.D50.WhitePoint(), c.XYZWhite)
	assert.Equal(t, colorconv.WhitePoint{X: 0.95047, Y: 1, Z: 1.08883}, c.CAM.WhitePoint)
	assert.Equal(t, 10.0, c.CAM.AdaptingLuminance)
	assert.Equal(t, cam.DefaultConfiguration.BackgroundLuminance, c.CAM.BackgroundLuminance)
	assert.Equal(t, cam.Dim, c.CAM.Surround)
	assert.Equal(t, 203.0, c.ICtCpScalar)
	assert.Equal(t, 100.0, c.JzazbzScalar)

	c, err = LoadConfiguration(strings.NewReader("rgb:\n  cicp: [9, 16, 0, 1]\n"))
	require.NoError(t, err)
	assert.Equal(t, "Rec. 2020 PQ", c.RGB.Name)

	c, err = LoadConfiguration(strings.NewReader("rgb: {cicp: [9, 1, 0, 1]}\n"))
	require.NoError(t, err)
	assert.Same(t, colorconv.Rec2020, c.RGB)

	c, err = LoadConfiguration(strings.NewReader("rgb:\n  model: display-p3\n  curve: [2.2]\n"))
	require.NoError(t, err)
	assert.Equal(t, "Display P3 (parametric)", c.RGB.Name)
	assert.Equal(t, colorconv.DisplayP3.R, c.RGB.R)
	assert.InDelta(t, math.Pow(0.5, 2.2), c.RGB.Companding.ToLinear(0.5), 1e-12)

	c, err = LoadConfiguration(strings.NewReader(""))
	require.NoError(t, err)
	assert.Same(t, colorconv.SRGB, c.RGB)
	assert.NotSame(t, DefaultConfiguration, c)

	c, err = LoadConfiguration(strings.NewReader("white: A\n"), WithJzazbzScalar(50))
	require.NoError(t, err)
	assert.Equal(t, 50.0, c.JzazbzScalar)
	assert.Equal(t, colorconv.A.WhitePoint(), c.XYZWhite)

	for _, bad := range []string{
		"rgb: cmyk\n",
		"white: D99\n",
		"white: [1, 2]\n",
		"colour: red\n",
		"cam:\n  surround: bright\n",
		"rgb:\n  cicp: [1, 13]\n",
		"rgb:\n  curve: [2.2, 1]\n",
		"ictcp_scalar: -5\n",
	} {
		_, err := LoadConfiguration(strings.NewReader(bad))
		assert.ErrorIs(t, err, ErrInvalidConfiguration, bad)
	}
}

func TestConvertToConfiguration(t *testing.T) {
	d50, err := NewConfiguration(WithXYZWhitePoint(colorconv.D50.WhitePoint()))
	require.NoError(t, err)
	for _, u := range randomColours(20, 61) {
		v := u.ConvertToConfiguration(d50)
		assert.Same(t, d50, v.Configuration())
		requireTriplet(t, u.RGB().Triplet, v.RGB().Triplet, 1e-9)
		w := v.ConvertToConfiguration(DefaultConfiguration)
		requireTriplet(t, u.XYZ().Triplet, w.XYZ().Triplet, 1e-9)
	}
	white := MustNew(RGB, 1, 1, 1).ConvertToConfiguration(d50)
	requireTriplet(t, tripletFromVec(colorconv.D50.WhitePoint().Vec3(), NoHue), white.XYZ().Triplet, 1e-9)
	u := MustNew(RGB, 1, 0, 0)
	assert.Same(t, u, u.ConvertToConfiguration(nil))
}
