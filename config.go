package unicolour

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/kovidgoyal/unicolour/cam"
	"github.com/kovidgoyal/unicolour/colorconv"
	"gopkg.in/yaml.v3"
)

// Configuration is the immutable environment colours are interpreted in:
// the RGB model, the XYZ reference white, the CAM viewing conditions and
// the luminance scalars of ICtCp and Jzazbz. Configurations are compared by
// identity, two colours can be mixed or compared only when they share the
// same *Configuration.
type Configuration struct {
	RGB          *colorconv.RGBModel
	XYZWhite     colorconv.WhitePoint
	CAM          cam.Configuration
	ICtCpScalar  float64
	JzazbzScalar float64

	rgbToXYZ, xyzToRGB colorconv.Mat3
	cam02, cam16       *cam.ViewingConditions
}

// Option sets an optional parameter for NewConfiguration.
type Option func(*Configuration)

// WithRGB selects the RGB model, sRGB by default.
func WithRGB(m *colorconv.RGBModel) Option {
	return func(c *Configuration) {
		c.RGB = m
	}
}

// WithXYZWhitePoint sets the reference white of XYZ and every space derived
// from it, D65 by default.
func WithXYZWhitePoint(w colorconv.WhitePoint) Option {
	return func(c *Configuration) {
		c.XYZWhite = w
	}
}

// WithCAM sets the viewing conditions used by CAM02 and CAM16.
func WithCAM(cc cam.Configuration) Option {
	return func(c *Configuration) {
		c.CAM = cc
	}
}

// WithICtCpScalar sets the luminance in cd/m² of an XYZ Y of 1 for ICtCp.
func WithICtCpScalar(s float64) Option {
	return func(c *Configuration) {
		c.ICtCpScalar = s
	}
}

// WithJzazbzScalar sets the luminance in cd/m² of an XYZ Y of 1 for Jzazbz.
func WithJzazbzScalar(s float64) Option {
	return func(c *Configuration) {
		c.JzazbzScalar = s
	}
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }

func (c *Configuration) validate() error {
	switch {
	case c.RGB == nil || c.RGB.Companding == nil:
		return fmt.Errorf("%w: no RGB model", ErrInvalidConfiguration)
	case c.XYZWhite.Vec3().IsNaN() || !positive(c.XYZWhite.Y):
		return fmt.Errorf("%w: XYZ white point %s", ErrInvalidConfiguration, c.XYZWhite)
	case c.CAM.WhitePoint.Vec3().IsNaN() || !positive(c.CAM.WhitePoint.Y):
		return fmt.Errorf("%w: CAM white point %s", ErrInvalidConfiguration, c.CAM.WhitePoint)
	case !positive(c.CAM.AdaptingLuminance) || !positive(c.CAM.BackgroundLuminance):
		return fmt.Errorf("%w: CAM luminances must be positive", ErrInvalidConfiguration)
	case !positive(c.ICtCpScalar):
		return fmt.Errorf("%w: ICtCp scalar %v", ErrInvalidConfiguration, c.ICtCpScalar)
	case !positive(c.JzazbzScalar):
		return fmt.Errorf("%w: Jzazbz scalar %v", ErrInvalidConfiguration, c.JzazbzScalar)
	}
	return nil
}

// NewConfiguration builds a configuration from the defaults overridden by
// opts, precomputing the RGB matrices and both sets of CAM viewing
// conditions.
func NewConfiguration(opts ...Option) (*Configuration, error) {
	c := &Configuration{
		RGB:          colorconv.SRGB,
		XYZWhite:     colorconv.D65.WhitePoint(),
		CAM:          cam.DefaultConfiguration,
		ICtCpScalar:  100,
		JzazbzScalar: 100,
	}
	for _, o := range opts {
		o(c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.rgbToXYZ = c.RGB.LinearToXYZMatrix(c.XYZWhite)
	c.xyzToRGB = c.rgbToXYZ.Inverse()
	c.cam02 = cam.NewViewingConditions(cam.CAM02, c.CAM)
	c.cam16 = cam.NewViewingConditions(cam.CAM16, c.CAM)
	return c, nil
}

// MustNewConfiguration is like NewConfiguration but panics on error.
func MustNewConfiguration(opts ...Option) *Configuration {
	c, err := NewConfiguration(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultConfiguration is sRGB with a D65 XYZ white, CAM conditions of a
// standard display and scalars of 100.
var DefaultConfiguration = MustNewConfiguration()

// RGBToXYZMatrix is the linear RGB to XYZ matrix, adapted to XYZWhite.
func (c *Configuration) RGBToXYZMatrix() colorconv.Mat3 { return c.rgbToXYZ }

func (c *Configuration) String() string {
	return fmt.Sprintf("Configuration{RGB: %s, XYZ: %s, %s, ICtCp: %v, Jzazbz: %v}",
		c.RGB, c.XYZWhite, c.CAM, c.ICtCpScalar, c.JzazbzScalar)
}

// whiteSpec is either an illuminant name or an explicit [X, Y, Z] triple.
type whiteSpec struct {
	colorconv.WhitePoint
}

func (w *whiteSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		ill, err := colorconv.IlluminantFromName(name)
		if err != nil {
			return err
		}
		w.WhitePoint = ill.WhitePoint()
		return nil
	}
	var v []float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	if len(v) != 3 {
		return fmt.Errorf("line %d: a white point needs 3 components not %d", node.Line, len(v))
	}
	w.WhitePoint = colorconv.WhitePoint{X: v[0], Y: v[1], Z: v[2]}
	return nil
}

// rgbSpec is either a model name or a mapping holding CICP code points or a
// base model with a parametric transfer curve replacing its own.
type rgbSpec struct {
	model *colorconv.RGBModel
}

func (r *rgbSpec) UnmarshalYAML(node *yaml.Node) (err error) {
	if node.Kind == yaml.ScalarNode {
		var name string
		if err = node.Decode(&name); err != nil {
			return err
		}
		r.model, err = colorconv.RGBModelFromName(name)
		return
	}
	var m struct {
		CICP  []uint8   `yaml:"cicp"`
		Model string    `yaml:"model"`
		Curve []float64 `yaml:"curve"`
	}
	if err = node.Decode(&m); err != nil {
		return err
	}
	if m.CICP != nil {
		if len(m.CICP) != 4 {
			return fmt.Errorf("line %d: cicp needs 4 code points not %d", node.Line, len(m.CICP))
		}
		r.model, err = colorconv.CICP{
			ColorPrimaries: m.CICP[0], TransferCharacteristics: m.CICP[1], MatrixCoefficients: m.CICP[2], VideoFullRange: m.CICP[3],
		}.RGBModel()
		return
	}
	base := colorconv.SRGB
	if m.Model != "" {
		if base, err = colorconv.RGBModelFromName(m.Model); err != nil {
			return err
		}
	}
	if m.Curve == nil {
		r.model = base
		return nil
	}
	curve, err := colorconv.NewParametricCurve(m.Curve...)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	cm := *base
	cm.Name = base.Name + " (parametric)"
	cm.Companding = curve
	r.model = &cm
	return nil
}

type camSpec struct {
	White               *whiteSpec `yaml:"white"`
	AdaptingLuminance   *float64   `yaml:"adapting_luminance"`
	BackgroundLuminance *float64   `yaml:"background_luminance"`
	Surround            string     `yaml:"surround"`
}

type configSpec struct {
	RGB          *rgbSpec   `yaml:"rgb"`
	White        *whiteSpec `yaml:"white"`
	CAM          *camSpec   `yaml:"cam"`
	ICtCpScalar  *float64   `yaml:"ictcp_scalar"`
	JzazbzScalar *float64   `yaml:"jzazbz_scalar"`
}

func (s *configSpec) options() ([]Option, error) {
	var opts []Option
	if s.RGB != nil {
		opts = append(opts, WithRGB(s.RGB.model))
	}
	if s.White != nil {
		opts = append(opts, WithXYZWhitePoint(s.White.WhitePoint))
	}
	if s.CAM != nil {
		cc := cam.DefaultConfiguration
		if s.CAM.White != nil {
			cc.WhitePoint = s.CAM.White.WhitePoint
		}
		if s.CAM.AdaptingLuminance != nil {
			cc.AdaptingLuminance = *s.CAM.AdaptingLuminance
		}
		if s.CAM.BackgroundLuminance != nil {
			cc.BackgroundLuminance = *s.CAM.BackgroundLuminance
		}
		if s.CAM.Surround != "" {
			sr, err := cam.SurroundFromName(s.CAM.Surround)
			if err != nil {
				return nil, err
			}
			cc.Surround = sr
		}
		opts = append(opts, WithCAM(cc))
	}
	if s.ICtCpScalar != nil {
		opts = append(opts, WithICtCpScalar(*s.ICtCpScalar))
	}
	if s.JzazbzScalar != nil {
		opts = append(opts, WithJzazbzScalar(*s.JzazbzScalar))
	}
	return opts, nil
}

// LoadConfiguration reads a YAML document such as:
//
//	rgb: display-p3          # or {cicp: [12, 13, 0, 1]} or {model: srgb, curve: [2.2]}
//	white: D50               # or [0.9642, 1, 0.8251]
//	cam:
//	  white: D65
//	  adapting_luminance: 4.07
//	  background_luminance: 20
//	  surround: dim
//	ictcp_scalar: 100
//	jzazbz_scalar: 100
//
// Omitted keys keep their defaults. Extra options are applied after the
// document.
func LoadConfiguration(r io.Reader, opts ...Option) (*Configuration, error) {
	var spec configSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	fopts, err := spec.options()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return NewConfiguration(append(fopts, opts...)...)
}
