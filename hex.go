package unicolour

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/image/colornames"
)

// FromHex parses RRGGBB or RRGGBBAA, case insensitive with an optional
// leading #. Six digits mean fully opaque.
func (config *Configuration) FromHex(s string) (*Unicolour, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return nil, fmt.Errorf("%w: %q must have 6 or 8 hex digits", ErrInvalidHex, s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}
	alpha := uint8(255)
	if len(b) == 4 {
		alpha = b[3]
	}
	return config.FromRGB255(b[0], b[1], b[2], alpha)
}

// FromHex parses a hex colour under DefaultConfiguration.
func FromHex(s string) (*Unicolour, error) { return DefaultConfiguration.FromHex(s) }

func (config *Configuration) FromRGB255(r, g, b, a uint8) (*Unicolour, error) {
	return config.New(RGB, float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255)
}

func FromRGB255(r, g, b uint8) (*Unicolour, error) {
	return DefaultConfiguration.FromRGB255(r, g, b, 255)
}

// FromName looks up an SVG 1.1 colour keyword such as "darkslateblue".
func (config *Configuration) FromName(name string) (*Unicolour, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColourName, name)
	}
	return config.FromRGB255(c.R, c.G, c.B, c.A)
}

func FromName(name string) (*Unicolour, error) { return DefaultConfiguration.FromName(name) }

// FromColor converts any image/color value, un-premultiplying its alpha.
func (config *Configuration) FromColor(c color.Color) (*Unicolour, error) {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	const m = 0xffff
	return config.New(RGB, float64(n.R)/m, float64(n.G)/m, float64(n.B)/m, float64(n.A)/m)
}

func FromColor(c color.Color) (*Unicolour, error) { return DefaultConfiguration.FromColor(c) }

func to255(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return safecast.MustRound[uint8](clamp(x, 0, 1) * 255)
}

// RGB255 returns the constrained RGB channels scaled to 0-255. NaN channels
// become 0.
func (u *Unicolour) RGB255() (r, g, b uint8) {
	c := u.rep(RGB).Constrained()
	return to255(c.First), to255(c.Second), to255(c.Third)
}

// Hex is #RRGGBB of the constrained RGB or "-" when the colour is NaN.
func (u *Unicolour) Hex() string {
	if u.rep(RGB).UseAsNaN() {
		return "-"
	}
	r, g, b := u.RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// HexWithAlpha is #RRGGBBAA, or "-" when the colour is NaN.
func (u *Unicolour) HexWithAlpha() string {
	h := u.Hex()
	if h == "-" {
		return h
	}
	return h + u.alpha.Hex()
}

// NRGBA implements the conversion to image/color.
func (u *Unicolour) NRGBA() color.NRGBA {
	r, g, b := u.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: u.alpha.A255()}
}

// RGBA makes Unicolour usable as a color.Color.
func (u *Unicolour) RGBA() (r, g, b, a uint32) {
	return u.NRGBA().RGBA()
}

var _ color.Color = (*Unicolour)(nil)
