package unicolour

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// Alpha is opacity, nominally in [0, 1]. The raw value is kept as given so
// that extrapolation survives, reads through Constrained are clamped and
// treat NaN as fully transparent.
type Alpha struct {
	A float64
}

func (a Alpha) Constrained() float64 {
	if math.IsNaN(a.A) {
		return 0
	}
	return max(0, min(a.A, 1))
}

func (a Alpha) A255() uint8 {
	return safecast.MustRound[uint8](a.Constrained() * 255)
}

func (a Alpha) Hex() string { return fmt.Sprintf("%02X", a.A255()) }

func (a Alpha) String() string { return fmt.Sprintf("%.4g", a.A) }
