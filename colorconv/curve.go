package colorconv

import (
	"fmt"
	"math"
)

// ParametricFunction enumerates the ICC parametric transfer functions.
type ParametricFunction uint16

const (
	SimpleGammaFunction     ParametricFunction = iota // Y = X^g
	ConditionalZeroFunction                           // Y = (aX+b)^g if X ≥ -b/a else 0
	ConditionalCFunction                              // Y = (aX+b)^g + c if X ≥ -b/a else c
	SplitFunction                                     // Y = (aX+b)^g if X ≥ d else cX
	ComplexFunction                                   // Y = (aX+b)^g + e if X ≥ d else cX + f
)

var parametricParamCount = [...]int{1, 3, 4, 5, 7}

// ParametricCurve is a transfer function described by ICC parametric curve
// parameters. Decoding maps encoded values to linear light. Negative inputs
// are mirrored about zero.
type ParametricCurve struct {
	Function            ParametricFunction
	G, A, B, C, D, E, F float64

	threshold, invG, invA, invC float64
}

var _ Companding = (*ParametricCurve)(nil)

// NewParametricCurve builds a curve from the parameters in ICC order
// (g, a, b, c, d, e, f). The function type is implied by how many are given.
func NewParametricCurve(params ...float64) (*ParametricCurve, error) {
	c := &ParametricCurve{Function: ParametricFunction(len(parametricParamCount))}
	for i, n := range parametricParamCount {
		if n == len(params) {
			c.Function = ParametricFunction(i)
		}
	}
	if int(c.Function) >= len(parametricParamCount) {
		return nil, fmt.Errorf("a parametric curve takes 1, 3, 4, 5 or 7 parameters not %d", len(params))
	}
	fields := []*float64{&c.G, &c.A, &c.B, &c.C, &c.D, &c.E, &c.F}
	for i, p := range params {
		*fields[i] = p
	}
	if err := c.prepare(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ParametricCurve) prepare() error {
	if c.G == 0 {
		return fmt.Errorf("parametric curve has zero gamma")
	}
	c.invG = 1 / c.G
	switch c.Function {
	case SimpleGammaFunction:
		return nil
	case ConditionalZeroFunction, ConditionalCFunction:
		if c.A == 0 {
			return fmt.Errorf("parametric curve has zero a parameter")
		}
		c.invA, c.threshold = 1/c.A, -c.B/c.A
	case SplitFunction, ComplexFunction:
		if c.A == 0 || c.C == 0 {
			return fmt.Errorf("parametric curve has zero parameter value: a=%f or c=%f", c.A, c.C)
		}
		c.invA, c.invC = 1/c.A, 1/c.C
		c.threshold = math.Pow(c.A*c.D+c.B, c.G)
		if c.Function == ComplexFunction {
			c.threshold += c.E
		}
	default:
		return fmt.Errorf("unknown parametric function type: %d", c.Function)
	}
	return nil
}

func (c *ParametricCurve) decode(x float64) float64 {
	switch c.Function {
	case SimpleGammaFunction:
		return math.Pow(x, c.G)
	case ConditionalZeroFunction:
		if e := c.A*x + c.B; x >= c.threshold && e > 0 {
			return math.Pow(e, c.G)
		}
		return 0
	case ConditionalCFunction:
		if x >= c.threshold {
			if e := c.A*x + c.B; e > 0 {
				return math.Pow(e, c.G) + c.C
			}
		}
		return c.C
	case SplitFunction:
		if x >= c.D {
			if e := c.A*x + c.B; e > 0 {
				return math.Pow(e, c.G)
			}
			return 0
		}
		return c.C * x
	default:
		if x >= c.D {
			if e := c.A*x + c.B; e > 0 {
				return math.Pow(e, c.G) + c.E
			}
			return c.E
		}
		return c.C*x + c.F
	}
}

func (c *ParametricCurve) encode(y float64) float64 {
	switch c.Function {
	case SimpleGammaFunction:
		return math.Pow(y, c.invG)
	case ConditionalZeroFunction:
		return max(0, (math.Pow(y, c.invG)-c.B)*c.invA)
	case ConditionalCFunction:
		if e := y - c.C; e > 0 {
			return (math.Pow(e, c.invG) - c.B) * c.invA
		}
		return max(0, c.threshold)
	case SplitFunction:
		if y < c.threshold {
			return y * c.invC
		}
		return (math.Pow(y, c.invG) - c.B) * c.invA
	default:
		if y < c.threshold {
			return (y - c.F) * c.invC
		}
		if e := y - c.E; e > 0 {
			return (math.Pow(e, c.invG) - c.B) * c.invA
		}
		return 0
	}
}

func (c *ParametricCurve) ToLinear(v float64) float64 {
	return math.Copysign(c.decode(math.Abs(v)), v)
}

func (c *ParametricCurve) FromLinear(v float64) float64 {
	return math.Copysign(c.encode(math.Abs(v)), v)
}

func (c *ParametricCurve) String() string {
	return fmt.Sprintf("ParametricCurve{type: %d g: %v a: %v b: %v c: %v d: %v e: %v f: %v}",
		c.Function, c.G, c.A, c.B, c.C, c.D, c.E, c.F)
}
