package colorconv

import (
	"fmt"
	"math"
)

var _ = fmt.Print

type Vec3 [3]float64
type Mat3 [3][3]float64

var Identity = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func nanMat3() Mat3 {
	n := math.NaN()
	return Mat3{{n, n, n}, {n, n, n}, {n, n, n}}
}

// Diagonal returns the matrix with a, b, c along the diagonal.
func Diagonal(a, b, c float64) Mat3 {
	return Mat3{
		{a, 0, 0},
		{0, b, 0},
		{0, 0, c},
	}
}

func (m Mat3) Multiply(o Mat3) (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			ans[i][j] = sum
		}
	}
	return
}

// Apply multiplies the matrix with the column vector v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse computes the inverse from the adjugate. A singular matrix gives
// a matrix full of NaN rather than an error, so callers can keep
// propagating numbers.
func (m Mat3) Inverse() (ans Mat3) {
	det := m.Determinant()
	if det == 0 {
		return nanMat3()
	}
	adj := Mat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
	return adj.Scale(1 / det)
}

func (m Mat3) Scale(s float64) Mat3 {
	return m.Select(func(x float64) float64 { return x * s })
}

// Select applies f to every element.
func (m Mat3) Select(f func(float64) float64) (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = f(m[i][j])
		}
	}
	return
}

func (m Mat3) Equals(o Mat3, threshold float64) bool {
	for i := range 3 {
		for j := range 3 {
			if math.Abs(m[i][j]-o[i][j]) > threshold {
				return false
			}
		}
	}
	return true
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%v %v %v]", m[0], m[1], m[2])
}

func (v Vec3) Select(f func(float64) float64) Vec3 {
	return Vec3{f(v[0]), f(v[1]), f(v[2])}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) IsNaN() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}
