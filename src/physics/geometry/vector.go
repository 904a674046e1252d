package geometry

import (
	"fmt"
	"math"
)

// Vector is a displacement or direction.
type Vector struct {
	t Tuple
}

func NewVector(x, y, z Scalar) Vector {
	return Vector{t: NewTuple(x, y, z)}
}

func VectorFromTuple(t Tuple) Vector {
	return Vector{t: t}
}

func VectorFromArray(a [3]Scalar) Vector {
	return Vector{t: TupleFromArray(a)}
}

func (v Vector) X() Scalar { return v.t.X }
func (v Vector) Y() Scalar { return v.t.Y }
func (v Vector) Z() Scalar { return v.t.Z }

func (v Vector) Tuple() Tuple {
	return v.t
}

func (v Vector) Add(b Vector) Vector {
	return Vector{t: v.t.Add(b.t)}
}

func (v Vector) Sub(b Vector) Vector {
	return Vector{t: v.t.Sub(b.t)}
}

func (v Vector) Neg() Vector {
	return Vector{t: v.t.Neg()}
}

func (v Vector) Mul(s Scalar) Vector {
	return Vector{t: v.t.Mul(s)}
}

func (v Vector) Div(s Scalar) Vector {
	return Vector{t: v.t.Div(s)}
}

// norm is the Euclidean norm computed in float64, so squaring a finite
// float32 component can neither overflow nor underflow.
func (v Vector) norm() float64 {
	x, y, z := float64(v.t.X), float64(v.t.Y), float64(v.t.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Magnitude returns the Euclidean norm. It is +Inf only when the norm is
// larger than the biggest float32, i.e. components close to MaxFloat32.
func (v Vector) Magnitude() Scalar {
	return Scalar(v.norm())
}

// Normalize scales v to unit length. A vector with a magnitude of exactly
// zero yields ErrDegenerateVector instead of NaN components.
func (v Vector) Normalize() (Vector, error) {
	m := v.norm()
	if m == 0 {
		return Vector{}, fmt.Errorf("normalize %s: %w", v, ErrDegenerateVector)
	}
	return Vector{t: Tuple{
		X: Scalar(float64(v.t.X) / m),
		Y: Scalar(float64(v.t.Y) / m),
		Z: Scalar(float64(v.t.Z) / m),
	}}, nil
}

func (v Vector) Dot(b Vector) Scalar {
	return v.t.X*b.t.X +
		v.t.Y*b.t.Y +
		v.t.Z*b.t.Z
}

func (v Vector) Cross(b Vector) Vector {
	return Vector{t: Tuple{
		X: v.t.Y*b.t.Z - v.t.Z*b.t.Y, // y * b.z - z * b.y
		Y: v.t.Z*b.t.X - v.t.X*b.t.Z, // z * b.x - x * b.z
		Z: v.t.X*b.t.Y - v.t.Y*b.t.X, // x * b.y - y * b.x
	}}
}

func (v Vector) Equals(b Vector) bool {
	return v.t.Equals(b.t)
}

func (v Vector) String() string {
	return v.t.String()
}
