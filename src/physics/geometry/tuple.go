package geometry

import (
	"fmt"
	"strconv"
)

// Tuple is the raw three-component value underlying Point, Vector and the
// render package's Color. Every operation returns a new Tuple.
type Tuple struct {
	X, Y, Z Scalar
}

func NewTuple(x, y, z Scalar) Tuple {
	return Tuple{X: x, Y: y, Z: z}
}

func TupleFromArray(a [3]Scalar) Tuple {
	return Tuple{X: a[0], Y: a[1], Z: a[2]}
}

func (t Tuple) Array() [3]Scalar {
	return [3]Scalar{t.X, t.Y, t.Z}
}

// Equals compares componentwise with ==; no tolerance is applied.
func (t Tuple) Equals(b Tuple) bool {
	return (t.X == b.X) && (t.Y == b.Y) && (t.Z == b.Z)
}

// ApproxEquals compares componentwise within eps.
func (t Tuple) ApproxEquals(b Tuple, eps Scalar) bool {
	return ApproxEqual(t.X, b.X, eps) &&
		ApproxEqual(t.Y, b.Y, eps) &&
		ApproxEqual(t.Z, b.Z, eps)
}

func (t Tuple) Add(b Tuple) Tuple {
	return Tuple{
		X: t.X + b.X,
		Y: t.Y + b.Y,
		Z: t.Z + b.Z,
	}
}

func (t Tuple) Sub(b Tuple) Tuple {
	return Tuple{
		X: t.X - b.X,
		Y: t.Y - b.Y,
		Z: t.Z - b.Z,
	}
}

func (t Tuple) Neg() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z}
}

func (t Tuple) Mul(s Scalar) Tuple {
	return Tuple{X: t.X * s, Y: t.Y * s, Z: t.Z * s}
}

func (t Tuple) Div(s Scalar) Tuple {
	return Tuple{X: t.X / s, Y: t.Y / s, Z: t.Z / s}
}

// Hadamard multiplies componentwise.
func (t Tuple) Hadamard(b Tuple) Tuple {
	return Tuple{X: t.X * b.X, Y: t.Y * b.Y, Z: t.Z * b.Z}
}

// String formats the tuple as "(x, y, z)".
func (t Tuple) String() string {
	return fmt.Sprintf("(%s, %s, %s)", formatScalar(t.X), formatScalar(t.Y), formatScalar(t.Z))
}

func formatScalar(s Scalar) string {
	return strconv.FormatFloat(float64(s), 'g', -1, 32)
}
