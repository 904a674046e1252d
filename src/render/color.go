package render

import "prism/src/physics/geometry"

// Color is a red, green, blue triple. Channels are not limited to [0, 1];
// clamping only happens when a canvas is serialized.
type Color struct {
	t geometry.Tuple
}

var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
)

func NewColor(r, g, b geometry.Scalar) Color {
	return Color{t: geometry.NewTuple(r, g, b)}
}

func ColorFromTuple(t geometry.Tuple) Color {
	return Color{t: t}
}

func ColorFromArray(a [3]geometry.Scalar) Color {
	return Color{t: geometry.TupleFromArray(a)}
}

func (c Color) Red() geometry.Scalar   { return c.t.X }
func (c Color) Green() geometry.Scalar { return c.t.Y }
func (c Color) Blue() geometry.Scalar  { return c.t.Z }

func (c Color) Tuple() geometry.Tuple {
	return c.t
}

func (c Color) Add(b Color) Color {
	return Color{t: c.t.Add(b.t)}
}

func (c Color) Sub(b Color) Color {
	return Color{t: c.t.Sub(b.t)}
}

func (c Color) Mul(s geometry.Scalar) Color {
	return Color{t: c.t.Mul(s)}
}

// Hadamard blends two colors by multiplying them channel by channel.
func (c Color) Hadamard(b Color) Color {
	return Color{t: c.t.Hadamard(b.t)}
}

func (c Color) Equals(b Color) bool {
	return c.t.Equals(b.t)
}

func (c Color) String() string {
	return c.t.String()
}
