package geometry

// Point is a position in space. Points are moved by vectors; two points are
// never added together.
type Point struct {
	t Tuple
}

func NewPoint(x, y, z Scalar) Point {
	return Point{t: NewTuple(x, y, z)}
}

func PointFromTuple(t Tuple) Point {
	return Point{t: t}
}

func PointFromArray(a [3]Scalar) Point {
	return Point{t: TupleFromArray(a)}
}

func (p Point) X() Scalar { return p.t.X }
func (p Point) Y() Scalar { return p.t.Y }
func (p Point) Z() Scalar { return p.t.Z }

func (p Point) Tuple() Tuple {
	return p.t
}

func (p Point) Coordinates() (x, y, z Scalar) {
	return p.t.X, p.t.Y, p.t.Z
}

func (p Point) AddVector(v Vector) Point {
	return Point{t: p.t.Add(v.t)}
}

func (p Point) SubVector(v Vector) Point {
	return Point{t: p.t.Sub(v.t)}
}

func (p Point) Equals(b Point) bool {
	return p.t.Equals(b.t)
}

func (p Point) String() string {
	return p.t.String()
}
