package geometry

import "math"

func abs(s Scalar) Scalar {
	return Scalar(math.Abs(float64(s)))
}

// ApproxEqual reports whether a and b differ by less than eps.
func ApproxEqual(a, b, eps Scalar) bool {
	return abs(a-b) < eps
}

// IsPointInsidePlanes reports whether point lies behind every plane. Each
// plane is given by its normal and its signed distance from the origin.
func IsPointInsidePlanes(normals []Vector, distances []Scalar, point Point, margin Scalar) bool {
	p := VectorFromTuple(point.Tuple())
	for i := 0; i < len(normals) && i < len(distances); i++ {
		dist := (normals[i].Dot(p) + distances[i]) - margin
		if dist > Scalar(0.) {
			return false
		}
	}
	return true
}

// AreVerticesBehindPlane reports whether every vertex lies behind the plane
// described by normal and distance.
func AreVerticesBehindPlane(normal Vector, distance Scalar, vertices []Point, margin Scalar) bool {
	for i := 0; i < len(vertices); i++ {
		v := VectorFromTuple(vertices[i].Tuple())
		dist := (normal.Dot(v) + distance) - margin
		if dist > Scalar(0.) {
			return false
		}
	}
	return true
}
