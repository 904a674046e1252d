package geometry

// Scalar is the component type shared by tuples, points and vectors.
type Scalar float32

const (
	// Epsilon is the difference between 1 and the next float32.
	Epsilon = Scalar(1.19209e-07)

	// CompareEpsilon is the tolerance used when comparing the results of
	// chained float32 arithmetic, e.g. a normalized vector's magnitude.
	CompareEpsilon Scalar = 1e-4
)
