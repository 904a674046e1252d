package geometry

import "errors"

var (
	ErrIndexOutOfRange       = errors.New("geometry: index out of range")
	ErrParse                 = errors.New("geometry: parse error")
	ErrInconsistentRowLength = errors.New("geometry: inconsistent row length")

	// ErrDegenerateVector is returned when normalizing a vector whose
	// magnitude is exactly zero.
	ErrDegenerateVector = errors.New("geometry: degenerate vector")
)
