package curve

import "errors"

var (
	// ErrInvalidScalar is returned when scalar bytes are not a 32-byte
	// big-endian value in the range [1, n-1].
	ErrInvalidScalar = errors.New("curve: scalar not in [1, n-1]")

	// ErrInvalidPoint is returned when point bytes are not a valid SEC1
	// compressed encoding of a point on the curve.
	ErrInvalidPoint = errors.New("curve: invalid compressed point")

	// ErrPointAtInfinity is returned when an operation produces the point
	// at infinity, which is not valid as a key or shared secret.
	ErrPointAtInfinity = errors.New("curve: point at infinity")
)
