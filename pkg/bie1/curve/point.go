package curve

import (
	"runtime"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PointSize is the length in bytes of a SEC1 compressed point encoding:
// a one-byte parity prefix (0x02 or 0x03) followed by the 32-byte
// big-endian x coordinate.
const PointSize = 33

// Point represents a finite point on the secp256k1 curve (a public key).
// The point at infinity is never representable as a Point; constructors
// and operations that would produce it fail instead.
type Point struct {
	pub *secp256k1.PublicKey
}

// NewPointFromBytes creates a Point from a SEC1 compressed encoding.
// The encoding must be exactly 33 bytes with a 0x02 or 0x03 prefix and an
// x coordinate that lies on the curve; anything else is rejected with
// ErrInvalidPoint. Uncompressed (65-byte) encodings are deliberately not
// accepted — the BIE1 wire format carries compressed keys only.
func NewPointFromBytes(bytes []byte) (*Point, error) {
	if len(bytes) != PointSize {
		return nil, ErrInvalidPoint
	}
	if bytes[0] != secp256k1.PubKeyFormatCompressedEven &&
		bytes[0] != secp256k1.PubKeyFormatCompressedOdd {
		return nil, ErrInvalidPoint
	}

	pub, err := secp256k1.ParsePubKey(bytes)
	if err != nil {
		return nil, ErrInvalidPoint
	}

	return &Point{pub: pub}, nil
}

// Bytes returns the 33-byte SEC1 compressed encoding of the point.
// A fresh copy is returned on every call.
func (p *Point) Bytes() []byte {
	if p == nil || p.pub == nil {
		return nil
	}
	return p.pub.SerializeCompressed()
}

// Mul multiplies this point by a scalar: result = scalar * point.
// If the product is the point at infinity the operation fails with
// ErrPointAtInfinity. With a valid scalar in [1, n-1] and a valid Point
// this cannot happen on a prime-order curve, but the result is checked
// regardless: an unchecked degenerate product would silently derive keys
// from an empty secret.
func (p *Point) Mul(scalar *Scalar) (*Point, error) {
	if p == nil || p.pub == nil {
		return nil, ErrInvalidPoint
	}
	if scalar == nil || scalar.IsZero() {
		return nil, ErrInvalidScalar
	}

	var pj, rj secp256k1.JacobianPoint
	p.pub.AsJacobian(&pj)
	secp256k1.ScalarMultNonConst(&scalar.k, &pj, &rj)
	rj.ToAffine()

	if rj.X.IsZero() && rj.Y.IsZero() {
		return nil, ErrPointAtInfinity
	}

	runtime.KeepAlive(scalar)
	return &Point{pub: secp256k1.NewPublicKey(&rj.X, &rj.Y)}, nil
}

// MulGenerator multiplies the curve generator by a scalar: result = k * G.
// This is how a public key is derived from a private scalar. The scalar is
// already validated to be in [1, n-1], so the result is always a finite
// point.
func MulGenerator(scalar *Scalar) *Point {
	if scalar == nil || scalar.IsZero() {
		return nil
	}

	var rj secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&scalar.k, &rj)
	rj.ToAffine()

	runtime.KeepAlive(scalar)
	return &Point{pub: secp256k1.NewPublicKey(&rj.X, &rj.Y)}
}
