// Package curve provides the secp256k1 scalar and point operations used by
// the BIE1 encryption scheme.
//
// This package defines a small, stable API over the underlying curve
// arithmetic library: scalar values (Scalar) in the range [1, n-1] and
// finite curve points (Point) in SEC1 compressed encoding. It intentionally
// exposes only what ECDH-based encryption needs — scalar validation, point
// parsing, variable-base and fixed-base multiplication, and compressed
// serialization — so the protocol engine never touches raw field elements.
//
// # Key Types
//
//   - Scalar: a private key; a 256-bit integer in [1, n-1]
//   - Point: a public key; a finite point on secp256k1
//
// # Memory Management
//
// Scalars hold secret material and should be explicitly freed:
//
//	priv, err := curve.RandomScalar()
//	if err != nil {
//	    return err
//	}
//	defer priv.Free()
//
// A finalizer is set as a safety net, but explicit cleanup is recommended
// so secrets do not linger until the next garbage collection.
//
// # Common Operations
//
//	// Derive the public key: P = k * G
//	pub := curve.MulGenerator(priv)
//
//	// ECDH: S = k * P
//	shared, err := pub.Mul(priv)
//
// The curve arithmetic itself is provided by
// github.com/decred/dcrd/dcrec/secp256k1/v4.
package curve
