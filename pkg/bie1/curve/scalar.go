package curve

import (
	"runtime"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarSize is the length in bytes of a serialized scalar.
const ScalarSize = 32

// Scalar represents a private scalar value reduced modulo the secp256k1
// group order. A valid Scalar is always in the range [1, n-1].
//
// Scalars are created with NewScalarFromBytes or RandomScalar, both of which
// validate the range. The zero value of Scalar is not usable.
//
// Concurrency Safety:
//   - Scalar methods are safe to call concurrently from multiple goroutines.
//   - Calling Free() while another goroutine is using the Scalar is unsafe.
//     The caller is responsible for ensuring all operations on a Scalar
//     complete before calling Free().
type Scalar struct {
	k secp256k1.ModNScalar
}

// zeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// NewScalarFromBytes creates a Scalar from a 32-byte big-endian encoding.
// The value must be in the range [1, n-1] where n is the secp256k1 group
// order; out-of-range values and inputs of any other length are rejected
// with ErrInvalidScalar. The input bytes are not retained.
func NewScalarFromBytes(bytes []byte) (*Scalar, error) {
	if len(bytes) != ScalarSize {
		return nil, ErrInvalidScalar
	}

	s := &Scalar{}
	overflow := s.k.SetByteSlice(bytes)
	if overflow || s.k.IsZero() {
		s.k.Zero()
		return nil, ErrInvalidScalar
	}

	// Safety net: zeroize the secret if the Scalar becomes unreachable
	// without an explicit Free.
	runtime.SetFinalizer(s, (*Scalar).Free)
	return s, nil
}

// RandomScalar generates a cryptographically random scalar in [1, n-1].
// The BIE1 protocol relies on callers using a freshly generated sender
// scalar for every message; this is the supported way to obtain one.
func RandomScalar() (*Scalar, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}

	s := &Scalar{k: priv.Key}
	priv.Zero()

	runtime.SetFinalizer(s, (*Scalar).Free)
	return s, nil
}

// Bytes returns the 32-byte big-endian encoding of the scalar.
// A fresh copy is returned on every call; the caller owns it and should
// zeroize it when done if it is secret material.
func (s *Scalar) Bytes() []byte {
	if s == nil {
		return nil
	}

	raw := s.k.Bytes()
	out := make([]byte, ScalarSize)
	copy(out, raw[:])
	zeroizeBytes(raw[:])

	runtime.KeepAlive(s)
	return out
}

// IsZero reports whether the scalar has been zeroized (or was never set).
func (s *Scalar) IsZero() bool {
	return s == nil || s.k.IsZero()
}

// Free zeroizes the scalar. The Scalar must not be used afterwards.
func (s *Scalar) Free() {
	if s == nil {
		return
	}
	s.k.Zero()
	runtime.SetFinalizer(s, nil)
}
