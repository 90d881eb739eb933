package bie1

import "errors"

var (
	// ErrInvalidSharedSecret is returned when ECDH produces a degenerate
	// shared secret (the point at infinity). With valid keys this is
	// astronomically unlikely, but it is checked regardless.
	ErrInvalidSharedSecret = errors.New("bie1: degenerate shared secret")

	// ErrInvalidPublicKey is returned when the sender public key carried in
	// a packet does not decode to a point on the curve.
	ErrInvalidPublicKey = errors.New("bie1: invalid sender public key")

	// ErrMalformedPacket is returned when a packet is too short to contain
	// the fixed header and tag, or its protocol flag is not "BIE1".
	ErrMalformedPacket = errors.New("bie1: malformed packet")

	// ErrInvalidCiphertextLength is returned when the ciphertext region of
	// a packet is empty or not a multiple of the AES block size.
	ErrInvalidCiphertextLength = errors.New("bie1: invalid ciphertext length")

	// ErrAuthentication is returned when the packet tag does not match the
	// recomputed HMAC. Decryption is never attempted for such packets.
	ErrAuthentication = errors.New("bie1: authentication failed")

	// ErrPadding is returned when decrypted data does not end in valid
	// PKCS#7 padding. Because authentication is verified first, seeing this
	// error indicates a disagreement between the encrypting and decrypting
	// implementations rather than tampering.
	ErrPadding = errors.New("bie1: invalid PKCS#7 padding")
)
