package bie1

import (
	"errors"

	"github.com/paywire/bie1-go/pkg/bie1/curve"
)

// Scheme is a BIE1 deployment configuration. The only variable is the tag
// width, which must match on both sides of a deployment. A Scheme holds no
// per-call state: Encrypt and Decrypt are pure functions of their inputs and
// are safe for concurrent use.
type Scheme struct {
	tagSize int
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithTruncatedTag selects the 16-byte truncated tag instead of the full
// 32-byte HMAC-SHA256 output. Packets produced under one width do not verify
// under the other.
func WithTruncatedTag() Option {
	return func(s *Scheme) {
		s.tagSize = TruncatedTagSize
	}
}

// New creates a Scheme. Without options the normative full 32-byte tag is
// used.
func New(opts ...Option) *Scheme {
	s := &Scheme{tagSize: TagSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TagSize returns the configured tag width in bytes.
func (s *Scheme) TagSize() int {
	return s.tagSize
}

// Encrypt encrypts plaintext from the sender's private scalar to the
// recipient's public point and returns the serialized packet.
//
// The operation is deterministic: the same inputs always produce the same
// packet. Forward secrecy and message unlinkability therefore depend on the
// caller generating a fresh sender scalar per message (curve.RandomScalar).
// Inputs are never modified.
func (s *Scheme) Encrypt(sender *curve.Scalar, recipient *curve.Point, plaintext []byte) ([]byte, error) {
	if sender == nil || sender.IsZero() {
		return nil, errors.New("bie1: nil sender key")
	}
	if recipient == nil {
		return nil, errors.New("bie1: nil recipient key")
	}

	shared, err := recipient.Mul(sender)
	if err != nil {
		return nil, ErrInvalidSharedSecret
	}

	secret := shared.Bytes()
	keys, err := deriveKeys(secret)
	zeroizeBytes(secret)
	if err != nil {
		return nil, err
	}
	defer keys.free()

	ciphertext, err := cbcEncrypt(&keys.cipherKey, &keys.iv, plaintext)
	if err != nil {
		return nil, err
	}

	senderPubKey := curve.MulGenerator(sender).Bytes()
	tag := computeTag(&keys.macKey, senderPubKey, ciphertext, s.tagSize)

	p := Packet{
		SenderPubKey: senderPubKey,
		Ciphertext:   ciphertext,
		Tag:          tag,
	}
	return p.Serialize(), nil
}

// Decrypt authenticates and decrypts a packet with the recipient's private
// scalar, returning the plaintext.
//
// The tag is verified before any block is decrypted; a packet that fails
// verification is rejected with ErrAuthentication and no plaintext-dependent
// work happens. Ill-framed packets fail earlier with ErrMalformedPacket or
// ErrInvalidCiphertextLength, and a sender key that does not decode to a
// curve point fails with ErrInvalidPublicKey.
func (s *Scheme) Decrypt(recipient *curve.Scalar, raw []byte) ([]byte, error) {
	if recipient == nil || recipient.IsZero() {
		return nil, errors.New("bie1: nil recipient key")
	}

	p, err := ParsePacket(raw, s.tagSize)
	if err != nil {
		return nil, err
	}

	senderPoint, err := curve.NewPointFromBytes(p.SenderPubKey)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	shared, err := senderPoint.Mul(recipient)
	if err != nil {
		return nil, ErrInvalidSharedSecret
	}

	secret := shared.Bytes()
	keys, err := deriveKeys(secret)
	zeroizeBytes(secret)
	if err != nil {
		return nil, err
	}
	defer keys.free()

	if !verifyTag(&keys.macKey, p.SenderPubKey, p.Ciphertext, p.Tag) {
		return nil, ErrAuthentication
	}

	return cbcDecrypt(&keys.cipherKey, &keys.iv, p.Ciphertext)
}

// defaultScheme carries the normative full-tag configuration used by the
// package-level functions.
var defaultScheme = New()

// Encrypt encrypts plaintext with the normative full-tag scheme.
// See Scheme.Encrypt.
func Encrypt(sender *curve.Scalar, recipient *curve.Point, plaintext []byte) ([]byte, error) {
	return defaultScheme.Encrypt(sender, recipient, plaintext)
}

// Decrypt decrypts a packet produced by the normative full-tag scheme.
// See Scheme.Decrypt.
func Decrypt(recipient *curve.Scalar, raw []byte) ([]byte, error) {
	return defaultScheme.Decrypt(recipient, raw)
}
