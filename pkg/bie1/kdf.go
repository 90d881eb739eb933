package bie1

import (
	"crypto/sha512"
	"fmt"

	"github.com/paywire/bie1-go/pkg/bie1/curve"
)

// Sizes of the key material split out of the SHA-512 digest of the shared
// secret. Together they consume the entire 64-byte digest with no overlap:
// IV = H[0:16], cipher key = H[16:32], MAC key = H[32:64].
const (
	ivSize        = 16
	cipherKeySize = 16
	macKeySize    = 32
)

// derivedKeys holds the symmetric key material for one encryption or
// decryption operation. Both parties derive identical keys from the
// compressed ECDH point, so derivation must stay a pure function of its
// input. Call free when the operation completes.
type derivedKeys struct {
	iv        [ivSize]byte
	cipherKey [cipherKeySize]byte
	macKey    [macKeySize]byte
}

// deriveKeys derives the IV, AES-128 key and HMAC key from the 33-byte
// compressed encoding of the ECDH shared point.
func deriveKeys(secret []byte) (*derivedKeys, error) {
	if len(secret) != curve.PointSize {
		return nil, fmt.Errorf("bie1: shared secret must be %d bytes, got %d",
			curve.PointSize, len(secret))
	}

	digest := sha512.Sum512(secret)

	k := &derivedKeys{}
	copy(k.iv[:], digest[0:ivSize])
	copy(k.cipherKey[:], digest[ivSize:ivSize+cipherKeySize])
	copy(k.macKey[:], digest[ivSize+cipherKeySize:])
	zeroizeBytes(digest[:])

	return k, nil
}

// free zeroizes the derived key material.
func (k *derivedKeys) free() {
	if k == nil {
		return
	}
	zeroizeBytes(k.iv[:])
	zeroizeBytes(k.cipherKey[:])
	zeroizeBytes(k.macKey[:])
}
