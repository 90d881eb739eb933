package bie1

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// computeTag computes HMAC-SHA256 over the pre-tag prefix of the packet:
// flag || sender pubkey || ciphertext. The tag never covers itself. size
// selects the carried width (TagSize or TruncatedTagSize); truncation takes
// the leading bytes of the full MAC.
func computeTag(key *[macKeySize]byte, senderPubKey, ciphertext []byte, size int) []byte {
	mac := hmac.New(sha256.New, key[:])
	mac.Write(packetFlag[:])
	mac.Write(senderPubKey)
	mac.Write(ciphertext)
	return mac.Sum(nil)[:size]
}

// verifyTag recomputes the tag from the received packet fields and the
// receiver's independently derived MAC key, and compares it against the
// received tag in constant time.
func verifyTag(key *[macKeySize]byte, senderPubKey, ciphertext, tag []byte) bool {
	want := computeTag(key, senderPubKey, ciphertext, len(tag))
	ok := subtle.ConstantTimeCompare(want, tag) == 1
	zeroizeBytes(want)
	return ok
}
