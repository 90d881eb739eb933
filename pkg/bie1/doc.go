// Package bie1 implements the Electrum-style BIE1 Elliptic Curve Integrated
// Encryption Scheme (ECIES) over secp256k1.
//
// A message is encrypted from a sender keypair to a recipient public key:
// both parties derive the same shared secret via ECDH, split its SHA-512
// digest into an IV, an AES-128 key and an HMAC key, and frame the result
// as a compact self-describing packet:
//
//	"BIE1"(4) || sender pubkey(33, compressed) || ciphertext(16*k) || tag
//
// The ciphertext is AES-128-CBC over the PKCS#7-padded plaintext. Padding is
// applied unconditionally: a block-aligned plaintext still gains a full
// padding block. The tag is HMAC-SHA256 over everything that precedes it in
// the packet; by default the full 32 bytes are carried, and deployments that
// truncate to 16 bytes can opt in with WithTruncatedTag. Tag verification is
// constant-time and always happens before any decryption.
//
// # Usage
//
//	sender, err := curve.RandomScalar()
//	if err != nil {
//	    return err
//	}
//	defer sender.Free()
//
//	packet, err := bie1.Encrypt(sender, recipientPub, []byte("message"))
//	...
//	plaintext, err := bie1.Decrypt(recipientPriv, packet)
//
// Encryption is fully deterministic: no randomness is drawn internally, so
// message secrecy depends on the caller using a freshly generated sender
// scalar for every message. curve.RandomScalar is the supported source.
//
// # Security Properties
//
//   - Fail closed: a packet whose tag does not verify is rejected before
//     any block is decrypted, so padding errors never act as an oracle.
//   - Constant-time tag comparison.
//   - Derived keys and shared secrets are zeroized when an operation ends.
//
// Transaction construction, payload embedding and key storage formats are
// out of scope; the package works with raw scalars, compressed points and
// packet bytes only.
package bie1
