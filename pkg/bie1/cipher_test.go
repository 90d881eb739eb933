package bie1

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func vectorKeys(t *testing.T) *derivedKeys {
	t.Helper()
	secret, _ := hex.DecodeString("031cc3959f09765b99d8323496bd1b27126c0dcc6ca369ec66b6cdef324301614a")
	keys, err := deriveKeys(secret)
	if err != nil {
		t.Fatalf("deriveKeys failed: %v", err)
	}
	return keys
}

// TestCBCEncryptVector checks the symmetric cipher in isolation against the
// known-answer vector for "Hello world" under the derivation-vector keys.
func TestCBCEncryptVector(t *testing.T) {
	keys := vectorKeys(t)
	defer keys.free()

	ciphertext, err := cbcEncrypt(&keys.cipherKey, &keys.iv, []byte("Hello world"))
	if err != nil {
		t.Fatalf("cbcEncrypt failed: %v", err)
	}

	want, _ := hex.DecodeString("37ae432655fe95d444834c88e31b9c0e")
	if !bytes.Equal(ciphertext, want) {
		t.Fatalf("ciphertext mismatch: got %s", hex.EncodeToString(ciphertext))
	}

	plaintext, err := cbcDecrypt(&keys.cipherKey, &keys.iv, ciphertext)
	if err != nil {
		t.Fatalf("cbcDecrypt failed: %v", err)
	}
	if string(plaintext) != "Hello world" {
		t.Fatalf("round-trip mismatch: got %q", plaintext)
	}
}

// TestPaddingTotality pins the interoperability contract that padding is
// applied even when the plaintext is already block-aligned: the ciphertext
// gains a full extra block. Some BIE1 implementations skip the pad in this
// case and produce incompatible ciphertexts.
func TestPaddingTotality(t *testing.T) {
	keys := vectorKeys(t)
	defer keys.free()

	cases := []struct {
		plainLen  int
		cipherLen int
	}{
		{0, 16},
		{1, 16},
		{15, 16},
		{16, 32},
		{31, 32},
		{32, 48},
		{160, 176},
	}

	for _, tc := range cases {
		plaintext := bytes.Repeat([]byte{0xa5}, tc.plainLen)
		ciphertext, err := cbcEncrypt(&keys.cipherKey, &keys.iv, plaintext)
		if err != nil {
			t.Fatalf("cbcEncrypt(%d bytes) failed: %v", tc.plainLen, err)
		}
		if len(ciphertext) != tc.cipherLen {
			t.Errorf("plaintext %d bytes: ciphertext %d bytes, want %d",
				tc.plainLen, len(ciphertext), tc.cipherLen)
		}

		got, err := cbcDecrypt(&keys.cipherKey, &keys.iv, ciphertext)
		if err != nil {
			t.Fatalf("cbcDecrypt(%d bytes) failed: %v", tc.plainLen, err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("round-trip mismatch for %d-byte plaintext", tc.plainLen)
		}
	}
}

// TestPKCS7Pad verifies the pad byte value equals the pad length.
func TestPKCS7Pad(t *testing.T) {
	padded := pkcs7Pad(make([]byte, 16))
	if len(padded) != 32 {
		t.Fatalf("aligned input padded to %d bytes, want 32", len(padded))
	}
	for _, b := range padded[16:] {
		if b != 0x10 {
			t.Fatalf("pad byte %#x, want 0x10", b)
		}
	}

	padded = pkcs7Pad(make([]byte, 13))
	if len(padded) != 16 || padded[15] != 0x03 {
		t.Fatalf("13-byte input: len %d, last byte %#x", len(padded), padded[len(padded)-1])
	}
}

// TestPKCS7UnpadRejects covers the malformed padding cases: zero pad byte,
// pad byte above the block size, and an inconsistent pad region.
func TestPKCS7UnpadRejects(t *testing.T) {
	cases := map[string][]byte{
		"zero pad byte":    append(bytes.Repeat([]byte{1}, 15), 0x00),
		"pad byte over 16": append(bytes.Repeat([]byte{1}, 15), 0x11),
		"inconsistent pad": append(bytes.Repeat([]byte{1}, 13), 0x02, 0x03, 0x03),
		"empty input":      {},
		"unaligned input":  bytes.Repeat([]byte{3}, 15),
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := pkcs7Unpad(data); !errors.Is(err, ErrPadding) {
				t.Fatalf("got %v, want ErrPadding", err)
			}
		})
	}

	// A full block of 0x10 is the valid encoding of an empty plaintext.
	got, err := pkcs7Unpad(bytes.Repeat([]byte{0x10}, 16))
	if err != nil {
		t.Fatalf("full pad block rejected: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("full pad block unpadded to %d bytes, want 0", len(got))
	}
}

// TestCBCDecryptLength verifies empty and unaligned ciphertexts are rejected
// before any AES work.
func TestCBCDecryptLength(t *testing.T) {
	keys := vectorKeys(t)
	defer keys.free()

	for _, n := range []int{0, 1, 15, 17, 33} {
		_, err := cbcDecrypt(&keys.cipherKey, &keys.iv, make([]byte, n))
		if !errors.Is(err, ErrInvalidCiphertextLength) {
			t.Errorf("%d-byte ciphertext: got %v, want ErrInvalidCiphertextLength", n, err)
		}
	}
}
