package bie1

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
)

// BlockSize is the AES block size in bytes. Ciphertext lengths are always a
// positive multiple of it.
const BlockSize = aes.BlockSize

// pkcs7Pad appends PKCS#7 padding to data. Padding is unconditional: a
// block-aligned input gains a full block of 0x10 bytes. Skipping the pad for
// aligned inputs is a known interoperability bug in some BIE1 codebases and
// is pinned against in the tests.
func pkcs7Pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad strips PKCS#7 padding, rejecting a pad byte of zero, a pad byte
// larger than the block size, a pad longer than the data, and any trailing
// byte that disagrees with the pad byte.
func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, ErrPadding
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > BlockSize || padLen > len(data) {
		return nil, ErrPadding
	}

	// The tag has already been verified by the time padding is inspected,
	// but the check is constant-time over the pad region anyway.
	bad := 0
	for _, b := range data[len(data)-padLen:] {
		bad |= subtle.ConstantTimeByteEq(b, byte(padLen)) ^ 1
	}
	if bad != 0 {
		return nil, ErrPadding
	}

	return data[:len(data)-padLen], nil
}

// cbcEncrypt encrypts plaintext with AES-128-CBC after applying PKCS#7
// padding. The output length is len(plaintext) rounded up to the next
// multiple of BlockSize, always strictly greater than len(plaintext).
func cbcEncrypt(key *[cipherKeySize]byte, iv *[ivSize]byte, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ciphertext, padded)
	zeroizeBytes(padded)
	return ciphertext, nil
}

// cbcDecrypt decrypts AES-128-CBC ciphertext and strips PKCS#7 padding.
func cbcDecrypt(key *[cipherKeySize]byte, iv *[ivSize]byte, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, ErrInvalidCiphertextLength
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv[:]).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded)
	if err != nil {
		zeroizeBytes(padded)
		return nil, err
	}
	return plaintext, nil
}
