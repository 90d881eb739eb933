package bie1

import (
	"bytes"
	"fmt"

	"github.com/paywire/bie1-go/pkg/bie1/curve"
)

// Wire layout constants. A packet is the ordered concatenation
// flag(4) || sender pubkey(33) || ciphertext(N) || tag(16 or 32), so the
// ciphertext length is recoverable only by subtracting the fixed header and
// trailing tag from the total length.
const (
	// FlagSize is the length of the protocol flag, the ASCII bytes "BIE1".
	FlagSize = 4

	// TagSize is the width of a full HMAC-SHA256 tag.
	TagSize = 32

	// TruncatedTagSize is the tag width used by truncated-tag deployments.
	TruncatedTagSize = 16

	// MinPacketSize is the smallest well-formed packet under any supported
	// tag width: header, one ciphertext block and a truncated tag.
	MinPacketSize = FlagSize + curve.PointSize + BlockSize + TruncatedTagSize
)

// packetFlag is the protocol marker, 0x42494531.
var packetFlag = [FlagSize]byte{'B', 'I', 'E', '1'}

// Packet is a decoded BIE1 packet. It is produced by ParsePacket and holds
// copies of the underlying regions, so mutating the raw input afterwards
// does not affect it.
type Packet struct {
	// SenderPubKey is the 33-byte compressed sender public key.
	SenderPubKey []byte

	// Ciphertext is the AES-128-CBC output, a positive multiple of
	// BlockSize bytes.
	Ciphertext []byte

	// Tag is the HMAC-SHA256 tag, TagSize or TruncatedTagSize bytes.
	Tag []byte
}

// Serialize encodes the packet into its wire form.
func (p *Packet) Serialize() []byte {
	out := make([]byte, 0, FlagSize+len(p.SenderPubKey)+len(p.Ciphertext)+len(p.Tag))
	out = append(out, packetFlag[:]...)
	out = append(out, p.SenderPubKey...)
	out = append(out, p.Ciphertext...)
	out = append(out, p.Tag...)
	return out
}

// ParsePacket decodes raw packet bytes, slicing the regions by length.
// tagSize must be TagSize or TruncatedTagSize and must match the width the
// sender used; it is a deployment constant, not something the packet
// self-describes.
//
// It fails with ErrMalformedPacket if the packet cannot contain the fixed
// header and tag or the flag bytes are wrong, and with
// ErrInvalidCiphertextLength if the remaining ciphertext region is empty or
// not block-aligned. No cryptographic work happens here.
func ParsePacket(raw []byte, tagSize int) (*Packet, error) {
	if tagSize != TagSize && tagSize != TruncatedTagSize {
		return nil, fmt.Errorf("bie1: unsupported tag size %d", tagSize)
	}

	if len(raw) < FlagSize+curve.PointSize+tagSize {
		return nil, ErrMalformedPacket
	}
	if !bytes.Equal(raw[:FlagSize], packetFlag[:]) {
		return nil, ErrMalformedPacket
	}

	ciphertextLen := len(raw) - FlagSize - curve.PointSize - tagSize
	if ciphertextLen <= 0 || ciphertextLen%BlockSize != 0 {
		return nil, ErrInvalidCiphertextLength
	}

	p := &Packet{
		SenderPubKey: make([]byte, curve.PointSize),
		Ciphertext:   make([]byte, ciphertextLen),
		Tag:          make([]byte, tagSize),
	}
	copy(p.SenderPubKey, raw[FlagSize:FlagSize+curve.PointSize])
	copy(p.Ciphertext, raw[FlagSize+curve.PointSize:len(raw)-tagSize])
	copy(p.Tag, raw[len(raw)-tagSize:])
	return p, nil
}
