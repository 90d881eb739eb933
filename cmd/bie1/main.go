// Command bie1 encrypts and decrypts BIE1 packets from the command line.
//
// Packets are read and written as base64 text, the common transport encoding
// for embedding in application payloads. Keys are hex: a 32-byte private
// scalar for -key and a 33-byte compressed public key for -peer.
//
//	bie1 -mode keygen
//	echo -n "message" | bie1 -mode encrypt -key <privhex> -peer <pubhex>
//	echo "<base64 packet>" | bie1 -mode decrypt -key <privhex>
package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/paywire/bie1-go/pkg/bie1"
	"github.com/paywire/bie1-go/pkg/bie1/curve"
)

func main() {
	mode := flag.String("mode", "", "keygen, encrypt or decrypt")
	keyHex := flag.String("key", "", "private key, 32 bytes hex")
	peerHex := flag.String("peer", "", "recipient public key, 33 bytes hex (encrypt only)")
	truncated := flag.Bool("truncated-tag", false, "use the 16-byte truncated tag")
	flag.Parse()

	var opts []bie1.Option
	if *truncated {
		opts = append(opts, bie1.WithTruncatedTag())
	}
	scheme := bie1.New(opts...)

	switch *mode {
	case "keygen":
		keygen()
	case "encrypt":
		encrypt(scheme, *keyHex, *peerHex)
	case "decrypt":
		decrypt(scheme, *keyHex)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func keygen() {
	priv, err := curve.RandomScalar()
	if err != nil {
		log.Fatalf("generate key: %v", err)
	}
	defer priv.Free()

	fmt.Printf("private: %s\n", hex.EncodeToString(priv.Bytes()))
	fmt.Printf("public:  %s\n", hex.EncodeToString(curve.MulGenerator(priv).Bytes()))
}

func parseKey(keyHex string) *curve.Scalar {
	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		log.Fatalf("decode -key: %v", err)
	}
	key, err := curve.NewScalarFromBytes(raw)
	if err != nil {
		log.Fatalf("parse -key: %v", err)
	}
	return key
}

func encrypt(scheme *bie1.Scheme, keyHex, peerHex string) {
	key := parseKey(keyHex)
	defer key.Free()

	rawPeer, err := hex.DecodeString(peerHex)
	if err != nil {
		log.Fatalf("decode -peer: %v", err)
	}
	peer, err := curve.NewPointFromBytes(rawPeer)
	if err != nil {
		log.Fatalf("parse -peer: %v", err)
	}

	plaintext, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	packet, err := scheme.Encrypt(key, peer, plaintext)
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}
	fmt.Println(base64.StdEncoding.EncodeToString(packet))
}

func decrypt(scheme *bie1.Scheme, keyHex string) {
	key := parseKey(keyHex)
	defer key.Free()

	encoded, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	packet, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		log.Fatalf("decode packet: %v", err)
	}

	plaintext, err := scheme.Decrypt(key, packet)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	os.Stdout.Write(plaintext)
}
