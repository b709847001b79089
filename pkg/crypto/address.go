package crypto

import (
	"encoding/base32"
	"errors"
	"fmt"
	"strings"

	"hashcore/pkg/digest"
)

const (
	// AddressVersion is the only address version understood.
	AddressVersion = 3
	// AddressSuffix is the optional domain suffix of an address.
	AddressSuffix = ".onion"

	addressLen    = 56 // base32 characters
	addressRawLen = 35 // pubkey(32) || checksum(2) || version(1)
)

var (
	addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

	errAddressChecksum = errors.New("address checksum mismatch")
)

// KeyAddress is a self-authenticating encoding of an Ed25519 public key:
//
//	base32(PUBKEY || CHECKSUM || VERSION)
//	CHECKSUM = SHA3-256(".onion checksum" || PUBKEY || VERSION)[:2]
type KeyAddress struct {
	PublicKey [32]byte
	Version   byte
}

func addressChecksum(pub []byte, version byte) []byte {
	return sum(digest.SHA3_256, []byte(".onion checksum"), pub, []byte{version})[:2]
}

// String returns the lower-case address including AddressSuffix.
func (a KeyAddress) String() string {
	raw := make([]byte, 0, addressRawLen)
	raw = append(raw, a.PublicKey[:]...)
	raw = append(raw, addressChecksum(a.PublicKey[:], a.Version)...)
	raw = append(raw, a.Version)
	return strings.ToLower(addressEncoding.EncodeToString(raw)) + AddressSuffix
}

// ParseKeyAddress decodes an address, with or without AddressSuffix, and
// verifies its version and checksum.
func ParseKeyAddress(s string) (*KeyAddress, error) {
	s = strings.TrimSuffix(s, AddressSuffix)
	if len(s) != addressLen {
		return nil, fmt.Errorf("address length %d, want %d", len(s), addressLen)
	}
	raw, err := addressEncoding.DecodeString(strings.ToUpper(s))
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}

	a := &KeyAddress{Version: raw[34]}
	if a.Version != AddressVersion {
		return nil, fmt.Errorf("unsupported address version %d", a.Version)
	}
	copy(a.PublicKey[:], raw[:32])
	want := addressChecksum(a.PublicKey[:], a.Version)
	if raw[32] != want[0] || raw[33] != want[1] {
		return nil, errAddressChecksum
	}
	return a, nil
}

// Subcredential binds a long-term identity key to a blinded key:
//
//	credential    = SHA3-256("credential" || pubkey)
//	subcredential = SHA3-256("subcredential" || credential || blinded)
func Subcredential(pubkey, blinded []byte) []byte {
	credential := sum(digest.SHA3_256, []byte("credential"), pubkey)
	return sum(digest.SHA3_256, []byte("subcredential"), credential, blinded)
}
