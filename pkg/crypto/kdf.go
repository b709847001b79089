package crypto

import (
	"fmt"

	"hashcore/pkg/digest"
	"hashcore/pkg/hkdf"
)

// Session key lengths.
const (
	KeyLen    = 32 // symmetric cipher key
	MACKeyLen = 32 // HMAC key
	NonceLen  = 12 // AEAD nonce base
)

// SplitKeys derives sum(lengths) bytes with HKDF and cuts them into
// consecutive subkeys of the given lengths.
func SplitKeys(alg digest.Algorithm, secret, salt, info []byte, lengths ...int) ([][]byte, error) {
	total := 0
	for _, n := range lengths {
		if n < 0 {
			return nil, fmt.Errorf("negative subkey length %d: %w", n, digest.ErrInvalidParameter)
		}
		total += n
	}

	okm, err := hkdf.Key(alg, secret, salt, info, total)
	if err != nil {
		return nil, fmt.Errorf("derive %d key bytes: %w", total, err)
	}

	keys := make([][]byte, len(lengths))
	off := 0
	for i, n := range lengths {
		keys[i] = okm[off : off+n : off+n]
		off += n
	}
	return keys, nil
}

// SessionKeys holds the keys for both directions of a session.
type SessionKeys struct {
	ForwardKey  []byte // Kf - KeyLen bytes
	BackwardKey []byte // Kb - KeyLen bytes
	ForwardMAC  []byte // Mf - MACKeyLen bytes
	BackwardMAC []byte // Mb - MACKeyLen bytes
	Nonce       []byte // NonceLen bytes
}

// DeriveSessionKeys expands a shared secret into SessionKeys:
//
//	Kf (32) | Kb (32) | Mf (32) | Mb (32) | Nonce (12)
//
// Total = 140 bytes, within HKDF's bound for every fixed-length algorithm.
func DeriveSessionKeys(alg digest.Algorithm, secret, salt, info []byte) (*SessionKeys, error) {
	k, err := SplitKeys(alg, secret, salt, info, KeyLen, KeyLen, MACKeyLen, MACKeyLen, NonceLen)
	if err != nil {
		return nil, err
	}
	return &SessionKeys{
		ForwardKey:  k[0],
		BackwardKey: k[1],
		ForwardMAC:  k[2],
		BackwardMAC: k[3],
		Nonce:       k[4],
	}, nil
}
