// Package crypto builds higher-level constructions on the hash engine:
// fixed-size hash helpers, HKDF key schedules, X25519 key agreement,
// Ed25519 key expansion, signing and blinding, and running transcripts.
package crypto

import (
	"encoding/binary"

	"hashcore/pkg/digest"
)

// sum hashes the concatenation of parts. The only possible failure is an
// input beyond 2^61 bytes, which a []byte cannot reach.
func sum(alg digest.Algorithm, parts ...[]byte) []byte {
	s, err := digest.New(alg)
	if err != nil {
		panic(err)
	}
	defer s.Free()
	for _, p := range parts {
		s.Write(p)
	}
	out := make([]byte, alg.Size())
	if err := s.Digest(out); err != nil {
		panic(err)
	}
	return out
}

// SHA3_256 computes the SHA3-256 hash of data.
func SHA3_256(data []byte) []byte {
	return sum(digest.SHA3_256, data)
}

// SHA3_512 computes the SHA3-512 hash of data.
func SHA3_512(data []byte) []byte {
	return sum(digest.SHA3_512, data)
}

// SHAKE256KDF derives numBytes of output from input using SHAKE-256.
func SHAKE256KDF(input []byte, numBytes int) []byte {
	s, err := digest.New(digest.SHAKE256)
	if err != nil {
		panic(err)
	}
	defer s.Free()
	s.Write(input)
	out := make([]byte, numBytes)
	s.Read(out)
	return out
}

// PrefixMAC computes a length-prefixed keyed SHA3-256:
//
//	PrefixMAC(key, msg) = SHA3_256(key_len_as_8_bytes || key || msg)
func PrefixMAC(key, msg []byte) []byte {
	keyLen := make([]byte, 8)
	binary.BigEndian.PutUint64(keyLen, uint64(len(key)))
	return sum(digest.SHA3_256, keyLen, key, msg)
}
