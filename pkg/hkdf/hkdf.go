// Package hkdf implements the HMAC-based Extract-and-Expand Key Derivation
// Function of RFC 5869 over pkg/hmac.
//
//	PRK  = HMAC(salt, IKM)
//	T(0) = empty
//	T(i) = HMAC(PRK, T(i-1) || info || i)     for i = 1 .. ceil(L/HashLen)
//	OKM  = first L bytes of T(1) || T(2) || ...
package hkdf

import (
	"fmt"

	"hashcore/pkg/digest"
	"hashcore/pkg/hmac"
)

// MaxLength returns the largest output Expand can produce for alg.
func MaxLength(alg digest.Algorithm) int {
	return 255 * alg.Size()
}

// Extract derives a pseudorandom key from input keying material. An empty
// salt is replaced by HashLen zero bytes.
func Extract(alg digest.Algorithm, salt, ikm []byte) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, alg.Size())
	}
	prk, err := hmac.Sum(alg, salt, ikm)
	if err != nil {
		return nil, fmt.Errorf("hkdf extract: %w", err)
	}
	return prk, nil
}

// Expand derives length bytes of output keying material from prk and info.
// length must be between 0 and MaxLength(alg).
func Expand(alg digest.Algorithm, prk, info []byte, length int) ([]byte, error) {
	if alg.Extendable() {
		return nil, fmt.Errorf("hkdf expand with %v: %w", alg, digest.ErrWrongAlgorithm)
	}
	if length < 0 || length > MaxLength(alg) {
		return nil, fmt.Errorf("hkdf expand to %d bytes, max %d: %w",
			length, MaxLength(alg), digest.ErrInvalidParameter)
	}

	m, err := hmac.New(alg, prk)
	if err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}

	okm := make([]byte, 0, length+alg.Size())
	var prev []byte
	for i := 1; len(okm) < length; i++ {
		m.Reset()
		for _, p := range [][]byte{prev, info, {byte(i)}} {
			if err := m.Update(p); err != nil {
				return nil, fmt.Errorf("hkdf expand block %d: %w", i, err)
			}
		}
		prev, err = m.Tag()
		if err != nil {
			return nil, fmt.Errorf("hkdf expand block %d: %w", i, err)
		}
		okm = append(okm, prev...)
	}
	return okm[:length:length], nil
}

// Key runs Extract followed by Expand.
func Key(alg digest.Algorithm, secret, salt, info []byte, length int) ([]byte, error) {
	prk, err := Extract(alg, salt, secret)
	if err != nil {
		return nil, err
	}
	defer clear(prk)
	return Expand(alg, prk, info, length)
}
