package crypto

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"hashcore/pkg/digest"
	"hashcore/pkg/hkdf"
)

// X25519PublicKey is a Curve25519 public key (32 bytes).
type X25519PublicKey [32]byte

// X25519SecretKey is a Curve25519 secret key (32 bytes).
type X25519SecretKey [32]byte

// X25519Keypair holds a curve25519 keypair.
type X25519Keypair struct {
	Public  X25519PublicKey
	Private X25519SecretKey
}

// GenerateX25519Keypair creates a new random curve25519 keypair.
func GenerateX25519Keypair() (*X25519Keypair, error) {
	var priv X25519SecretKey
	if _, err := rand.Read(priv[:]); err != nil {
		return nil, fmt.Errorf("generate x25519 keypair: %w", err)
	}
	return X25519KeypairFromSecret(priv)
}

// X25519KeypairFromSecret computes the public half for priv.
func X25519KeypairFromSecret(priv X25519SecretKey) (*X25519Keypair, error) {
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("compute public key: %w", err)
	}
	kp := &X25519Keypair{Private: priv}
	copy(kp.Public[:], pub)
	return kp, nil
}

// Agree runs X25519 with peer and expands the shared secret with HKDF into
// n bytes:
//
//	shared = X25519(priv, peer)
//	salt   = min(pubA, pubB) || max(pubA, pubB)
//	key    = HKDF(alg, shared, salt, info, n)
//
// Both sides derive the same key regardless of which one calls Agree.
func (kp *X25519Keypair) Agree(alg digest.Algorithm, peer X25519PublicKey, info []byte, n int) ([]byte, error) {
	shared, err := curve25519.X25519(kp.Private[:], peer[:])
	if err != nil {
		return nil, fmt.Errorf("ecdh: %w", err)
	}
	defer clear(shared)
	// Check for all-zeros (low-order peer point)
	if isZero(shared) {
		return nil, errors.New("ecdh: shared secret is zero")
	}

	salt := make([]byte, 0, 64)
	if bytes.Compare(kp.Public[:], peer[:]) <= 0 {
		salt = append(salt, kp.Public[:]...)
		salt = append(salt, peer[:]...)
	} else {
		salt = append(salt, peer[:]...)
		salt = append(salt, kp.Public[:]...)
	}

	key, err := hkdf.Key(alg, shared, salt, info, n)
	if err != nil {
		return nil, fmt.Errorf("expand shared secret: %w", err)
	}
	return key, nil
}

// isZero reports whether b is all zeros without branching on its contents.
func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return subtle.ConstantTimeByteEq(acc, 0) == 1
}
