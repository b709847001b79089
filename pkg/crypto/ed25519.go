package crypto

import (
	"fmt"

	"filippo.io/edwards25519"

	"hashcore/pkg/digest"
)

const (
	// Ed25519SeedSize is the size of an RFC 8032 private key seed.
	Ed25519SeedSize = 32
	// Ed25519SignatureSize is the size of an Ed25519 signature.
	Ed25519SignatureSize = 64
)

// Ed25519Key is an expanded Ed25519 private key.
type Ed25519Key struct {
	Scalar    *edwards25519.Scalar // s, the clamped secret scalar
	Prefix    [32]byte             // second half of SHA-512(seed), nonce key
	PublicKey [32]byte             // A = s*B
}

// Ed25519KeyFromSeed expands a seed per RFC 8032 section 5.1.5:
//
//	h = SHA-512(seed)
//	s = clamp(h[0:32]), prefix = h[32:64]
//	A = s*B
func Ed25519KeyFromSeed(seed []byte) (*Ed25519Key, error) {
	if len(seed) != Ed25519SeedSize {
		return nil, fmt.Errorf("ed25519 seed must be %d bytes, got %d", Ed25519SeedSize, len(seed))
	}
	h := SHA512(seed)
	defer clear(h[:])

	s, err := new(edwards25519.Scalar).SetBytesWithClamping(h[:32])
	if err != nil {
		return nil, fmt.Errorf("set secret scalar: %w", err)
	}
	k := &Ed25519Key{Scalar: s}
	copy(k.Prefix[:], h[32:])
	copy(k.PublicKey[:], new(edwards25519.Point).ScalarBaseMult(s).Bytes())
	return k, nil
}

// Sign produces a deterministic RFC 8032 Ed25519 signature of msg:
//
//	r = SHA-512(prefix || msg) mod L
//	R = r*B
//	k = SHA-512(R || A || msg) mod L
//	S = r + k*s mod L
func (k *Ed25519Key) Sign(msg []byte) ([]byte, error) {
	rh := SHA512Parts(k.Prefix[:], msg)
	r, err := new(edwards25519.Scalar).SetUniformBytes(rh[:])
	if err != nil {
		return nil, fmt.Errorf("nonce scalar: %w", err)
	}
	R := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	kh := SHA512Parts(R, k.PublicKey[:], msg)
	c, err := new(edwards25519.Scalar).SetUniformBytes(kh[:])
	if err != nil {
		return nil, fmt.Errorf("challenge scalar: %w", err)
	}
	S := new(edwards25519.Scalar).MultiplyAdd(c, k.Scalar, r)

	sig := make([]byte, 0, Ed25519SignatureSize)
	sig = append(sig, R...)
	sig = append(sig, S.Bytes()...)
	return sig, nil
}

// blindString prefixes the blinding factor hash input.
const blindString = "Derive temporary signing key\x00"

// blindingFactor computes the clamped scalar
//
//	h = SHA3_256(BLIND_STRING || A || param)
func blindingFactor(pubkey, param []byte) (*edwards25519.Scalar, error) {
	h := sum(digest.SHA3_256, []byte(blindString), pubkey, param)
	return new(edwards25519.Scalar).SetBytesWithClamping(h)
}

// BlindPublicKey blinds an ed25519 public key with param (for example a
// time period encoding): A' = h*A.
func BlindPublicKey(pubkey, param []byte) ([]byte, error) {
	if len(pubkey) != 32 {
		return nil, fmt.Errorf("ed25519 pubkey must be 32 bytes, got %d", len(pubkey))
	}
	A, err := new(edwards25519.Point).SetBytes(pubkey)
	if err != nil {
		return nil, fmt.Errorf("parse ed25519 point: %w", err)
	}
	h, err := blindingFactor(pubkey, param)
	if err != nil {
		return nil, fmt.Errorf("set blinding scalar: %w", err)
	}
	return new(edwards25519.Point).ScalarMult(h, A).Bytes(), nil
}

// BlindKey returns the private counterpart of BlindPublicKey: a key with
// scalar h*s whose public key equals BlindPublicKey(k.PublicKey, param).
// The nonce prefix is rederived from the old prefix and param.
func (k *Ed25519Key) BlindKey(param []byte) (*Ed25519Key, error) {
	h, err := blindingFactor(k.PublicKey[:], param)
	if err != nil {
		return nil, fmt.Errorf("set blinding scalar: %w", err)
	}
	s := new(edwards25519.Scalar).Multiply(h, k.Scalar)
	b := &Ed25519Key{Scalar: s}
	copy(b.Prefix[:], sum(digest.SHA3_256, []byte("blinded prefix"), k.Prefix[:], param))
	copy(b.PublicKey[:], new(edwards25519.Point).ScalarBaseMult(s).Bytes())
	return b, nil
}
