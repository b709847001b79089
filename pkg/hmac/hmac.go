// Package hmac implements the keyed-hash message authentication code of
// RFC 2104 over the fixed-length algorithms of pkg/digest.
//
//	HMAC(K, m) = H((K' ^ opad) || H((K' ^ ipad) || m))
//
// K' is K hashed if it is longer than one block, zero-padded to the block
// length otherwise. For SHA-3 the block length is the sponge rate.
package hmac

import (
	"crypto/subtle"
	"fmt"

	"hashcore/pkg/digest"
)

const (
	ipad = 0x36
	opad = 0x5c
)

// MAC is a streaming HMAC computation. It implements hash.Hash.
type MAC struct {
	alg   digest.Algorithm
	inner *digest.State
	outer *digest.State // has absorbed K' ^ opad; only ever read through clones
	start *digest.State // inner state right after K' ^ ipad, for Reset
}

// New returns a MAC keyed with key. Extendable-output algorithms are
// rejected with digest.ErrWrongAlgorithm.
func New(alg digest.Algorithm, key []byte) (*MAC, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("hmac with %v: %w", alg, digest.ErrInvalidParameter)
	}
	if alg.Extendable() {
		return nil, fmt.Errorf("hmac with %v: %w", alg, digest.ErrWrongAlgorithm)
	}

	bs := alg.BlockSize()
	var kb, pb [digest.MaxBlockSize]byte
	k, pad := kb[:bs], pb[:bs]
	if len(key) > bs {
		sum, err := digest.Hash(alg, key)
		if err != nil {
			return nil, fmt.Errorf("hash long hmac key: %w", err)
		}
		copy(k, sum)
	} else {
		copy(k, key)
	}
	defer clear(k)
	defer clear(pad)

	for i, b := range k {
		pad[i] = b ^ ipad
	}
	start, err := digest.New(alg)
	if err != nil {
		return nil, err
	}
	if err := start.Update(pad); err != nil {
		return nil, err
	}

	for i, b := range k {
		pad[i] = b ^ opad
	}
	outer, err := digest.New(alg)
	if err != nil {
		return nil, err
	}
	if err := outer.Update(pad); err != nil {
		return nil, err
	}

	return &MAC{
		alg:   alg,
		inner: start.Clone(),
		outer: outer,
		start: start,
	}, nil
}

// Update absorbs message bytes.
func (m *MAC) Update(p []byte) error {
	return m.inner.Update(p)
}

// Write implements io.Writer.
func (m *MAC) Write(p []byte) (int, error) {
	return m.inner.Write(p)
}

// Tag returns the tag of everything written so far without disturbing the
// MAC, so more data can follow.
func (m *MAC) Tag() ([]byte, error) {
	in := make([]byte, m.alg.Size())
	if err := m.inner.Digest(in); err != nil {
		return nil, err
	}
	o := m.outer.Clone()
	defer o.Free()
	if err := o.Update(in); err != nil {
		return nil, err
	}
	tag := make([]byte, m.alg.Size())
	if err := o.Digest(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Sum appends the current tag to b.
func (m *MAC) Sum(b []byte) []byte {
	tag, err := m.Tag()
	if err != nil {
		panic(err)
	}
	return append(b, tag...)
}

// Reset discards the message, keeping the key.
func (m *MAC) Reset() {
	m.inner.Free()
	m.inner = m.start.Clone()
}

// Size returns the tag length.
func (m *MAC) Size() int { return m.alg.Size() }

// BlockSize returns the underlying hash's block length.
func (m *MAC) BlockSize() int { return m.alg.BlockSize() }

// Sum computes the tag of message under key in one call.
func Sum(alg digest.Algorithm, key, message []byte) ([]byte, error) {
	m, err := New(alg, key)
	if err != nil {
		return nil, err
	}
	if err := m.Update(message); err != nil {
		return nil, err
	}
	return m.Tag()
}

// Equal compares two tags in constant time.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
