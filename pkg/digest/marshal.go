package digest

import (
	"encoding/binary"
	"errors"
	"fmt"

	"hashcore/pkg/keccak"
)

// Snapshot layout:
//
//	magic (4) | alg (1) | flags (1) | hi (8) | lo (8) | squeezed (8) |
//	pending (2) | block buffer (BlockSize) | engine state
//
// The engine state is 8 big-endian uint32 words, 8 big-endian uint64 words,
// or 25 little-endian Keccak lanes followed by a 2-byte squeeze offset.
const (
	snapshotMagic  = "hcs\x01"
	flagFinalized  = 1 << 0
	snapshotHeader = len(snapshotMagic) + 1 + 1 + 8 + 8 + 8 + 2
)

var errBadSnapshot = errors.New("digest: invalid state snapshot")

func (s *State) engineSize() int {
	switch s.alg.family {
	case familySHA256:
		return 8 * 4
	case familySHA512:
		return 8 * 8
	}
	return keccak.StateSize + 2
}

// MarshalBinary implements encoding.BinaryMarshaler. The snapshot captures
// everything needed to continue hashing, including the squeeze position.
func (s *State) MarshalBinary() ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.AppendBinary(make([]byte, 0, snapshotHeader+len(s.buf)+s.engineSize()))
}

// AppendBinary implements encoding.BinaryAppender.
func (s *State) AppendBinary(b []byte) ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	var flags byte
	if s.finalized {
		flags |= flagFinalized
	}
	b = append(b, snapshotMagic...)
	b = append(b, byte(s.id), flags)
	b = binary.BigEndian.AppendUint64(b, s.hi)
	b = binary.BigEndian.AppendUint64(b, s.lo)
	b = binary.BigEndian.AppendUint64(b, s.squeezed)
	b = binary.BigEndian.AppendUint16(b, uint16(s.n))
	b = append(b, s.buf...)

	switch e := s.eng.(type) {
	case *sha256Engine:
		for _, v := range e.h {
			b = binary.BigEndian.AppendUint32(b, v)
		}
	case *sha512Engine:
		for _, v := range e.h {
			b = binary.BigEndian.AppendUint64(b, v)
		}
	case *spongeEngine:
		for _, v := range e.a {
			b = binary.LittleEndian.AppendUint64(b, v)
		}
		b = binary.BigEndian.AppendUint16(b, uint16(e.off))
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver takes
// on the algorithm recorded in the snapshot; it may be a zero State.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) < snapshotHeader || string(b[:len(snapshotMagic)]) != snapshotMagic {
		return errBadSnapshot
	}
	b = b[len(snapshotMagic):]

	alg := Algorithm(b[0])
	if !alg.Valid() {
		return fmt.Errorf("%w: unknown algorithm %d", errBadSnapshot, b[0])
	}
	flags := b[1]
	if flags&^flagFinalized != 0 || (flags&flagFinalized != 0 && !alg.Extendable()) {
		return fmt.Errorf("%w: bad flags %#x", errBadSnapshot, flags)
	}
	b = b[2:]

	t, err := New(alg)
	if err != nil {
		return err
	}
	if len(b) != 8+8+8+2+len(t.buf)+t.engineSize() {
		return fmt.Errorf("%w: length %d for %v", errBadSnapshot, len(b), alg)
	}

	t.hi = binary.BigEndian.Uint64(b)
	t.lo = binary.BigEndian.Uint64(b[8:])
	t.squeezed = binary.BigEndian.Uint64(b[16:])
	t.n = int(binary.BigEndian.Uint16(b[24:]))
	b = b[26:]
	if t.n >= len(t.buf) {
		return fmt.Errorf("%w: %d pending bytes", errBadSnapshot, t.n)
	}
	if t.hi > t.alg.maxHi || (t.hi == t.alg.maxHi && t.lo > t.alg.maxLo) {
		return fmt.Errorf("%w: length counter", errBadSnapshot)
	}
	t.finalized = flags&flagFinalized != 0

	// Every block size divides 2^64 or belongs to a family whose hi is
	// always zero, so lo alone fixes the pending count.
	switch {
	case t.finalized && t.n != 0:
		return fmt.Errorf("%w: %d pending bytes after squeeze", errBadSnapshot, t.n)
	case !t.finalized && t.n != int(t.lo%uint64(len(t.buf))):
		return fmt.Errorf("%w: %d pending bytes for length %d", errBadSnapshot, t.n, t.lo)
	case !t.finalized && t.squeezed != 0:
		return fmt.Errorf("%w: %d bytes squeezed before finalization", errBadSnapshot, t.squeezed)
	}
	copy(t.buf, b)
	b = b[len(t.buf):]

	switch e := t.eng.(type) {
	case *sha256Engine:
		for i := range e.h {
			e.h[i] = binary.BigEndian.Uint32(b[4*i:])
		}
	case *sha512Engine:
		for i := range e.h {
			e.h[i] = binary.BigEndian.Uint64(b[8*i:])
		}
	case *spongeEngine:
		for i := range e.a {
			e.a[i] = binary.LittleEndian.Uint64(b[8*i:])
		}
		e.off = int(binary.BigEndian.Uint16(b[keccak.StateSize:]))
		if e.off > e.rate {
			return fmt.Errorf("%w: squeeze offset %d", errBadSnapshot, e.off)
		}
	}

	*s = *t
	return nil
}
