package digest

import (
	"fmt"
	"math"
	"math/bits"
)

// State is a streaming hash or extendable-output state.
//
// A State must not be used from several goroutines at once. Distinct States
// share no memory and can be used in parallel.
//
// The zero State is only a target for UnmarshalBinary; other operations on
// it fail with ErrUninitialized.
type State struct {
	alg *descriptor
	id  Algorithm
	eng engine

	buf []byte // exactly one block, owned by this State
	n   int    // pending bytes in buf, always < len(buf)

	// Total absorbed bytes as a 128-bit (hi, lo) pair.
	hi, lo uint64

	finalized bool   // extendable output only
	squeezed  uint64 // bytes produced since finalization
	released  bool
}

// New returns a State for alg, initialized as if nothing has been absorbed.
func New(alg Algorithm) (*State, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("create %v: %w", alg, ErrInvalidParameter)
	}
	d := alg.desc()
	return &State{
		alg: d,
		id:  alg,
		eng: newEngine(d),
		buf: make([]byte, d.blockSize),
	}, nil
}

// Algorithm returns the algorithm the State was created with.
func (s *State) Algorithm() Algorithm { return s.id }

// BlockSize returns the algorithm's block length (rate for Keccak).
func (s *State) BlockSize() int { return s.id.BlockSize() }

// Size returns the digest length; for extendable-output algorithms it is the
// DefaultSize used by Sum.
func (s *State) Size() int { return s.id.DefaultSize() }

// Extendable reports whether the State produces output with Squeeze.
func (s *State) Extendable() bool { return s.id.Extendable() }

// Finalized reports whether an extendable-output State has started squeezing.
func (s *State) Finalized() bool { return s.finalized }

// Len returns the number of bytes absorbed so far as a (hi, lo) pair.
func (s *State) Len() (hi, lo uint64) { return s.hi, s.lo }

func (s *State) check() error {
	if s.alg == nil {
		return ErrUninitialized
	}
	if err := s.check(); err != nil {
		return err
	}
	return nil
}

// Update absorbs p. Input may be split at arbitrary points; the result only
// depends on the concatenation of all updates.
//
// Update fails with ErrLengthOverflow, leaving the State unchanged, if the
// total would exceed the algorithm's input limit, and with ErrOperationOrder
// once an extendable-output State has been squeezed.
func (s *State) Update(p []byte) error {
	if err := s.check(); err != nil {
		return err
	}
	if s.finalized {
		return fmt.Errorf("update %v after squeeze: %w", s.id, ErrOperationOrder)
	}

	lo, carry := bits.Add64(s.lo, uint64(len(p)), 0)
	hi := s.hi + carry
	if hi > s.alg.maxHi || (hi == s.alg.maxHi && lo > s.alg.maxLo) {
		return fmt.Errorf("update %v with %d bytes: %w", s.id, len(p), ErrLengthOverflow)
	}
	s.hi, s.lo = hi, lo

	bs := len(s.buf)
	if s.n > 0 {
		k := copy(s.buf[s.n:], p)
		s.n += k
		p = p[k:]
		if s.n < bs {
			return nil
		}
		s.eng.compress(s.buf)
		s.n = 0
	}
	if len(p) >= bs {
		whole := len(p) - len(p)%bs
		s.eng.compress(p[:whole])
		p = p[whole:]
	}
	if len(p) > 0 {
		s.n = copy(s.buf, p)
	}
	return nil
}

// Digest writes the digest of everything absorbed so far into out, which
// must be exactly Size() bytes. The State itself is not modified, so Digest
// can be called repeatedly and interleaved with Update.
func (s *State) Digest(out []byte) error {
	if err := s.check(); err != nil {
		return err
	}
	if s.id.Extendable() {
		return fmt.Errorf("digest of %v: %w", s.id, ErrWrongAlgorithm)
	}
	if len(out) != s.alg.size {
		return fmt.Errorf("digest of %v into %d-byte buffer, want %d: %w",
			s.id, len(out), s.alg.size, ErrInvalidParameter)
	}
	s.eng.clone().finish(s.buf[:s.n], s.hi, s.lo, out)
	return nil
}

// Squeeze fills out with the next len(out) bytes of extendable output. The
// first call applies the domain suffix and padding; later calls continue the
// same output stream, so squeezing n then m bytes equals squeezing n+m.
func (s *State) Squeeze(out []byte) error {
	if err := s.check(); err != nil {
		return err
	}
	if !s.id.Extendable() {
		return fmt.Errorf("squeeze %v: %w", s.id, ErrNotExtendable)
	}
	if uint64(len(out)) > math.MaxUint64-s.squeezed {
		return fmt.Errorf("squeeze %v: %w", s.id, ErrLengthOverflow)
	}

	sp := s.eng.(*spongeEngine)
	if !s.finalized {
		sp.pad(s.buf[:s.n])
		clear(s.buf)
		s.n = 0
		s.finalized = true
	}
	sp.squeeze(out)
	s.squeezed += uint64(len(out))
	return nil
}

// Reset returns the State to the condition New left it in. Reset also
// revives a released State.
func (s *State) Reset() {
	if s.alg == nil {
		return
	}
	if s.buf == nil {
		s.buf = make([]byte, s.alg.blockSize)
		s.eng = newEngine(s.alg)
	}
	s.eng.reset()
	clear(s.buf)
	s.n = 0
	s.hi, s.lo = 0, 0
	s.finalized = false
	s.squeezed = 0
	s.released = false
}

// Clone returns an independent deep copy of s. Updates to either copy never
// affect the other.
func (s *State) Clone() *State {
	c := *s
	if s.buf != nil {
		c.buf = make([]byte, len(s.buf))
		copy(c.buf, s.buf)
		c.eng = s.eng.clone()
	}
	return &c
}

// Free wipes the buffered input and chaining value and releases them. Every
// later operation except Reset fails with ErrReleased.
func (s *State) Free() {
	if s.alg == nil || s.released {
		return
	}
	clear(s.buf)
	s.eng.reset()
	s.buf = nil
	s.eng = nil
	s.n = 0
	s.hi, s.lo = 0, 0
	s.released = true
}

// Write implements io.Writer and hash.Hash. It returns the error of Update.
func (s *State) Write(p []byte) (int, error) {
	if err := s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the current digest to b. For extendable-output algorithms it
// appends the next DefaultSize bytes of the output stream, squeezed from a
// copy so s is unchanged: before any Squeeze these are the first bytes of
// output, after one they continue from the current position. Sum panics on
// a released or zero State, matching hash.Hash's error-free signature.
func (s *State) Sum(b []byte) []byte {
	if err := s.check(); err != nil {
		panic(err)
	}
	out := make([]byte, s.Size())
	if s.id.Extendable() {
		if err := s.Clone().Squeeze(out); err != nil {
			panic(err)
		}
	} else {
		s.eng.clone().finish(s.buf[:s.n], s.hi, s.lo, out)
	}
	return append(b, out...)
}

// Read implements io.Reader for extendable-output States. It never returns
// io.EOF.
func (s *State) Read(p []byte) (int, error) {
	if err := s.Squeeze(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
