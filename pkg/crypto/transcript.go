package crypto

import (
	"encoding/binary"
	"fmt"

	"hashcore/pkg/digest"
)

// Transcript is a running digest over a sequence of labeled messages. Each
// entry is framed as
//
//	len(label) (8) | label | len(data) (8) | data
//
// so distinct sequences never produce the same byte stream.
type Transcript struct {
	state *digest.State
}

// NewTranscript starts a transcript under alg, bound to a protocol name.
func NewTranscript(alg digest.Algorithm, protocol string) (*Transcript, error) {
	s, err := digest.New(alg)
	if err != nil {
		return nil, fmt.Errorf("new transcript: %w", err)
	}
	t := &Transcript{state: s}
	if err := t.Append("protocol", []byte(protocol)); err != nil {
		return nil, err
	}
	return t, nil
}

// Append adds a labeled message.
func (t *Transcript) Append(label string, data []byte) error {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(label)))
	if err := t.state.Update(n[:]); err != nil {
		return fmt.Errorf("append %q: %w", label, err)
	}
	if err := t.state.Update([]byte(label)); err != nil {
		return fmt.Errorf("append %q: %w", label, err)
	}
	binary.BigEndian.PutUint64(n[:], uint64(len(data)))
	if err := t.state.Update(n[:]); err != nil {
		return fmt.Errorf("append %q: %w", label, err)
	}
	if err := t.state.Update(data); err != nil {
		return fmt.Errorf("append %q: %w", label, err)
	}
	return nil
}

// Sum returns the current transcript hash (DefaultSize bytes for SHAKE)
// without ending the transcript.
func (t *Transcript) Sum() []byte {
	return t.state.Sum(nil)
}

// Challenge appends label to a fork of the transcript and returns n bytes
// of output from it. For fixed-length algorithms n must equal the digest size.
func (t *Transcript) Challenge(label string, n int) ([]byte, error) {
	f := t.Fork()
	defer f.state.Free()
	if err := f.Append("challenge", []byte(label)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if f.state.Extendable() {
		if err := f.state.Squeeze(out); err != nil {
			return nil, fmt.Errorf("challenge %q: %w", label, err)
		}
		return out, nil
	}
	if err := f.state.Digest(out); err != nil {
		return nil, fmt.Errorf("challenge %q: %w", label, err)
	}
	return out, nil
}

// Fork returns an independent copy of the transcript.
func (t *Transcript) Fork() *Transcript {
	return &Transcript{state: t.state.Clone()}
}

// Snapshot returns a serialized snapshot of the running transcript state.
func (t *Transcript) Snapshot() ([]byte, error) {
	return t.state.MarshalBinary()
}

// Restore restores a previously snapshotted transcript state.
func (t *Transcript) Restore(snapshot []byte) error {
	s := new(digest.State)
	if err := s.UnmarshalBinary(snapshot); err != nil {
		return fmt.Errorf("restore transcript: %w", err)
	}
	t.state = s
	return nil
}
