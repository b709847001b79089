package keccak

import (
	"encoding/binary"
	"fmt"
)

// Domain separation suffixes, already including the first bit of pad10*1.
const (
	SuffixKeccak byte = 0x01
	SuffixSHA3   byte = 0x06
	SuffixSHAKE  byte = 0x1f
)

// XORBytes XORs p into the state starting at byte 0. p must not be longer
// than StateSize.
func (s *State) XORBytes(p []byte) {
	i := 0
	for ; len(p) >= 8; i++ {
		s[i] ^= binary.LittleEndian.Uint64(p)
		p = p[8:]
	}
	for j, b := range p {
		s[i] ^= uint64(b) << (8 * j)
	}
}

// xorByte XORs b into state byte pos.
func (s *State) xorByte(pos int, b byte) {
	s[pos/8] ^= uint64(b) << (8 * (pos % 8))
}

// ReadAt copies state bytes [off, off+len(dst)) into dst.
func (s *State) ReadAt(dst []byte, off int) {
	for i := range dst {
		pos := off + i
		dst[i] = byte(s[pos/8] >> (8 * (pos % 8)))
	}
}

// AbsorbBlock XORs a rate-sized block into the state and permutes it.
func (s *State) AbsorbBlock(block []byte) {
	s.XORBytes(block)
	s.Permute()
}

// Pad absorbs the final partial block: tail, the domain suffix and the
// closing bit of pad10*1, followed by one permutation. len(tail) must be
// less than rate.
func (s *State) Pad(rate int, suffix byte, tail []byte) {
	s.XORBytes(tail)
	s.xorByte(len(tail), suffix)
	s.xorByte(rate-1, 0x80)
	s.Permute()
}

// Squeeze fills out from a padded state, permuting between rate-sized chunks.
// The first chunk is read from the state as it is; a fresh permutation only
// happens before each following chunk.
func (s *State) Squeeze(rate int, out []byte) {
	for {
		n := min(rate, len(out))
		s.ReadAt(out[:n], 0)
		out = out[n:]
		if len(out) == 0 {
			return
		}
		s.Permute()
	}
}

// ValidRate reports whether rate is usable with this package: a positive
// multiple of 8 bytes below StateSize.
func ValidRate(rate int) bool {
	return rate > 0 && rate < StateSize && rate%8 == 0
}

// Sum runs the full Keccak sponge over input with the given rate and domain
// suffix and writes len(out) bytes of output. The capacity is
// StateSize-rate bytes.
func Sum(rate int, suffix byte, input, out []byte) error {
	if !ValidRate(rate) {
		return fmt.Errorf("keccak: invalid rate %d", rate)
	}
	if suffix == 0 {
		return fmt.Errorf("keccak: zero domain suffix")
	}

	var s State
	for len(input) >= rate {
		s.AbsorbBlock(input[:rate])
		input = input[rate:]
	}
	s.Pad(rate, suffix, input)
	if len(out) > 0 {
		s.Squeeze(rate, out)
	}
	return nil
}
