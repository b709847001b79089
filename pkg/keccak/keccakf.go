// Package keccak implements the Keccak-f[1600] permutation and the sponge
// operations the SHA-3 and SHAKE functions are built from (FIPS 202).
//
// The state is kept as 25 little-endian 64-bit lanes. Lane i holds state bytes
// 8*i through 8*i+7, so byte-oriented absorb and squeeze work directly on the
// FIPS 202 byte ordering.
package keccak

import "math/bits"

const (
	// Lanes is the number of 64-bit lanes in the state.
	Lanes = 25

	// StateSize is the size of the state in bytes (1600 bits).
	StateSize = 8 * Lanes

	// Rounds is the number of rounds of Keccak-f[1600].
	Rounds = 24
)

// roundConstants are injected into lane 0 by the ι step.
var roundConstants = [Rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotations and piLanes walk the ρ and π steps along the single cycle of
// the lane permutation starting at lane 1.
var (
	rotations = [24]int{
		1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
		27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
	}
	piLanes = [24]int{
		10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
		15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
	}
)

// State is the 1600-bit Keccak state.
type State [Lanes]uint64

// Permute applies Keccak-f[1600] to s.
func (s *State) Permute() {
	var c [5]uint64
	for round := 0; round < Rounds; round++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = s[x] ^ s[x+5] ^ s[x+10] ^ s[x+15] ^ s[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < Lanes; y += 5 {
				s[y+x] ^= d
			}
		}

		// ρ and π
		t := s[1]
		for i := 0; i < 24; i++ {
			j := piLanes[i]
			next := s[j]
			s[j] = bits.RotateLeft64(t, rotations[i])
			t = next
		}

		// χ
		for y := 0; y < Lanes; y += 5 {
			for x := 0; x < 5; x++ {
				c[x] = s[y+x]
			}
			for x := 0; x < 5; x++ {
				s[y+x] = c[x] ^ (^c[(x+1)%5] & c[(x+2)%5])
			}
		}

		// ι
		s[0] ^= roundConstants[round]
	}
}
