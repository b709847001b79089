// Package digest implements streaming SHA-2, SHA-3 and SHAKE hashing on top
// of the compression cores in pkg/sha2 and pkg/keccak.
//
// A State absorbs input incrementally and can be read at any point:
//
//	s, _ := digest.New(digest.SHA3_256)
//	s.Update(part1)
//	s.Update(part2)
//	out := make([]byte, s.Size())
//	s.Digest(out)
//
// Fixed-length algorithms compute the digest on a copy, so reading never
// disturbs later updates. SHAKE128 and SHAKE256 instead finalize on the first
// Squeeze and then produce one continuous output stream.
package digest

import (
	"fmt"
	"hash"
	"math"
	"strings"

	"hashcore/pkg/keccak"
	"hashcore/pkg/sha2"
)

//revive:disable:var-naming

// Algorithm identifies one of the supported hash functions.
type Algorithm uint8

const (
	SHA2_224 Algorithm = iota + 1
	SHA2_256
	SHA2_384
	SHA2_512
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	SHAKE128
	SHAKE256
)

type family uint8

const (
	familySHA256 family = iota + 1 // 32-bit word SHA-2
	familySHA512                   // 64-bit word SHA-2
	familyKeccak
)

// descriptor is the constant parameter set of an algorithm.
type descriptor struct {
	name      string
	family    family
	blockSize int
	size      int // 0 for extendable output
	suffix    byte
	init256   *[8]uint32
	init512   *[8]uint64

	// Maximum input length in bytes as a 128-bit (hi, lo) pair.
	maxHi, maxLo uint64
}

var descriptors = [...]descriptor{
	SHA2_224: {name: "sha2-224", family: familySHA256, blockSize: sha2.BlockSize256, size: sha2.Size224,
		init256: &sha2.Init224, maxLo: 1<<61 - 1},
	SHA2_256: {name: "sha2-256", family: familySHA256, blockSize: sha2.BlockSize256, size: sha2.Size256,
		init256: &sha2.Init256, maxLo: 1<<61 - 1},
	SHA2_384: {name: "sha2-384", family: familySHA512, blockSize: sha2.BlockSize512, size: sha2.Size384,
		init512: &sha2.Init384, maxHi: 1<<61 - 1, maxLo: math.MaxUint64},
	SHA2_512: {name: "sha2-512", family: familySHA512, blockSize: sha2.BlockSize512, size: sha2.Size512,
		init512: &sha2.Init512, maxHi: 1<<61 - 1, maxLo: math.MaxUint64},
	SHA3_224: {name: "sha3-224", family: familyKeccak, blockSize: 144, size: 28, suffix: keccak.SuffixSHA3, maxLo: math.MaxUint64},
	SHA3_256: {name: "sha3-256", family: familyKeccak, blockSize: 136, size: 32, suffix: keccak.SuffixSHA3, maxLo: math.MaxUint64},
	SHA3_384: {name: "sha3-384", family: familyKeccak, blockSize: 104, size: 48, suffix: keccak.SuffixSHA3, maxLo: math.MaxUint64},
	SHA3_512: {name: "sha3-512", family: familyKeccak, blockSize: 72, size: 64, suffix: keccak.SuffixSHA3, maxLo: math.MaxUint64},
	SHAKE128: {name: "shake128", family: familyKeccak, blockSize: 168, suffix: keccak.SuffixSHAKE, maxLo: math.MaxUint64},
	SHAKE256: {name: "shake256", family: familyKeccak, blockSize: 136, suffix: keccak.SuffixSHAKE, maxLo: math.MaxUint64},
}

// Algorithms lists every supported algorithm in declaration order.
var Algorithms = []Algorithm{
	SHA2_224, SHA2_256, SHA2_384, SHA2_512,
	SHA3_224, SHA3_256, SHA3_384, SHA3_512,
	SHAKE128, SHAKE256,
}

// MaxBlockSize is the largest block length of any algorithm (SHAKE128's rate).
const MaxBlockSize = 168

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= SHA2_224 && a <= SHAKE256
}

func (a Algorithm) desc() *descriptor {
	return &descriptors[a]
}

// String returns the canonical lower-case name, e.g. "sha3-256".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return a.desc().name
}

// BlockSize returns the block length in bytes; the rate for the Keccak family.
func (a Algorithm) BlockSize() int {
	if !a.Valid() {
		return 0
	}
	return a.desc().blockSize
}

// Size returns the digest length in bytes, or 0 for extendable-output algorithms.
func (a Algorithm) Size() int {
	if !a.Valid() {
		return 0
	}
	return a.desc().size
}

// Extendable reports whether a produces output of caller-chosen length.
func (a Algorithm) Extendable() bool {
	return a == SHAKE128 || a == SHAKE256
}

// DefaultSize is the output length used where an extendable-output function
// has to act as a fixed hash (hash.Hash.Sum): twice the security level.
func (a Algorithm) DefaultSize() int {
	switch a {
	case SHAKE128:
		return 32
	case SHAKE256:
		return 64
	}
	return a.Size()
}

// Capacity returns the Keccak capacity in bytes, or 0 for SHA-2.
func (a Algorithm) Capacity() int {
	if !a.Valid() || a.desc().family != familyKeccak {
		return 0
	}
	return keccak.StateSize - a.desc().blockSize
}

// New returns a fresh State for a as a hash.Hash. It panics if a is not
// valid, which makes the method value usable wherever a func() hash.Hash
// constructor is expected.
func (a Algorithm) New() hash.Hash {
	s, err := New(a)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseAlgorithm maps a name such as "sha2-256", "SHA3_512" or "shake128"
// to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	switch norm {
	case "sha224":
		norm = "sha2-224"
	case "sha256":
		norm = "sha2-256"
	case "sha384":
		norm = "sha2-384"
	case "sha512":
		norm = "sha2-512"
	}
	for _, a := range Algorithms {
		if a.desc().name == norm {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q: %w", name, ErrInvalidParameter)
}
