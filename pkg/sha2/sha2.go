// Package sha2 implements the SHA-2 compression functions from FIPS 180-4.
//
// The package only knows about chaining values and whole blocks. Buffering of
// partial input and length bookkeeping belong to the caller:
//
//	Block256 / Block512  compress every whole block of the input in sequence
//	Last256  / Last512   pad the final partial block and compress it
//
// SHA-224 and SHA-256 share the 32-bit word core; SHA-384 and SHA-512 share
// the 64-bit one. Only the initial chaining value and the output length differ.
package sha2

import "encoding/binary"

const (
	// BlockSize256 is the block length of SHA-224 and SHA-256 in bytes.
	BlockSize256 = 64

	// BlockSize512 is the block length of SHA-384 and SHA-512 in bytes.
	BlockSize512 = 128

	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

// Initial chaining values (FIPS 180-4 section 5.3).
var (
	Init224 = [8]uint32{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
	Init256 = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	Init384 = [8]uint64{
		0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
		0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
	}
	Init512 = [8]uint64{
		0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
		0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	}
)

// PutState256 writes the first len(out) bytes of the big-endian chaining value.
// out must be at most 32 bytes.
func PutState256(out []byte, h *[8]uint32) {
	var full [Size256]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(full[4*i:], v)
	}
	copy(out, full[:len(out)])
}

// PutState512 writes the first len(out) bytes of the big-endian chaining value.
// out must be at most 64 bytes.
func PutState512(out []byte, h *[8]uint64) {
	var full [Size512]byte
	for i, v := range h {
		binary.BigEndian.PutUint64(full[8*i:], v)
	}
	copy(out, full[:len(out)])
}

// Last256 pads tail and compresses the final one or two blocks.
//
// total is the number of bytes absorbed over the whole message, including
// tail. tail must be shorter than one block. Callers enforce that total*8
// fits in 64 bits.
func Last256(h *[8]uint32, total uint64, tail []byte) {
	var pad [2 * BlockSize256]byte
	n := copy(pad[:], tail)
	pad[n] = 0x80

	// 0x80 plus the 8-byte length must fit behind the tail.
	blocks := 1
	if n+1+8 > BlockSize256 {
		blocks = 2
	}
	end := blocks * BlockSize256
	binary.BigEndian.PutUint64(pad[end-8:end], total<<3)
	Block256(h, pad[:end])
}

// Last512 pads tail and compresses the final one or two blocks.
//
// The total byte count is given as a 128-bit (hi, lo) pair. It is encoded as
// a 128-bit big-endian bit count in the last 16 bytes of the final block.
func Last512(h *[8]uint64, hi, lo uint64, tail []byte) {
	var pad [2 * BlockSize512]byte
	n := copy(pad[:], tail)
	pad[n] = 0x80

	blocks := 1
	if n+1+16 > BlockSize512 {
		blocks = 2
	}
	end := blocks * BlockSize512
	binary.BigEndian.PutUint64(pad[end-16:end-8], hi<<3|lo>>61)
	binary.BigEndian.PutUint64(pad[end-8:end], lo<<3)
	Block512(h, pad[:end])
}
