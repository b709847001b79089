package digest

import (
	"hashcore/pkg/keccak"
	"hashcore/pkg/sha2"
)

// engine is the per-family compression strategy driven by State. The set of
// implementations is closed: sha256Engine, sha512Engine and spongeEngine.
type engine interface {
	// compress absorbs whole blocks; len(blocks) is a multiple of the block size.
	compress(blocks []byte)

	// finish pads tail, compresses the last block(s) and writes the digest
	// into out. It consumes the receiver, so State calls it on a clone.
	finish(tail []byte, hi, lo uint64, out []byte)

	reset()
	clone() engine
}

type sha256Engine struct {
	h    [8]uint32
	init *[8]uint32
}

func (e *sha256Engine) compress(blocks []byte) { sha2.Block256(&e.h, blocks) }

func (e *sha256Engine) finish(tail []byte, _, lo uint64, out []byte) {
	sha2.Last256(&e.h, lo, tail)
	sha2.PutState256(out, &e.h)
}

func (e *sha256Engine) reset() { e.h = *e.init }

func (e *sha256Engine) clone() engine {
	c := *e
	return &c
}

type sha512Engine struct {
	h    [8]uint64
	init *[8]uint64
}

func (e *sha512Engine) compress(blocks []byte) { sha2.Block512(&e.h, blocks) }

func (e *sha512Engine) finish(tail []byte, hi, lo uint64, out []byte) {
	sha2.Last512(&e.h, hi, lo, tail)
	sha2.PutState512(out, &e.h)
}

func (e *sha512Engine) reset() { e.h = *e.init }

func (e *sha512Engine) clone() engine {
	c := *e
	return &c
}

// spongeEngine drives the Keccak sponge. After pad it doubles as the
// squeeze cursor: off is the number of bytes of the current rate-sized
// chunk already handed out.
type spongeEngine struct {
	a      keccak.State
	rate   int
	suffix byte
	off    int
}

func (e *spongeEngine) compress(blocks []byte) {
	for len(blocks) >= e.rate {
		e.a.AbsorbBlock(blocks[:e.rate])
		blocks = blocks[e.rate:]
	}
}

func (e *spongeEngine) finish(tail []byte, _, _ uint64, out []byte) {
	e.pad(tail)
	e.squeeze(out)
}

func (e *spongeEngine) pad(tail []byte) {
	e.a.Pad(e.rate, e.suffix, tail)
	e.off = 0
}

func (e *spongeEngine) squeeze(out []byte) {
	for len(out) > 0 {
		if e.off == e.rate {
			e.a.Permute()
			e.off = 0
		}
		n := min(e.rate-e.off, len(out))
		e.a.ReadAt(out[:n], e.off)
		e.off += n
		out = out[n:]
	}
}

func (e *spongeEngine) reset() {
	e.a = keccak.State{}
	e.off = 0
}

func (e *spongeEngine) clone() engine {
	c := *e
	return &c
}

func newEngine(d *descriptor) engine {
	var e engine
	switch d.family {
	case familySHA256:
		e = &sha256Engine{init: d.init256}
	case familySHA512:
		e = &sha512Engine{init: d.init512}
	default:
		e = &spongeEngine{rate: d.blockSize, suffix: d.suffix}
	}
	e.reset()
	return e
}
