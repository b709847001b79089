package digest

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding"
	"hash"
	"io"
	"testing"
)

var (
	_ hash.Hash                  = (*State)(nil)
	_ io.Reader                  = (*State)(nil)
	_ encoding.BinaryMarshaler   = (*State)(nil)
	_ encoding.BinaryUnmarshaler = (*State)(nil)
	_ interface {
		AppendBinary([]byte) ([]byte, error)
	} = (*State)(nil) // encoding.BinaryAppender (Go 1.24+)
)

func TestSnapshotRoundTrip(t *testing.T) {
	for _, alg := range Algorithms {
		s, _ := New(alg)
		s.Update(testInput(alg.BlockSize() + 5))

		snap, err := s.MarshalBinary()
		if err != nil {
			t.Fatalf("%v: MarshalBinary: %v", alg, err)
		}
		var r State
		if err := r.UnmarshalBinary(snap); err != nil {
			t.Fatalf("%v: UnmarshalBinary: %v", alg, err)
		}
		if r.Algorithm() != alg {
			t.Fatalf("restored algorithm = %v, want %v", r.Algorithm(), alg)
		}

		s.Update([]byte("tail"))
		r.Update([]byte("tail"))
		if got, want := output(t, &r), output(t, s); !bytes.Equal(got, want) {
			t.Errorf("%v: restored state diverged\ngot:  %x\nwant: %x", alg, got, want)
		}
	}
}

func TestSnapshotMidSqueeze(t *testing.T) {
	s, _ := New(SHAKE128)
	s.Update([]byte("snapshot while squeezing"))
	s.Squeeze(make([]byte, 200))

	snap, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var r State
	if err := r.UnmarshalBinary(snap); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !r.Finalized() {
		t.Fatal("restored state lost the finalized flag")
	}

	want := make([]byte, 100)
	got := make([]byte, 100)
	s.Squeeze(want)
	r.Squeeze(got)
	if !bytes.Equal(got, want) {
		t.Fatalf("restored squeeze = %x, want %x", got, want)
	}
}

func TestSnapshotRejectsCorruption(t *testing.T) {
	s, _ := New(SHA3_256)
	s.Update([]byte("x"))
	good, _ := s.MarshalBinary()

	corrupt := func(f func(b []byte) []byte) []byte {
		b := append([]byte(nil), good...)
		return f(b)
	}
	cases := map[string][]byte{
		"empty":         nil,
		"magic":         corrupt(func(b []byte) []byte { b[0] = 'X'; return b }),
		"algorithm":     corrupt(func(b []byte) []byte { b[4] = 0xee; return b }),
		"fixed final":   corrupt(func(b []byte) []byte { b[5] = flagFinalized; return b }),
		"unknown flag":  corrupt(func(b []byte) []byte { b[5] = 0x80; return b }),
		"truncated":     good[:len(good)-1],
		"pending":       corrupt(func(b []byte) []byte { b[snapshotHeader-2], b[snapshotHeader-1] = 0xff, 0xff; return b }),
		"pending count": corrupt(func(b []byte) []byte { b[snapshotHeader-1] = 0; return b }),
		"squeezed":      corrupt(func(b []byte) []byte { b[snapshotHeader-3] = 1; return b }),
	}

	sha, _ := New(SHA2_256)
	sha.Update([]byte("abc"))
	b, _ := sha.MarshalBinary()
	b[snapshotHeader-1] = 0
	cases["sha2 pending count"] = b

	xof, _ := New(SHAKE128)
	xof.Update([]byte("abc"))
	xof.Squeeze(make([]byte, 5))
	b, _ = xof.MarshalBinary()
	b[snapshotHeader-1] = 3
	cases["pending after squeeze"] = b

	for name, b := range cases {
		var r State
		if err := r.UnmarshalBinary(b); err == nil {
			t.Errorf("%s: UnmarshalBinary accepted a corrupt snapshot", name)
		}
	}
}

func TestHashInterfaceWithStdlibHMAC(t *testing.T) {
	key := []byte("interop key")
	msg := []byte("interop message")

	ours := hmac.New(SHA2_256.New, key)
	ours.Write(msg)
	std := hmac.New(sha256.New, key)
	std.Write(msg)
	if got, want := ours.Sum(nil), std.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("crypto/hmac over State = %x, want %x", got, want)
	}
}

func TestSumOnExtendable(t *testing.T) {
	s, _ := New(SHAKE128)
	s.Write([]byte("sum"))
	got := s.Sum([]byte("prefix"))
	want, _ := ShakeSum128([]byte("sum"), SHAKE128.DefaultSize())
	if !bytes.Equal(got, append([]byte("prefix"), want...)) {
		t.Fatalf("Sum = %x, want prefix||%x", got, want)
	}
	if s.Finalized() {
		t.Fatal("Sum finalized the receiver")
	}
}

func TestSumAfterSqueeze(t *testing.T) {
	s, _ := New(SHAKE256)
	s.Write([]byte("sum"))
	ref, _ := ShakeSum256([]byte("sum"), 5+SHAKE256.DefaultSize())

	s.Squeeze(make([]byte, 5))
	if got := s.Sum(nil); !bytes.Equal(got, ref[5:]) {
		t.Fatalf("Sum after squeeze = %x, want %x", got, ref[5:])
	}
	next := make([]byte, 4)
	s.Squeeze(next)
	if !bytes.Equal(next, ref[5:9]) {
		t.Fatalf("Squeeze after Sum = %x, want %x", next, ref[5:9])
	}
}
