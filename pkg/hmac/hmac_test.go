package hmac

import (
	"bytes"
	stdhmac "crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"testing"

	"golang.org/x/crypto/sha3"

	"hashcore/pkg/digest"
)

var _ hash.Hash = (*MAC)(nil)

// RFC 4231 test cases 1, 2 and 6.
func TestRFC4231(t *testing.T) {
	tests := []struct {
		name   string
		key    []byte
		data   []byte
		sha224 string
		sha256 string
		sha384 string
		sha512 string
	}{
		{
			name:   "case 1",
			key:    bytes.Repeat([]byte{0x0b}, 20),
			data:   []byte("Hi There"),
			sha224: "896fb1128abbdf196832107cd49df33f47b4b1169912ba4f53684b22",
			sha256: "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
			sha384: "afd03944d84895626b0825f4ab46907f15f9dadbe4101ec682aa034c7cebc59c" +
				"faea9ea9076ede7f4af152e8b2fa9cb6",
			sha512: "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
				"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854",
		},
		{
			name:   "case 2",
			key:    []byte("Jefe"),
			data:   []byte("what do ya want for nothing?"),
			sha224: "a30e01098bc6dbbf45690f3a7e9e6d0f8bbea2a39e6148008fd05e44",
			sha256: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
			sha384: "af45d2e376484031617f78d2b58a6b1b9c7ef464f5a01b47e42ec3736322445e" +
				"8e2240ca5e69e2c78b3239ecfab21649",
			sha512: "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554" +
				"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
		},
		{
			name:   "case 6",
			key:    bytes.Repeat([]byte{0xaa}, 131),
			data:   []byte("Test Using Larger Than Block-Size Key - Hash Key First"),
			sha224: "95e9a0db962095adaebe9b2d6f0dbce2d499f112f2d2b7273fa6870e",
			sha256: "60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
			sha384: "4ece084485813e9088d2c63a041bc5b44f9ef1012a2b588f3cd11f05033ac4c6" +
				"0c2ef6ab4030fe8296248df163f44952",
			sha512: "80b24263c7c1a3ebb71493c1dd7be8b49b46d1f41b4aeec1121b013783f8f352" +
				"6b56d037e05f2598bd0fd2215d6a1e5295e64f73f63f0aec8b915a985d786598",
		},
	}
	for _, tt := range tests {
		for alg, want := range map[digest.Algorithm]string{
			digest.SHA2_224: tt.sha224,
			digest.SHA2_256: tt.sha256,
			digest.SHA2_384: tt.sha384,
			digest.SHA2_512: tt.sha512,
		} {
			got, err := Sum(alg, tt.key, tt.data)
			if err != nil {
				t.Fatalf("%s %v: %v", tt.name, alg, err)
			}
			w, _ := hex.DecodeString(want)
			if !bytes.Equal(got, w) {
				t.Errorf("%s HMAC-%v = %x, want %x", tt.name, alg, got, w)
			}
		}
	}
}

func TestAgainstStdlib(t *testing.T) {
	refs := map[digest.Algorithm]func() hash.Hash{
		digest.SHA2_224: sha256.New224,
		digest.SHA2_256: sha256.New,
		digest.SHA2_384: sha512.New384,
		digest.SHA2_512: sha512.New,
		digest.SHA3_224: sha3.New224,
		digest.SHA3_256: sha3.New256,
		digest.SHA3_384: sha3.New384,
		digest.SHA3_512: sha3.New512,
	}
	msg := bytes.Repeat([]byte("message "), 40)
	for alg, ref := range refs {
		// Empty, short, exactly one block, and longer than a block.
		for _, klen := range []int{0, 16, alg.BlockSize(), alg.BlockSize() + 1, 300} {
			key := bytes.Repeat([]byte{0x5a}, klen)
			got, err := Sum(alg, key, msg)
			if err != nil {
				t.Fatalf("%v: %v", alg, err)
			}
			std := stdhmac.New(ref, key)
			std.Write(msg)
			if want := std.Sum(nil); !bytes.Equal(got, want) {
				t.Errorf("HMAC-%v keylen=%d = %x, want %x", alg, klen, got, want)
			}
		}
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	key := []byte("streaming key")
	m, err := New(digest.SHA3_256, key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Write([]byte("part one, "))
	first := m.Sum(nil)
	m.Write([]byte("part two"))
	second := m.Sum(nil)

	want1, _ := Sum(digest.SHA3_256, key, []byte("part one, "))
	want2, _ := Sum(digest.SHA3_256, key, []byte("part one, part two"))
	if !bytes.Equal(first, want1) || !bytes.Equal(second, want2) {
		t.Fatalf("streaming tags %x / %x, want %x / %x", first, second, want1, want2)
	}

	m.Reset()
	m.Write([]byte("part one, "))
	if got := m.Sum(nil); !bytes.Equal(got, want1) {
		t.Fatalf("after Reset tag = %x, want %x", got, want1)
	}
}

func TestRejectsExtendable(t *testing.T) {
	for _, alg := range []digest.Algorithm{digest.SHAKE128, digest.SHAKE256} {
		if _, err := Sum(alg, []byte("k"), []byte("m")); !errors.Is(err, digest.ErrWrongAlgorithm) {
			t.Errorf("Sum(%v): err = %v, want ErrWrongAlgorithm", alg, err)
		}
	}
	if _, err := New(0, nil); !errors.Is(err, digest.ErrInvalidParameter) {
		t.Errorf("New(0): err = %v, want ErrInvalidParameter", err)
	}
}

func TestEqual(t *testing.T) {
	a, _ := Sum(digest.SHA2_256, []byte("k"), []byte("m"))
	b, _ := Sum(digest.SHA2_256, []byte("k"), []byte("m"))
	c, _ := Sum(digest.SHA2_256, []byte("k"), []byte("n"))
	if !Equal(a, b) {
		t.Error("equal tags compared unequal")
	}
	if Equal(a, c) || Equal(a, a[:16]) {
		t.Error("different tags compared equal")
	}
}
