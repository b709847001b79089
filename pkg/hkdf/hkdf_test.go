package hkdf

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"testing"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"hashcore/pkg/digest"
)

func seq(from, to byte) []byte {
	var b []byte
	for v := from; ; v++ {
		b = append(b, v)
		if v == to {
			return b
		}
	}
}

func TestRFC5869(t *testing.T) {
	tests := []struct {
		name string
		ikm  []byte
		salt []byte
		info []byte
		n    int
		prk  string
		okm  string
	}{
		{
			name: "case 1",
			ikm:  bytes.Repeat([]byte{0x0b}, 22),
			salt: seq(0x00, 0x0c),
			info: seq(0xf0, 0xf9),
			n:    42,
			prk:  "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5",
			okm: "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf" +
				"34007208d5b887185865",
		},
		{
			name: "case 3 (empty salt and info)",
			ikm:  bytes.Repeat([]byte{0x0b}, 22),
			n:    42,
			prk:  "19ef24a32c717b167f33a91d6f648bdf96596776afdb6377ac434c1c293ccb04",
			okm: "8da4e775a563c18f715f802a063c5a31b8a11f5c5ee1879ec3454e5f3c738d2d" +
				"9d201395faa4b61a96c8",
		},
	}
	for _, tt := range tests {
		prk, err := Extract(digest.SHA2_256, tt.salt, tt.ikm)
		if err != nil {
			t.Fatalf("%s: Extract: %v", tt.name, err)
		}
		if want, _ := hex.DecodeString(tt.prk); !bytes.Equal(prk, want) {
			t.Errorf("%s: PRK = %x, want %x", tt.name, prk, want)
		}

		okm, err := Expand(digest.SHA2_256, prk, tt.info, tt.n)
		if err != nil {
			t.Fatalf("%s: Expand: %v", tt.name, err)
		}
		if want, _ := hex.DecodeString(tt.okm); !bytes.Equal(okm, want) {
			t.Errorf("%s: OKM = %x, want %x", tt.name, okm, want)
		}

		key, err := Key(digest.SHA2_256, tt.ikm, tt.salt, tt.info, tt.n)
		if err != nil || !bytes.Equal(key, okm) {
			t.Errorf("%s: Key = %x, %v; want %x", tt.name, key, err, okm)
		}
	}
}

func TestAgainstXCrypto(t *testing.T) {
	refs := map[digest.Algorithm]func() hash.Hash{
		digest.SHA2_256: sha256.New,
		digest.SHA2_384: sha512.New384,
		digest.SHA2_512: sha512.New,
		digest.SHA3_256: sha3.New256,
		digest.SHA3_512: sha3.New512,
	}
	secret := []byte("input keying material")
	salt := []byte("salt")
	info := []byte("context")
	for alg, ref := range refs {
		for _, n := range []int{0, 1, alg.Size(), alg.Size() + 1, 3*alg.Size() - 1, MaxLength(alg)} {
			got, err := Key(alg, secret, salt, info, n)
			if err != nil {
				t.Fatalf("%v n=%d: %v", alg, n, err)
			}
			want := make([]byte, n)
			if _, err := io.ReadFull(hkdf.New(ref, secret, salt, info), want); err != nil {
				t.Fatalf("x/crypto hkdf: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("HKDF-%v n=%d mismatch\ngot:  %x\nwant: %x", alg, n, got, want)
			}
		}
	}
}

func TestPluggableHash(t *testing.T) {
	// Our State is a hash.Hash, so x/crypto's HKDF can run on top of it.
	want, _ := Key(digest.SHA3_384, []byte("ikm"), nil, []byte("info"), 100)
	got := make([]byte, 100)
	io.ReadFull(hkdf.New(digest.SHA3_384.New, []byte("ikm"), nil, []byte("info")), got)
	if !bytes.Equal(got, want) {
		t.Fatalf("x/crypto hkdf over State = %x, want %x", got, want)
	}
}

func TestExpandLengthBound(t *testing.T) {
	prk := bytes.Repeat([]byte{1}, 32)
	if _, err := Expand(digest.SHA2_256, prk, nil, 255*32); err != nil {
		t.Fatalf("Expand at the bound: %v", err)
	}
	for _, n := range []int{255*32 + 1, -1} {
		if _, err := Expand(digest.SHA2_256, prk, nil, n); !errors.Is(err, digest.ErrInvalidParameter) {
			t.Errorf("Expand(%d): err = %v, want ErrInvalidParameter", n, err)
		}
	}
	if okm, err := Expand(digest.SHA2_256, prk, nil, 0); err != nil || len(okm) != 0 {
		t.Errorf("Expand(0) = %x, %v", okm, err)
	}
}

func TestExtendableRejected(t *testing.T) {
	if _, err := Extract(digest.SHAKE128, nil, []byte("ikm")); !errors.Is(err, digest.ErrWrongAlgorithm) {
		t.Errorf("Extract(SHAKE128): err = %v, want ErrWrongAlgorithm", err)
	}
	if _, err := Expand(digest.SHAKE256, []byte("prk"), nil, 10); !errors.Is(err, digest.ErrWrongAlgorithm) {
		t.Errorf("Expand(SHAKE256): err = %v, want ErrWrongAlgorithm", err)
	}
}

func TestPrefixProperty(t *testing.T) {
	prk, _ := Extract(digest.SHA2_512, []byte("s"), []byte("k"))
	long, _ := Expand(digest.SHA2_512, prk, []byte("i"), 200)
	short, _ := Expand(digest.SHA2_512, prk, []byte("i"), 70)
	if !bytes.Equal(long[:70], short) {
		t.Fatal("shorter output is not a prefix of longer output")
	}
}
