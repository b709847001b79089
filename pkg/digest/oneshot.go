package digest

import "fmt"

// Hash returns the digest of input under a fixed-length algorithm. It is
// bit-identical to New, Update and Digest on the same input.
func Hash(alg Algorithm, input []byte) ([]byte, error) {
	if alg.Extendable() {
		return nil, fmt.Errorf("hash with %v: %w", alg, ErrWrongAlgorithm)
	}
	s, err := New(alg)
	if err != nil {
		return nil, err
	}
	defer s.Free()

	if err := s.Update(input); err != nil {
		return nil, err
	}
	out := make([]byte, s.Size())
	if err := s.Digest(out); err != nil {
		return nil, err
	}
	return out, nil
}

// XOF returns n bytes of extendable output of input under alg.
func XOF(alg Algorithm, input []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("xof output length %d: %w", n, ErrInvalidParameter)
	}
	s, err := New(alg)
	if err != nil {
		return nil, err
	}
	defer s.Free()

	if err := s.Update(input); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if err := s.Squeeze(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShakeSum128 returns n bytes of SHAKE128 output.
func ShakeSum128(input []byte, n int) ([]byte, error) {
	return XOF(SHAKE128, input, n)
}

// ShakeSum256 returns n bytes of SHAKE256 output.
func ShakeSum256(input []byte, n int) ([]byte, error) {
	return XOF(SHAKE256, input, n)
}
