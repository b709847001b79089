package crypto

import "hashcore/pkg/digest"

// SHA256 computes the SHA-256 hash of data.
func SHA256(data []byte) [32]byte {
	return [32]byte(sum(digest.SHA2_256, data))
}

// SHA512 computes the SHA-512 hash of data.
func SHA512(data []byte) [64]byte {
	return [64]byte(sum(digest.SHA2_512, data))
}

// SHA512Parts computes the SHA-512 hash of the concatenation of parts.
func SHA512Parts(parts ...[]byte) [64]byte {
	return [64]byte(sum(digest.SHA2_512, parts...))
}
