package crypto

import "errors"

// Sentinel errors returned by the vector cipher. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidKey is returned by [NewVectorCipher] when the supplied key
	// is not 16, 24 or 32 bytes long.
	ErrInvalidKey = errors.New("vector key must be 16, 24 or 32 bytes")

	// ErrEncrypt wraps any failure while sealing a vector (serialization,
	// nonce generation).
	ErrEncrypt = errors.New("vector encryption failed")

	// ErrDecrypt wraps any failure while opening a vector: authentication
	// tag mismatch, wrong nonce length, or a recovered payload that does
	// not deserialize into a float64 sequence. A failed decryption never
	// yields partial data.
	ErrDecrypt = errors.New("vector decryption failed")
)
