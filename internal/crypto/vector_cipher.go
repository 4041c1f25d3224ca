// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// vectorCipher is the AES-GCM implementation of [VectorCipher].
//
// Vectors are serialized as big-endian IEEE-754 binary64 values, 8 bytes per
// component. The binary encoding round-trips exactly: no precision is lost
// across encrypt/decrypt, unlike a decimal text representation.
type vectorCipher struct {
	aead cipher.AEAD
}

// NewVectorCipher constructs a [VectorCipher] from a raw AES key.
// The key must be 16, 24 or 32 bytes (AES-128/192/256); any other length
// yields [ErrInvalidKey]. The cipher never generates or persists the key
// itself — it is supplied once from the process configuration.
func NewVectorCipher(key []byte) (VectorCipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKey, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return &vectorCipher{aead: gcm}, nil
}

// EncryptVector implements [VectorCipher]. Every call draws a fresh nonce
// from the OS CSPRNG; nonces are never reused with the same key. No
// associated data is bound beyond the vector itself.
func (c *vectorCipher) EncryptVector(vector []float64) (ciphertext, nonce []byte, err error) {
	if len(vector) == 0 {
		return nil, nil, fmt.Errorf("%w: empty vector", ErrEncrypt)
	}

	plaintext := encodeVector(vector)

	nonce = make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("%w: generate nonce: %w", ErrEncrypt, err)
	}

	ciphertext = c.aead.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// DecryptVector implements [VectorCipher]. Any tampering with ciphertext or
// nonce fails the authentication tag check and is rejected.
func (c *vectorCipher) DecryptVector(ciphertext, nonce []byte) ([]float64, error) {
	if len(nonce) != c.aead.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrDecrypt, c.aead.NonceSize(), len(nonce))
	}

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	vector, err := decodeVector(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return vector, nil
}

// GenerateKey produces a fresh random 32-byte (AES-256) key and returns it
// as a standard-base64 string, ready to be stored in APP_VECTOR_KEY.
// Exposed independently for operator tooling (cmd/keygen).
func GenerateKey() (string, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate vector key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// encodeVector serializes a vector as big-endian IEEE-754 binary64 values.
func encodeVector(vector []float64) []byte {
	buf := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

// decodeVector is the inverse of encodeVector. It rejects payloads that are
// empty or not a whole number of binary64 values.
func decodeVector(data []byte) ([]float64, error) {
	if len(data) == 0 || len(data)%8 != 0 {
		return nil, fmt.Errorf("payload of %d bytes is not a float64 sequence", len(data))
	}

	vector := make([]float64, len(data)/8)
	for i := range vector {
		vector[i] = math.Float64frombits(binary.BigEndian.Uint64(data[i*8:]))
	}
	return vector, nil
}
