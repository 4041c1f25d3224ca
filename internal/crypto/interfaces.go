package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vector_cipher_mock.go -package=mock

// VectorCipher protects a biometric feature vector in storage while allowing
// exact recovery for matching. Implementations must satisfy the round-trip
// law DecryptVector(EncryptVector(v)) == v on the numeric values, and must
// detect any tampering with ciphertext or nonce rather than silently
// producing a wrong vector.
type VectorCipher interface {
	// EncryptVector serializes vector to its canonical binary form, draws a
	// fresh random 12-byte nonce, and seals it with AES-GCM. The nonce is
	// returned separately from the ciphertext: the two are persisted as an
	// independent pair. Errors wrap [ErrEncrypt].
	EncryptVector(vector []float64) (ciphertext, nonce []byte, err error)

	// DecryptVector verifies the authentication tag and reconstructs the
	// vector. Errors wrap [ErrDecrypt]; no partial data is ever returned.
	DecryptVector(ciphertext, nonce []byte) ([]float64, error)
}
