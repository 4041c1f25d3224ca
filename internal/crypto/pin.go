package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for PIN digests, following the OWASP (2024)
// recommendation: 1 iteration, 64 MiB memory, 4 threads, 32-byte output.
const (
	pinArgonTime    uint32 = 1
	pinArgonMemory  uint32 = 64 * 1024
	pinArgonThreads uint8  = 4
	pinArgonKeyLen  uint32 = 32
	pinSaltLen             = 16
)

// ErrMalformedPINHash is returned by [VerifyPIN] when the stored digest does
// not parse as a PHC argon2id string.
var ErrMalformedPINHash = errors.New("malformed PIN hash")

// HashPIN derives an argon2id digest of pin with a fresh random salt and
// returns it in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<b64 salt>$<b64 digest>
//
// The plaintext PIN is never stored; lookups verify candidates against the
// digest instead.
func HashPIN(pin string) (string, error) {
	salt := make([]byte, pinSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate PIN salt: %w", err)
	}

	digest := argon2.IDKey([]byte(pin), salt, pinArgonTime, pinArgonMemory, pinArgonThreads, pinArgonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		pinArgonMemory, pinArgonTime, pinArgonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
	return encoded, nil
}

// VerifyPIN reports whether pin matches the PHC-encoded argon2id digest.
// The comparison is constant-time. A digest that does not parse yields
// [ErrMalformedPINHash].
func VerifyPIN(pin, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedPINHash
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, ErrMalformedPINHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedPINHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrMalformedPINHash
	}

	got := argon2.IDKey([]byte(pin), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
