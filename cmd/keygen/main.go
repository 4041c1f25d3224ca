// Command keygen prints a fresh base64-encoded AES-256 key suitable for the
// APP_VECTOR_KEY configuration variable.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-gate-keeper/internal/crypto"
)

func main() {
	key, err := crypto.GenerateKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(key)
}
