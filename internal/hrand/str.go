package hrand

import (
	"crypto/rand"
	"encoding/hex"
)

// Str returns a random hex string of 2*n characters.
func Str(n int) string {
	randBytes := make([]byte, n)
	_, err := rand.Read(randBytes)
	if err != nil {
		panic(err)
	}

	return hex.EncodeToString(randBytes)
}
