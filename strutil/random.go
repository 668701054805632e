package strutil

import (
	"crypto/rand"
	"fmt"
)

// randomAlphabet is the character set RandomString samples from.
const randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns a cryptographically random string of n
// alphanumeric characters. Sampling uses rejection, so every character
// is drawn uniformly from the alphabet.
func RandomString(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	// Largest multiple of the alphabet size that fits in a byte; values
	// at or above it are rejected to avoid modulo bias.
	const limit = byte(256 - 256%len(randomAlphabet))

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("strutil: read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, randomAlphabet[int(b)%len(randomAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
