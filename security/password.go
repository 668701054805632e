package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. Iterations follow the current OWASP
// recommendation for PBKDF2-SHA256. The iteration count is embedded in the
// encoded hash, so it can be raised without invalidating stored hashes.
const (
	HashIterations = 210000
	saltLength     = 16
	hashLength     = 32
)

// hashPrefix identifies the algorithm in the encoded form.
const hashPrefix = "pbkdf2-sha256"

// HashPassword derives a PBKDF2-SHA256 hash from the password with a random
// salt and returns it in the self-describing form
// pbkdf2-sha256$<iterations>$<salt>$<hash> (salt and hash base64-encoded).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(password), salt, HashIterations, hashLength, sha256.New)

	return fmt.Sprintf("%s$%d$%s$%s",
		hashPrefix,
		HashIterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks the password against an encoded hash produced by
// HashPassword. The comparison is constant-time. Returns nil on match,
// ErrHashMismatch on mismatch, and ErrInvalidHash when the encoded form
// cannot be parsed.
//
// The iteration count is read from the encoded hash, so hashes created with
// older parameters continue to verify.
func VerifyPassword(password, encoded string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != hashPrefix {
		return ErrInvalidHash
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return ErrInvalidHash
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(want) == 0 {
		return ErrInvalidHash
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)

	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrHashMismatch
	}
	return nil
}
