package security

import "errors"

// Sentinel errors for cryptographic operations.
var (
	// Password hashing errors
	ErrEmptyPassword = errors.New("security: password is empty")
	ErrInvalidHash   = errors.New("security: invalid password hash format")
	ErrHashMismatch  = errors.New("security: password does not match hash")

	// Encryption errors
	ErrInvalidKeySize     = errors.New("security: key must be 16, 24, or 32 bytes")
	ErrCiphertextTooShort = errors.New("security: ciphertext shorter than nonce")
	ErrDecryptionFailed   = errors.New("security: decryption failed")

	// Token errors
	ErrMissingKey   = errors.New("security: signing key is required")
	ErrEmptySubject = errors.New("security: token subject is empty")
	ErrTokenInvalid = errors.New("security: token invalid")
	ErrTokenExpired = errors.New("security: token expired")
)
