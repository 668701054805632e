// Package security provides cryptographic helpers for application code.
//
// It covers password hashing (PBKDF2-SHA256 with an encoded, self-describing
// format), symmetric encryption (AES-GCM with a prepended nonce), and signed
// token issuance and verification (HS256 JWTs). The helpers are deliberately
// opinionated: parameters follow current recommendations and are embedded in
// the output so they can evolve without breaking verification.
package security
