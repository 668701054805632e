// Package strutil provides string helpers for display and identifier
// handling: rune-safe truncation, masking, case conversion, slug
// generation with accent folding, human-readable number and byte
// formatting, and cryptographically random strings.
//
// All functions are pure and safe for concurrent use. Truncation and
// masking count runes, not bytes, so multi-byte text is never cut
// mid-character.
package strutil
