// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, self-describing hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify compares a plaintext password with an encoded hash in constant time.
	// Malformed hashes never match.
	Verify(password, encoded string) bool

	// NeedsRehash reports whether the hash was produced by an older scheme or older parameters.
	NeedsRehash(encoded string) bool

	// ValidatePasswordStrength checks a candidate password against the configured policy.
	ValidatePasswordStrength(password string) error
}
