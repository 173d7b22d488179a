// Package service declares the domain-level service interfaces implemented
// by the infrastructure layer.
package service

// PasswordHasher abstracts the hashing of user credentials.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength checks a password against the configured
	// strength policy and returns a descriptive error when it falls short.
	ValidatePasswordStrength(password string) error
}
