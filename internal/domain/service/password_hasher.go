// Package service declares the domain's outbound ports. Implementations
// live under internal/infra.
package service

// PasswordHasher stores parent passwords as one way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password produced hash.
	Check(password, hash string) bool
}
