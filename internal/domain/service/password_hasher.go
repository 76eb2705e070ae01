// Package service defines the ports the usecases need from infrastructure:
// credentials, tokens, blobs, QR rendering and event publishing.
package service

// PasswordHasher derives and verifies password hashes. The hash never
// leaves the Identity Store.
type PasswordHasher interface {
	// Hash derives a salted hash from password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash in constant time.
	Check(password, hash string) bool
}
