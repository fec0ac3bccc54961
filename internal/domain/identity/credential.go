package identity

import "github.com/loja/backend/internal/domain/shared"

// PasswordHasher turns secrets into salted one-way hashes and checks
// submitted secrets against them
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// CheckCredential reports whether submitted matches storedHash.
// An empty hash never matches.
func CheckCredential(submitted, storedHash string, hasher PasswordHasher) bool {
	if storedHash == "" || submitted == "" {
		return false
	}
	return hasher.Compare(storedHash, submitted)
}

// Authentication errors
var (
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrMalformedRequest   = shared.NewDomainError("MALFORMED_REQUEST", "Login request is missing required fields")
)
