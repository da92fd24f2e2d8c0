package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt embeds a fresh per-call salt in the digest, so hashing the same
// password twice produces different strings.
const bcryptCost = bcrypt.DefaultCost

// HashPassword returns a bcrypt digest of plaintext. The digest is
// self-contained (algorithm version, cost, salt, hash) and is what gets
// stored; the plaintext is never persisted.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
// A malformed digest is treated the same as a mismatch.
func CheckPassword(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
