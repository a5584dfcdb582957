package service

import "golang.org/x/crypto/bcrypt"

// Work factor for the credential digest. bcrypt embeds a fresh random salt
// in every digest, so hashing the same password twice yields different
// outputs.
const passwordHashCost = bcrypt.DefaultCost

func hashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// verifyPassword reports whether plaintext matches the stored digest.
// A malformed digest is simply a non-match, never an error.
func verifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
