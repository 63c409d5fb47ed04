package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var errBadAccessKey = errors.New("invalid access key")

// VerifyAccessKey checks an operator access key. When a bcrypt hash is
// configured it takes precedence; otherwise the plain key is compared in
// constant time.
func VerifyAccessKey(plainKey, hashedKey, candidate string) error {
	if hashedKey != "" {
		if bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(candidate)) != nil {
			return errBadAccessKey
		}
		return nil
	}
	if plainKey == "" {
		return errors.New("operator access key not configured")
	}
	if subtle.ConstantTimeCompare([]byte(plainKey), []byte(candidate)) != 1 {
		return errBadAccessKey
	}
	return nil
}

// HashAccessKey produces a bcrypt hash suitable for AUTH_OPERATOR_KEY_HASH.
func HashAccessKey(key string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
