package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ValidatePin enforces the lock-screen format: 4 to 8 digits.
func ValidatePin(pin string) error {
	if len(pin) < 4 || len(pin) > 8 {
		return fmt.Errorf("pin must be 4 to 8 digits")
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("pin must contain digits only")
		}
	}
	return nil
}

func HashPin(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPin(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
