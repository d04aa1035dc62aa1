package password

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = bcrypt.DefaultCost

var (
	// ErrInvalidPassword is returned when a credential check fails,
	// regardless of whether the password or the stored hash was at fault.
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hash generates a bcrypt hash of the password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", errors.Wrap(ErrHashingPassword, err.Error())
	}

	return string(bytes), nil
}

// Verify checks the provided password against the stored hash.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return errors.Wrap(ErrVerifyingPassword, err.Error())
	}

	return nil
}
