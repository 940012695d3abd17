// Package cryptox holds the password primitives used by the account
// directory. Plaintext passwords are hashed with bcrypt, which salts every
// hash and lets the work factor be tuned per deployment.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is used when the configured cost is outside bcrypt's range.
const DefaultCost = 12

// ErrPasswordTooLong is returned for passwords beyond bcrypt's 72 byte input.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// PasswordHasher hashes and verifies passwords. The zero value uses
// DefaultCost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Cost() int {
	if h == nil || h.cost == 0 {
		return DefaultCost
	}
	return h.cost
}

// Hash returns a salted bcrypt hash of plaintext. Two calls with the same
// input yield different hashes.
func (h *PasswordHasher) Hash(plaintext []byte) (string, error) {
	if len(plaintext) > 72 {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword(plaintext, h.Cost())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. A malformed hash is a
// mismatch, not an error.
func (h *PasswordHasher) Verify(plaintext []byte, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), plaintext)
	return err == nil
}

// IsPasswordTooLong reports whether err came from an over-long password.
func IsPasswordTooLong(err error) bool {
	return errors.Is(err, ErrPasswordTooLong)
}
