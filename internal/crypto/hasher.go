// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the private implementation of [PasswordHasher] built on
// golang.org/x/crypto/bcrypt. bcrypt embeds a per-call random salt into the
// digest and compares digests in constant time, which satisfies both
// contract requirements of [PasswordHasher] without extra bookkeeping.
type bcryptHasher struct {
	// cost is the bcrypt work factor. Higher values slow down both hashing
	// and brute-force attempts. Kept per-instance so deployments can tune it.
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
// A cost outside the range supported by bcrypt falls back to
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. Each call salts independently, so equal
// passwords produce distinct digests.
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// Compare implements [PasswordHasher]. A mismatch is reported as
// (false, nil); only an undecodable digest yields an error.
func (h *bcryptHasher) Compare(digest string, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password with digest: %w", err)
	}
}
