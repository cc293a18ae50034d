// Package security implements the one-way password hasher used by the
// credential store.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mediatone/mediatone-server/internal/model"
)

// bcrypt refuses inputs longer than 72 bytes.
const maxPasswordLength = 72

// Hasher hashes and verifies passwords with bcrypt. The cost is fixed at
// construction; the produced hash encodes salt and cost so verification
// needs only the hash and a candidate plaintext.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost. A cost below
// bcrypt.MinCost falls back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted one-way hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: empty password", model.ErrInvalidInput)
	}
	if len(plaintext) > maxPasswordLength {
		return "", fmt.Errorf("%w: password exceeds %d bytes", model.ErrInvalidInput, maxPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hashed. It never returns an
// error on mismatch; the comparison inside bcrypt is constant time.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
