// Package hash wraps bcrypt for storing and checking user passwords.
package hash

import "golang.org/x/crypto/bcrypt"

// Hasher hashes passwords with a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// New returns a Hasher using cost, falling back to bcrypt.DefaultCost when cost is out of range.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt digest of password.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether password matches digest.
// A malformed digest is treated as a mismatch.
func (h *Hasher) Compare(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
