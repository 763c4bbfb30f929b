// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies passwords using the bcrypt algorithm.
//
// # Cost
//
// The work factor is fixed at construction time from configuration. Production
// deployments should use cost 12 or higher; lowering the cost is only
// acceptable in tests where hashing speed matters more than attack resistance.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a [PasswordHasher] with the given bcrypt cost.
// Costs outside bcrypt's supported range fall back to the library default.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// Hash hashes a plain-text password. The salt is generated and embedded in
// the returned hash by bcrypt itself.
func (hasher PasswordHasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), hasher.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify compares a plain-text password with its hashed version.
// bcrypt performs the comparison in constant time.
func (hasher PasswordHasher) Verify(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
