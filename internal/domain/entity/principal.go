// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Principal is an account that can authenticate against the storefront.
type Principal struct {
	ID           uuid.UUID // Opaque unique identifier.
	Email        string    // Normalized login email, unique across principals.
	PasswordHash string    // Encoded argon2id (or legacy bcrypt) hash.
	Role         Role      // Authorization level.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Every lookup and every insert goes through it so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
