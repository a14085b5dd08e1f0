// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrPrincipalNotFound is returned when no principal matches the lookup.
	ErrPrincipalNotFound = errors.New("principal not found")
	// ErrPrincipalExists is returned when the email is already taken.
	ErrPrincipalExists = errors.New("principal already exists")
)

// PrincipalRepository is the user store. Emails passed in are already normalized.
type PrincipalRepository interface {
	// FindByID retrieves a single principal by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Principal, error)

	// FindByEmail retrieves a single principal by their normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Principal, error)

	// Create persists a new principal. Returns ErrPrincipalExists on a duplicate email.
	Create(ctx context.Context, principal *entity.Principal) error

	// UpdatePasswordHash replaces the stored hash, used when a hash is upgraded on login.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
