// Package memory holds process-local implementations of the repositories for tests and single-node deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"

	"github.com/google/uuid"
)

type principalRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.Principal
	byEmail map[string]uuid.UUID
}

// NewPrincipalRepository creates an empty principal store.
func NewPrincipalRepository() repository.PrincipalRepository {
	return &principalRepository{
		byID:    make(map[uuid.UUID]*entity.Principal),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (repo *principalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Principal, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	principal, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrPrincipalNotFound
	}
	clone := *principal

	return &clone, nil
}

func (repo *principalRepository) FindByEmail(_ context.Context, email string) (*entity.Principal, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrPrincipalNotFound
	}
	clone := *repo.byID[id]

	return &clone, nil
}

func (repo *principalRepository) Create(_ context.Context, principal *entity.Principal) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	email := entity.NormalizeEmail(principal.Email)
	if _, exists := repo.byEmail[email]; exists {
		return repository.ErrPrincipalExists
	}

	if principal.ID == uuid.Nil {
		principal.ID = uuid.New()
	}
	now := time.Now().UTC()
	if principal.CreatedAt.IsZero() {
		principal.CreatedAt = now
	}
	principal.UpdatedAt = now
	principal.Email = email

	clone := *principal
	repo.byID[clone.ID] = &clone
	repo.byEmail[email] = clone.ID

	return nil
}

func (repo *principalRepository) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	principal, ok := repo.byID[id]
	if !ok {
		return repository.ErrPrincipalNotFound
	}
	principal.PasswordHash = hash
	principal.UpdatedAt = time.Now().UTC()

	return nil
}
