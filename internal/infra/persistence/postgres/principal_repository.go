// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// principalRepository implements the repository.PrincipalRepository interface using GORM.
type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository is the constructor for principalRepository.
func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{db: db}
}

// FindByID retrieves a single principal by their unique ID.
func (repo *principalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Principal, error) {
	var principalM model.PrincipalModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&principalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find principal by id")
	}

	return toPrincipalDomain(&principalM), nil
}

// FindByEmail retrieves a single principal by their normalized email.
func (repo *principalRepository) FindByEmail(ctx context.Context, email string) (*entity.Principal, error) {
	var principalM model.PrincipalModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&principalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find principal by email")
	}

	return toPrincipalDomain(&principalM), nil
}

// Create persists a new principal and copies the generated ID and timestamps back.
func (repo *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	principalM := fromPrincipalDomain(principal)
	if principalM.ID == uuid.Nil {
		principalM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(principalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPrincipalExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required principal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create principal")
	}

	principal.ID = principalM.ID
	principal.Email = principalM.Email
	principal.CreatedAt = principalM.CreatedAt
	principal.UpdatedAt = principalM.UpdatedAt

	return nil
}

// UpdatePasswordHash replaces the stored hash of a principal.
func (repo *principalRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PrincipalModel{}).
		Where("id = ?", id).
		Update("password_hash", hash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrincipalNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPrincipalDomain(data *model.PrincipalModel) *entity.Principal {
	if data == nil {
		return nil
	}

	return &entity.Principal{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPrincipalDomain(data *entity.Principal) *model.PrincipalModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.RoleCustomer
	}

	return &model.PrincipalModel{
		ID:           data.ID,
		Email:        entity.NormalizeEmail(data.Email),
		PasswordHash: data.PasswordHash,
		Role:         role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
