package model

import (
	"time"

	"github.com/google/uuid"
)

// PrincipalModel mirrors the 'principals' table.
type PrincipalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:'CUSTOMER'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrincipalModel) TableName() string {
	return "principals"
}
