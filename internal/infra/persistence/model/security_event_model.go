package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SecurityEventModel mirrors the append-only 'security_events' table.
type SecurityEventModel struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key"`
	OccurredAt       time.Time         `gorm:"not null;index"`
	EventType        string            `gorm:"type:varchar(64);not null;index"`
	Severity         string            `gorm:"type:varchar(16);not null;index"`
	SubjectID        *uuid.UUID        `gorm:"type:uuid;index"`
	Email            string            `gorm:"type:varchar(255);index"`
	SourceIdentifier string            `gorm:"type:varchar(255);index"`
	UserAgent        string            `gorm:"type:text"`
	RequestID        string            `gorm:"type:varchar(64)"`
	Route            string            `gorm:"type:text"`
	Details          datatypes.JSONMap `gorm:"type:jsonb"`
	RiskScore        int               `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (SecurityEventModel) TableName() string {
	return "security_events"
}
