package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemEventModel mirrors the 'system_events' audit table.
type SystemEventModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	EventType string            `gorm:"column:event_type;type:varchar(50);not null;index"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index"`
	RequestID string            `gorm:"type:varchar(64)"`
	Details   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time         `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SystemEventModel) TableName() string {
	return "system_events"
}
