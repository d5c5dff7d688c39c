package model

import (
	"time"

	"github.com/google/uuid"
)

// WornHistoryModel mirrors the 'worn_history' table. Rows are append-only.
// The (cloth_id, worn_date) uniqueness is what makes confirm-wear idempotent:
// a duplicate confirmation inserts nothing.
type WornHistoryModel struct {
	ID        uuid.UUID `gorm:"column:history_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	ClothID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_worn_cloth_date"`
	WornDate  time.Time `gorm:"type:date;not null;index;uniqueIndex:idx_worn_cloth_date"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WornHistoryModel) TableName() string {
	return "worn_history"
}
