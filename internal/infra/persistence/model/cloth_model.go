package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClothModel mirrors the 'clothes' table. Features are stored as JSONB with
// a GIN index for attribute queries; a null column means no features were
// extracted for the cloth.
type ClothModel struct {
	ID        uuid.UUID      `gorm:"column:cloth_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	ImageURL  string         `gorm:"type:text;not null"`
	Category  string         `gorm:"type:varchar(100);not null"`
	Features  datatypes.JSON `gorm:"type:jsonb;index:idx_clothes_features,type:gin"`
	Status    string         `gorm:"type:varchar(16);not null;default:ACTIVE;index"`
	CreatedAt time.Time
	DeletedAt *time.Time
	UpdatedAt time.Time

	WornHistory []WornHistoryModel `gorm:"foreignKey:ClothID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ClothModel) TableName() string {
	return "clothes"
}
