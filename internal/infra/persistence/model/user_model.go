// Package model holds the GORM persistence models mirroring the database
// schema. They are exported so the GORM Gen tool can consume them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"column:user_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	WashCycleDays int       `gorm:"not null;default:3;check:wash_cycle_days > 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Clothes       []ClothModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AuthProviders []AuthProviderModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AuthProviderModel mirrors the 'user_auth_providers' table. The
// (provider, provider_user_id) pair carries a unique constraint.
type AuthProviderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_provider_identity"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_provider_identity"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthProviderModel) TableName() string {
	return "user_auth_providers"
}
