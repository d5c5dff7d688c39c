// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWashCycleDays is the rest period applied to users created on first
// contact, before they configure their own cycle.
const DefaultWashCycleDays = 3

// User represents a wardrobe owner. Identity is always supplied by the
// caller; the engine never derives it from ambient state.
type User struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the user.
	WashCycleDays int       // Minimum days a cloth must rest before it can be recommended again.
	AuthProviders []*AuthProvider
	CreatedAt     time.Time // Timestamp of when this user account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}

// NewUser creates a user with the default wash cycle.
func NewUser(id uuid.UUID) *User {
	return &User{
		ID:            id,
		WashCycleDays: DefaultWashCycleDays,
	}
}

// WashCutoff returns the first date still inside the wash cycle relative to
// today. A cloth whose latest worn date is on or after the cutoff is resting.
func (u *User) WashCutoff(today time.Time) time.Time {
	days := u.WashCycleDays
	if days <= 0 {
		days = DefaultWashCycleDays
	}

	y, m, d := today.AddDate(0, 0, -days).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AuthProvider links a user to an external identity provider.
// The (Provider, ProviderUserID) pair is unique across the system.
type AuthProvider struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string // e.g. "google", "apple"
	ProviderUserID string // The subject identifier issued by the provider.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
