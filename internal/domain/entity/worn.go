// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WornRecord is an immutable record that a cloth was worn on a calendar
// date. Corrections append a new record; existing rows are never updated.
type WornRecord struct {
	ID        uuid.UUID
	ClothID   uuid.UUID
	WornDate  time.Time // Calendar date only; the time component is always midnight UTC.
	UpdatedAt time.Time
}

// NewWornRecord creates a worn record for the given cloth and date,
// truncating the date to midnight UTC.
func NewWornRecord(clothID uuid.UUID, date time.Time) *WornRecord {
	return &WornRecord{
		ID:       uuid.New(),
		ClothID:  clothID,
		WornDate: DateOnly(date),
	}
}

// DateOnly strips the time component, normalizing to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
