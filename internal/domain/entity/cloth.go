// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"closet/internal/errors"

	"github.com/google/uuid"
)

// ClothStatus is the lifecycle state of a cloth.
type ClothStatus string

const (
	// StatusActive marks a cloth as available for recommendation.
	StatusActive ClothStatus = "ACTIVE"
	// StatusLaundry marks a cloth as being washed; it is never recommended.
	StatusLaundry ClothStatus = "LAUNDRY"
	// StatusDiscarded is the terminal soft-deleted state.
	StatusDiscarded ClothStatus = "DISCARDED"
)

// ErrInvalidTransition is returned when a lifecycle transition is not allowed.
var ErrInvalidTransition = errors.New("invalid cloth status transition")

// Valid reports whether the status is one of the known lifecycle states.
func (s ClothStatus) Valid() bool {
	switch s {
	case StatusActive, StatusLaundry, StatusDiscarded:
		return true
	default:
		return false
	}
}

// ClothFeatures holds the optional structured attributes extracted from a
// cloth image. Any field may be absent; scoring treats absence as neutral.
type ClothFeatures struct {
	Color       string   `json:"color,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Material    string   `json:"material,omitempty"`
	WarmthLevel int      `json:"warmth_level,omitempty"` // 1 (lightest) to 5 (warmest).
	IsRainOk    bool     `json:"is_rain_ok,omitempty"`
	Seasons     []string `json:"seasons,omitempty"` // Subset of "spring", "summer", "autumn", "winter".
}

// Cloth represents a single item of a user's wardrobe.
type Cloth struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ImageURL  string // Opaque reference to the stored image; never interpreted here.
	Category  string // Free-form, e.g. "tops", "bottoms", "outer".
	Features  *ClothFeatures
	Status    ClothStatus
	CreatedAt time.Time
	DeletedAt *time.Time // Set exactly once, when the cloth is discarded.
	UpdatedAt time.Time
}

// TransitionTo applies a lifecycle transition. Allowed moves are
// ACTIVE<->LAUNDRY and ACTIVE|LAUNDRY->DISCARDED; DISCARDED is terminal.
func (c *Cloth) TransitionTo(next ClothStatus, now time.Time) error {
	if !next.Valid() {
		return errors.Wrapf(ErrInvalidTransition, "unknown status %q", next)
	}

	switch c.Status {
	case StatusActive:
		if next != StatusLaundry && next != StatusDiscarded {
			return errors.Wrapf(ErrInvalidTransition, "%s -> %s", c.Status, next)
		}
	case StatusLaundry:
		if next != StatusActive && next != StatusDiscarded {
			return errors.Wrapf(ErrInvalidTransition, "%s -> %s", c.Status, next)
		}
	case StatusDiscarded:
		return errors.Wrapf(ErrInvalidTransition, "%s is terminal", c.Status)
	default:
		return errors.Wrapf(ErrInvalidTransition, "unknown current status %q", c.Status)
	}

	c.Status = next
	if next == StatusDiscarded && c.DeletedAt == nil {
		t := now
		c.DeletedAt = &t
	}

	return nil
}

// CheckInvariant verifies the status/deleted-at pairing. A violation means
// corrupted data and is treated as fatal by callers, never repaired in place.
func (c *Cloth) CheckInvariant() error {
	if c.Status == StatusDiscarded && c.DeletedAt == nil {
		return errors.Errorf("cloth %s is DISCARDED without a deletion time", c.ID)
	}
	if c.Status != StatusDiscarded && c.DeletedAt != nil {
		return errors.Errorf("cloth %s has a deletion time but status %s", c.ID, c.Status)
	}

	return nil
}
