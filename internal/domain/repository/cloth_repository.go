package repository

import (
	"context"
	"errors"

	"closet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClothNotFound is returned when a cloth does not exist.
var ErrClothNotFound = errors.New("cloth not found")

// ErrStaleStatus is returned when a guarded status update matches no row
// because the cloth's status changed since it was read.
var ErrStaleStatus = errors.New("cloth status changed concurrently")

// ClothRepository defines persistence operations over a user's wardrobe.
type ClothRepository interface {
	// FindActiveByUser retrieves all ACTIVE clothes for a user.
	// LAUNDRY and DISCARDED clothes are never returned.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cloth, error)

	// FindByUser retrieves all non-discarded clothes for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cloth, error)

	// FindByIDs retrieves clothes by their IDs, regardless of status.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Cloth, error)

	// Create persists a new cloth.
	Create(ctx context.Context, cloth *entity.Cloth) error

	// UpdateStatus persists a lifecycle change, including the deletion
	// timestamp when the cloth is discarded. The write only applies while
	// the stored status still equals from; otherwise ErrStaleStatus is
	// returned and nothing changes.
	UpdateStatus(ctx context.Context, cloth *entity.Cloth, from entity.ClothStatus) error
}
