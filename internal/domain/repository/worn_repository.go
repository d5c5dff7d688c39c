package repository

import (
	"context"
	"time"

	"closet/internal/domain/entity"

	"github.com/google/uuid"
)

// WornRepository defines persistence operations over wear history.
// Records are append-only; there is no update or delete.
type WornRepository interface {
	// LatestWornSince returns, for each cloth that was worn on or after
	// the given date, its most recent worn date. Clothes absent from the
	// result were not worn inside the window.
	LatestWornSince(ctx context.Context, clothIDs []uuid.UUID, since time.Time) (map[uuid.UUID]time.Time, error)

	// Append inserts the given worn records. A record whose
	// (cloth_id, worn_date) pair already exists is silently skipped, which
	// makes repeated confirmations of the same outfit a no-op.
	Append(ctx context.Context, records []*entity.WornRecord) error
}
