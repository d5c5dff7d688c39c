package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ConfirmWearInput defines a confirmed outfit. Date defaults to today when
// zero; only the calendar date matters.
type ConfirmWearInput struct {
	UserID   uuid.UUID
	ClothIDs []uuid.UUID
	Date     time.Time
}

// WearUsecase records confirmed wear events. Confirming the same outfit for
// the same date twice is a no-op; partial batches are never visible.
type WearUsecase interface {
	ConfirmWear(ctx context.Context, input *ConfirmWearInput) error
}
