package usecase

import (
	"context"

	"closet/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateWashCycleInput changes how many days a cloth rests after being worn.
type UpdateWashCycleInput struct {
	UserID        uuid.UUID
	WashCycleDays int
}

// LinkProviderInput links an external identity to a user.
type LinkProviderInput struct {
	UserID         uuid.UUID
	Provider       string
	ProviderUserID string
}

// AccountUsecase covers user configuration and identity provider linking.
type AccountUsecase interface {
	UpdateWashCycle(ctx context.Context, input *UpdateWashCycleInput) error
	LinkProvider(ctx context.Context, input *LinkProviderInput) (*entity.AuthProvider, error)
}
