package usecase

import (
	"context"

	"closet/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendInput carries the caller identity and location. Weather is
// resolved from the coordinates by an infrastructure collaborator.
type RecommendInput struct {
	UserID    uuid.UUID
	Latitude  float64
	Longitude float64
}

// RecommendUsecase produces a daily outfit recommendation. The operation is
// a pure read path: safe to call repeatedly and concurrently.
type RecommendUsecase interface {
	Recommend(ctx context.Context, input *RecommendInput) (*entity.Recommendation, error)
}
