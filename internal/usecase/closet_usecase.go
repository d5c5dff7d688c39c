// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"closet/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Wire DTOs ---

// ClothPayload is the wire representation of a cloth. Field names follow
// the persisted schema so clients can round-trip values unchanged.
type ClothPayload struct {
	ClothID  uuid.UUID             `json:"cloth_id"`
	UserID   uuid.UUID             `json:"user_id"`
	ImageURL string                `json:"image_url"`
	Category string                `json:"category"`
	Features *entity.ClothFeatures `json:"features,omitempty"`
	Status   string                `json:"status"`
}

// NewClothPayload maps a domain cloth onto its wire representation.
func NewClothPayload(cloth *entity.Cloth) *ClothPayload {
	if cloth == nil {
		return nil
	}

	return &ClothPayload{
		ClothID:  cloth.ID,
		UserID:   cloth.UserID,
		ImageURL: cloth.ImageURL,
		Category: cloth.Category,
		Features: cloth.Features,
		Status:   string(cloth.Status),
	}
}

// ToEntity maps the wire representation back to a domain cloth.
func (p *ClothPayload) ToEntity() *entity.Cloth {
	if p == nil {
		return nil
	}

	return &entity.Cloth{
		ID:       p.ClothID,
		UserID:   p.UserID,
		ImageURL: p.ImageURL,
		Category: p.Category,
		Features: p.Features,
		Status:   entity.ClothStatus(p.Status),
	}
}

// NewClothPayloads maps a slice of domain clothes onto wire payloads.
func NewClothPayloads(clothes []*entity.Cloth) []*ClothPayload {
	payloads := make([]*ClothPayload, 0, len(clothes))
	for _, cloth := range clothes {
		payloads = append(payloads, NewClothPayload(cloth))
	}

	return payloads
}

// --- Input DTOs ---

// AddClothInput defines the data required to register a new cloth.
type AddClothInput struct {
	UserID      uuid.UUID
	Category    string
	FileName    string
	ContentType string
	Image       []byte
}

// ChangeClothStatusInput defines a lifecycle change request.
type ChangeClothStatusInput struct {
	UserID  uuid.UUID
	ClothID uuid.UUID
	Status  entity.ClothStatus
}

// ClosetUsecase defines wardrobe management operations.
type ClosetUsecase interface {
	// ListClothes returns all non-discarded clothes of the user.
	ListClothes(ctx context.Context, userID uuid.UUID) ([]*entity.Cloth, error)

	// AddCloth stores the image, extracts features, creates the user on
	// first contact, and registers the cloth.
	AddCloth(ctx context.Context, input *AddClothInput) (*entity.Cloth, error)

	// ChangeClothStatus applies a lifecycle transition to a cloth.
	ChangeClothStatus(ctx context.Context, input *ChangeClothStatusInput) (*entity.Cloth, error)
}
