package impl

import (
	"context"
	"fmt"
	"time"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	"closet/internal/usecase"

	"github.com/google/uuid"
)

type wearService struct {
	txManager repository.TransactionManager
	now       func() time.Time
}

// NewWearService creates a new wear recording service instance.
func NewWearService(txManager repository.TransactionManager) usecase.WearUsecase {
	return &wearService{
		txManager: txManager,
		now:       time.Now,
	}
}

// ConfirmWear records one worn event per cloth for the given date inside a
// single transaction, so a failed batch leaves no partial history behind.
// Re-confirming an already recorded (cloth, date) pair is a no-op.
func (s *wearService) ConfirmWear(ctx context.Context, input *usecase.ConfirmWearInput) error {
	if len(input.ClothIDs) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("cloth_ids must not be empty")
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	date = entity.DateOnly(date)

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		clothRepo := factory.NewClothRepository()
		wornRepo := factory.NewWornRepository()

		clothes, err := clothRepo.FindByIDs(ctx, input.ClothIDs)
		if err != nil {
			return fmt.Errorf("failed to find clothes: %w", err)
		}

		byID := make(map[uuid.UUID]*entity.Cloth, len(clothes))
		for _, cloth := range clothes {
			byID[cloth.ID] = cloth
		}

		records := make([]*entity.WornRecord, 0, len(input.ClothIDs))
		for _, id := range input.ClothIDs {
			cloth, ok := byID[id]
			if !ok {
				return domainerrors.ErrInvalidCloth.WithDetails(fmt.Sprintf("cloth %s does not exist", id))
			}
			if cloth.UserID != input.UserID {
				return domainerrors.ErrInvalidCloth.WithDetails(fmt.Sprintf("cloth %s belongs to another user", id))
			}
			if cloth.Status == entity.StatusDiscarded {
				return domainerrors.ErrInvalidCloth.WithDetails(fmt.Sprintf("cloth %s has been discarded", id))
			}

			records = append(records, entity.NewWornRecord(id, date))
		}

		if err := wornRepo.Append(ctx, records); err != nil {
			return fmt.Errorf("failed to append worn records: %w", err)
		}

		return nil
	})
}
