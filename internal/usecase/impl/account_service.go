package impl

import (
	"context"
	"fmt"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	"closet/internal/errors"
	"closet/internal/usecase"

	"github.com/google/uuid"
)

type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
}

// NewAccountService creates a new account service instance.
func NewAccountService(txManager repository.TransactionManager, userRepo repository.UserRepository) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		userRepo:  userRepo,
	}
}

// UpdateWashCycle changes the user's rest period. The cycle must be at
// least one day; zero would make every worn cloth immediately eligible.
func (s *accountService) UpdateWashCycle(ctx context.Context, input *usecase.UpdateWashCycleInput) error {
	if input.WashCycleDays < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("wash_cycle_days must be at least 1")
	}

	if err := s.userRepo.UpdateWashCycle(ctx, input.UserID, input.WashCycleDays); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return fmt.Errorf("failed to update wash cycle: %w", err)
	}

	return nil
}

// LinkProvider links an external identity to the user, creating the user on
// first contact. The provider pair is unique across the whole system.
func (s *accountService) LinkProvider(ctx context.Context, input *usecase.LinkProviderInput) (*entity.AuthProvider, error) {
	if input.Provider == "" || input.ProviderUserID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provider and provider_user_id are required")
	}

	link := &entity.AuthProvider{
		ID:             uuid.New(),
		UserID:         input.UserID,
		Provider:       input.Provider,
		ProviderUserID: input.ProviderUserID,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return fmt.Errorf("failed to find user: %w", err)
			}

			if err := userRepo.Create(ctx, entity.NewUser(input.UserID)); err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
		}

		if err := factory.NewAuthProviderRepository().Link(ctx, link); err != nil {
			if errors.Is(err, repository.ErrProviderAlreadyLinked) {
				return domainerrors.ErrProviderConflict
			}

			return fmt.Errorf("failed to link provider: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return link, nil
}
