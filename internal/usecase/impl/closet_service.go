// Package impl provides the implementation of the usecase layer interfaces.
package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"closet/config"
	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	"closet/internal/domain/service"
	"closet/internal/errors"
	"closet/internal/usecase"

	"github.com/google/uuid"
)

type closetService struct {
	txManager repository.TransactionManager
	clothRepo repository.ClothRepository
	storage   service.ImageStorage
	analyzer  service.FeatureAnalyzer
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewClosetService creates a new closet service instance.
func NewClosetService(
	txManager repository.TransactionManager,
	clothRepo repository.ClothRepository,
	storage service.ImageStorage,
	analyzer service.FeatureAnalyzer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ClosetUsecase {
	if cfg.Closet == nil {
		cfg.Closet = &config.ClosetConfig{
			DefaultWashCycleDays: entity.DefaultWashCycleDays,
			MaxUploadBytes:       10 << 20,
		}
	}

	return &closetService{
		txManager: txManager,
		clothRepo: clothRepo,
		storage:   storage,
		analyzer:  analyzer,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// ListClothes returns all non-discarded clothes of the user, newest first.
func (s *closetService) ListClothes(ctx context.Context, userID uuid.UUID) ([]*entity.Cloth, error) {
	clothes, err := s.clothRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find clothes by user: %w", err)
	}

	for _, cloth := range clothes {
		if err := cloth.CheckInvariant(); err != nil {
			return nil, domainerrors.ErrDataCorruption.WrapMessage(err.Error())
		}
	}

	return clothes, nil
}

// AddCloth stores the image, derives features from it and registers the
// cloth. The owning user is created on first contact with the default wash
// cycle; the cloth row and the user row commit in the same transaction.
func (s *closetService) AddCloth(ctx context.Context, input *usecase.AddClothInput) (*entity.Cloth, error) {
	if len(input.Image) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image must not be empty")
	}
	if limit := s.config.Closet.MaxUploadBytes; limit > 0 && int64(len(input.Image)) > limit {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("image exceeds the %d byte limit", limit))
	}

	clothID := uuid.New()
	name := storedImageName(clothID, input.FileName)

	imageURL, err := s.storage.Save(ctx, name, input.ContentType, bytes.NewReader(input.Image))
	if err != nil {
		return nil, fmt.Errorf("failed to store cloth image: %w", err)
	}

	features, err := s.analyzer.Analyze(ctx, imageURL, input.Image)
	if err != nil {
		// Feature extraction is best effort; a cloth without features
		// still participates in recommendations at neutral warmth.
		s.logger.Warn("Feature extraction failed, registering cloth without features",
			slog.String("clothID", clothID.String()),
			slog.Any("error", err),
		)
		features = nil
	}

	cloth := &entity.Cloth{
		ID:       clothID,
		UserID:   input.UserID,
		ImageURL: imageURL,
		Category: input.Category,
		Features: features,
		Status:   entity.StatusActive,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return fmt.Errorf("failed to find user: %w", err)
			}

			user := entity.NewUser(input.UserID)
			if days := s.config.Closet.DefaultWashCycleDays; days > 0 {
				user.WashCycleDays = days
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
		}

		if err := factory.NewClothRepository().Create(ctx, cloth); err != nil {
			return fmt.Errorf("failed to create cloth: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cloth, nil
}

// ChangeClothStatus applies a lifecycle transition to a cloth owned by the
// caller. Invalid moves, including any move out of DISCARDED, are rejected.
func (s *closetService) ChangeClothStatus(ctx context.Context, input *usecase.ChangeClothStatusInput) (*entity.Cloth, error) {
	clothes, err := s.clothRepo.FindByIDs(ctx, []uuid.UUID{input.ClothID})
	if err != nil {
		return nil, fmt.Errorf("failed to find cloth: %w", err)
	}
	if len(clothes) == 0 {
		return nil, domainerrors.ErrClothNotFound
	}

	cloth := clothes[0]
	if cloth.UserID != input.UserID {
		return nil, domainerrors.ErrClothNotFound
	}

	from := cloth.Status
	if err := cloth.TransitionTo(input.Status, s.now()); err != nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(err.Error())
	}

	if err := s.clothRepo.UpdateStatus(ctx, cloth, from); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, domainerrors.ErrInvalidTransition.WithDetails("cloth status changed concurrently")
		}

		return nil, fmt.Errorf("failed to update cloth status: %w", err)
	}

	return cloth, nil
}

// storedImageName builds the object key for an uploaded image, keeping the
// original extension when one is present.
func storedImageName(clothID uuid.UUID, fileName string) string {
	ext := path.Ext(fileName)

	return "clothes/" + clothID.String() + ext
}
