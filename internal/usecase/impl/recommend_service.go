package impl

import (
	"context"
	"fmt"
	"time"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	"closet/internal/domain/service"
	"closet/internal/errors"
	"closet/internal/usecase"

	"github.com/google/uuid"
)

type recommendService struct {
	userRepo  repository.UserRepository
	clothRepo repository.ClothRepository
	wornRepo  repository.WornRepository
	weather   service.WeatherService
	now       func() time.Time
}

// NewRecommendService creates a new recommendation service instance.
func NewRecommendService(
	userRepo repository.UserRepository,
	clothRepo repository.ClothRepository,
	wornRepo repository.WornRepository,
	weather service.WeatherService,
) usecase.RecommendUsecase {
	return &recommendService{
		userRepo:  userRepo,
		clothRepo: clothRepo,
		wornRepo:  wornRepo,
		weather:   weather,
		now:       time.Now,
	}
}

// Recommend resolves the weather, filters the user's wardrobe down to
// rested ACTIVE clothes and returns the best-scoring pick per category.
func (s *recommendService) Recommend(ctx context.Context, input *usecase.RecommendInput) (*entity.Recommendation, error) {
	weather, err := s.weather.CurrentWeather(ctx, input.Latitude, input.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve weather: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	clothes, err := s.clothRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active clothes: %w", err)
	}
	if len(clothes) == 0 {
		return nil, domainerrors.ErrClosetEmpty
	}

	for _, cloth := range clothes {
		if err := cloth.CheckInvariant(); err != nil {
			return nil, domainerrors.ErrDataCorruption.WrapMessage(err.Error())
		}
	}

	today := s.now()
	candidates, err := s.restedClothes(ctx, user, clothes, today)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domainerrors.ErrNoEligibleClothes
	}

	season := entity.SeasonOf(today)
	selection := selectOutfit(candidates, weather, season)

	picks := make([]*entity.Cloth, 0, len(selection))
	for _, sc := range selection {
		picks = append(picks, sc.cloth)
	}

	return &entity.Recommendation{
		Clothes: picks,
		Reason:  composeReason(selection, weather),
	}, nil
}

// restedClothes drops every cloth whose most recent worn date falls inside
// the user's wash cycle. The cutoff day itself still counts as resting.
func (s *recommendService) restedClothes(ctx context.Context, user *entity.User, clothes []*entity.Cloth, today time.Time) ([]*entity.Cloth, error) {
	cutoff := user.WashCutoff(today)

	ids := make([]uuid.UUID, 0, len(clothes))
	for _, cloth := range clothes {
		ids = append(ids, cloth.ID)
	}

	lastWorn, err := s.wornRepo.LatestWornSince(ctx, ids, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load worn history: %w", err)
	}

	rested := make([]*entity.Cloth, 0, len(clothes))
	for _, cloth := range clothes {
		if _, resting := lastWorn[cloth.ID]; resting {
			continue
		}
		rested = append(rested, cloth)
	}

	return rested, nil
}
