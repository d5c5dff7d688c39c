package impl

import (
	"context"
	"testing"
	"time"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	mockRepo "closet/internal/mocks/repository"
	mockService "closet/internal/mocks/service"
	"closet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins the service clock so wash-cycle boundaries are exact.
var fixedNow = time.Date(2025, time.January, 20, 9, 30, 0, 0, time.UTC)

func newRecommendServiceForTest(
	t *testing.T,
) (*recommendService, *mockRepo.MockUserRepository, *mockRepo.MockClothRepository, *mockRepo.MockWornRepository, *mockService.MockWeatherService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	clothRepo := mockRepo.NewMockClothRepository(t)
	wornRepo := mockRepo.NewMockWornRepository(t)
	weather := mockService.NewMockWeatherService(t)

	service, ok := NewRecommendService(userRepo, clothRepo, wornRepo, weather).(*recommendService)
	require.True(t, ok)
	service.now = func() time.Time { return fixedNow }

	return service, userRepo, clothRepo, wornRepo, weather
}

func activeCloth(userID uuid.UUID, category string, features *entity.ClothFeatures, createdAt time.Time) *entity.Cloth {
	return &entity.Cloth{
		ID:        uuid.New(),
		UserID:    userID,
		ImageURL:  "https://img.example.com/" + category,
		Category:  category,
		Features:  features,
		Status:    entity.StatusActive,
		CreatedAt: createdAt,
	}
}

func TestRecommendService_Recommend_Success(t *testing.T) {
	service, userRepo, clothRepo, wornRepo, weather := newRecommendServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RecommendInput{UserID: userID, Latitude: 25.03, Longitude: 121.56}

	top := activeCloth(userID, "tops", &entity.ClothFeatures{Color: "navy", WarmthLevel: 3}, fixedNow.AddDate(0, 0, -10))
	bottom := activeCloth(userID, "bottoms", &entity.ClothFeatures{Color: "grey", WarmthLevel: 3}, fixedNow.AddDate(0, 0, -20))

	weather.EXPECT().CurrentWeather(ctx, input.Latitude, input.Longitude).
		Return(&entity.Weather{TempC: 15, Condition: "Sunny"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, WashCycleDays: 3}, nil)
	clothRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return([]*entity.Cloth{top, bottom}, nil)
	wornRepo.EXPECT().LatestWornSince(ctx, []uuid.UUID{top.ID, bottom.ID}, entity.DateOnly(fixedNow.AddDate(0, 0, -3))).
		Return(map[uuid.UUID]time.Time{}, nil)

	rec, err := service.Recommend(ctx, input)
	require.NoError(t, err)
	require.Len(t, rec.Clothes, 2)
	assert.Equal(t, bottom.ID, rec.Clothes[0].ID) // categories sort alphabetically
	assert.Equal(t, top.ID, rec.Clothes[1].ID)
	assert.NotEmpty(t, rec.Reason)
}

func TestRecommendService_Recommend_EmptyCloset(t *testing.T) {
	service, userRepo, clothRepo, _, weather := newRecommendServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	weather.EXPECT().CurrentWeather(ctx, 0.0, 0.0).
		Return(&entity.Weather{TempC: 20, Condition: "Sunny"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, WashCycleDays: 3}, nil)
	clothRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return([]*entity.Cloth{}, nil)

	_, err := service.Recommend(ctx, &usecase.RecommendInput{UserID: userID})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrClosetEmpty, err)
}

func TestRecommendService_Recommend_UnknownUser(t *testing.T) {
	service, userRepo, _, _, weather := newRecommendServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	weather.EXPECT().CurrentWeather(ctx, 0.0, 0.0).
		Return(&entity.Weather{TempC: 20, Condition: "Sunny"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Recommend(ctx, &usecase.RecommendInput{UserID: userID})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestRecommendService_Recommend_AllClothesResting(t *testing.T) {
	service, userRepo, clothRepo, wornRepo, weather := newRecommendServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	cloth := activeCloth(userID, "tops", nil, fixedNow.AddDate(0, 0, -30))

	weather.EXPECT().CurrentWeather(ctx, 0.0, 0.0).
		Return(&entity.Weather{TempC: 20, Condition: "Sunny"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, WashCycleDays: 3}, nil)
	clothRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return([]*entity.Cloth{cloth}, nil)
	wornRepo.EXPECT().LatestWornSince(ctx, []uuid.UUID{cloth.ID}, entity.DateOnly(fixedNow.AddDate(0, 0, -3))).
		Return(map[uuid.UUID]time.Time{cloth.ID: entity.DateOnly(fixedNow.AddDate(0, 0, -1))}, nil)

	_, err := service.Recommend(ctx, &usecase.RecommendInput{UserID: userID})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrNoEligibleClothes, err)
}

// A cloth worn exactly on the cutoff day is still resting; one worn the day
// before the cutoff is eligible again.
func TestRecommendService_Recommend_WashCycleBoundary(t *testing.T) {
	service, userRepo, clothRepo, wornRepo, weather := newRecommendServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	onCutoff := activeCloth(userID, "tops", nil, fixedNow.AddDate(0, 0, -30))
	pastCutoff := activeCloth(userID, "bottoms", nil, fixedNow.AddDate(0, 0, -30))

	cutoff := entity.DateOnly(fixedNow.AddDate(0, 0, -3))

	weather.EXPECT().CurrentWeather(ctx, 0.0, 0.0).
		Return(&entity.Weather{TempC: 20, Condition: "Sunny"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, WashCycleDays: 3}, nil)
	clothRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return([]*entity.Cloth{onCutoff, pastCutoff}, nil)
	// The repository only reports wears on or after the cutoff, so the
	// cloth worn four days ago is simply absent from the result.
	wornRepo.EXPECT().LatestWornSince(ctx, []uuid.UUID{onCutoff.ID, pastCutoff.ID}, cutoff).
		Return(map[uuid.UUID]time.Time{onCutoff.ID: cutoff}, nil)

	rec, err := service.Recommend(ctx, &usecase.RecommendInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, rec.Clothes, 1)
	assert.Equal(t, pastCutoff.ID, rec.Clothes[0].ID)
}

func TestRecommendService_Recommend_RainSafePickWins(t *testing.T) {
	service, userRepo, clothRepo, wornRepo, weather := newRecommendServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	// Same category: the rain-ready coat must beat the warmer but soakable one.
	wool := activeCloth(userID, "outer", &entity.ClothFeatures{Color: "camel", Material: "wool", WarmthLevel: 5, IsRainOk: false}, fixedNow.AddDate(0, 0, -5))
	shell := activeCloth(userID, "outer", &entity.ClothFeatures{Color: "black", Material: "nylon", WarmthLevel: 4, IsRainOk: true}, fixedNow.AddDate(0, 0, -6))

	weather.EXPECT().CurrentWeather(ctx, 0.0, 0.0).
		Return(&entity.Weather{TempC: 2, Condition: "Rain"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, WashCycleDays: 3}, nil)
	clothRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return([]*entity.Cloth{wool, shell}, nil)
	wornRepo.EXPECT().LatestWornSince(ctx, []uuid.UUID{wool.ID, shell.ID}, entity.DateOnly(fixedNow.AddDate(0, 0, -3))).
		Return(map[uuid.UUID]time.Time{}, nil)

	rec, err := service.Recommend(ctx, &usecase.RecommendInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, rec.Clothes, 1)
	// wool: 10 - |5-5| - 3 = 7; shell: 10 - |5-4| = 9.
	assert.Equal(t, shell.ID, rec.Clothes[0].ID)
	assert.Contains(t, rec.Reason, "Rain")
}

// Repeated runs over identical inputs must return the identical outfit.
func TestRecommendService_Recommend_Deterministic(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	created := fixedNow.AddDate(0, 0, -8)

	// Two indistinguishable clothes except for their IDs.
	a := activeCloth(userID, "tops", &entity.ClothFeatures{WarmthLevel: 3}, created)
	b := activeCloth(userID, "tops", &entity.ClothFeatures{WarmthLevel: 3}, created)

	var firstPick uuid.UUID
	for i := 0; i < 5; i++ {
		service, userRepo, clothRepo, wornRepo, weather := newRecommendServiceForTest(t)

		weather.EXPECT().CurrentWeather(ctx, 0.0, 0.0).
			Return(&entity.Weather{TempC: 15, Condition: "Sunny"}, nil)
		userRepo.EXPECT().FindByID(ctx, userID).
			Return(&entity.User{ID: userID, WashCycleDays: 3}, nil)
		clothRepo.EXPECT().FindActiveByUser(ctx, userID).
			Return([]*entity.Cloth{a, b}, nil)
		wornRepo.EXPECT().LatestWornSince(ctx, []uuid.UUID{a.ID, b.ID}, entity.DateOnly(fixedNow.AddDate(0, 0, -3))).
			Return(map[uuid.UUID]time.Time{}, nil)

		rec, err := service.Recommend(ctx, &usecase.RecommendInput{UserID: userID})
		require.NoError(t, err)
		require.Len(t, rec.Clothes, 1)

		if i == 0 {
			firstPick = rec.Clothes[0].ID
			continue
		}
		assert.Equal(t, firstPick, rec.Clothes[0].ID)
	}
}

func TestRecommendService_Recommend_WeatherUnavailable(t *testing.T) {
	service, _, _, _, weather := newRecommendServiceForTest(t)

	ctx := context.Background()
	weather.EXPECT().CurrentWeather(ctx, 0.0, 0.0).
		Return(nil, domainerrors.ErrWeatherUnavailable)

	_, err := service.Recommend(ctx, &usecase.RecommendInput{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to resolve weather")
}

func TestRecommendService_Recommend_CorruptedCloth(t *testing.T) {
	service, userRepo, clothRepo, _, weather := newRecommendServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	deletedAt := fixedNow.AddDate(0, 0, -1)
	corrupted := &entity.Cloth{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    entity.StatusActive,
		DeletedAt: &deletedAt, // ACTIVE with a deletion time violates the invariant
	}

	weather.EXPECT().CurrentWeather(ctx, 0.0, 0.0).
		Return(&entity.Weather{TempC: 20, Condition: "Sunny"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, WashCycleDays: 3}, nil)
	clothRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return([]*entity.Cloth{corrupted}, nil)

	_, err := service.Recommend(ctx, &usecase.RecommendInput{UserID: userID})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATA_CORRUPTION", appErr.ErrorCode())
}
