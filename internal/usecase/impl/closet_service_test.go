package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"closet/config"
	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	mockRepo "closet/internal/mocks/repository"
	mockService "closet/internal/mocks/service"
	"closet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type closetServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	clothRepo *mockRepo.MockClothRepository
	storage   *mockService.MockImageStorage
	analyzer  *mockService.MockFeatureAnalyzer
}

func newClosetServiceForTest(t *testing.T) (*closetService, *closetServiceMocks) {
	t.Helper()

	m := &closetServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		clothRepo: mockRepo.NewMockClothRepository(t),
		storage:   mockService.NewMockImageStorage(t),
		analyzer:  mockService.NewMockFeatureAnalyzer(t),
	}

	cfg := &config.Config{
		Closet: &config.ClosetConfig{
			DefaultWashCycleDays: 3,
			MaxUploadBytes:       1 << 20,
		},
	}

	service, ok := NewClosetService(m.txManager, m.clothRepo, m.storage, m.analyzer, cfg, slog.New(slog.DiscardHandler)).(*closetService)
	require.True(t, ok)
	service.now = func() time.Time { return fixedNow }

	return service, m
}

func TestClosetService_ListClothes(t *testing.T) {
	service, m := newClosetServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Cloth{
		activeCloth(userID, "tops", nil, fixedNow.AddDate(0, 0, -1)),
		{ID: uuid.New(), UserID: userID, Category: "outer", Status: entity.StatusLaundry},
	}

	m.clothRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	clothes, err := service.ListClothes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, clothes)
}

func TestClosetService_ListClothes_CorruptedRow(t *testing.T) {
	service, m := newClosetServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	corrupted := &entity.Cloth{ID: uuid.New(), UserID: userID, Status: entity.StatusDiscarded}

	m.clothRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Cloth{corrupted}, nil)

	_, err := service.ListClothes(ctx, userID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATA_CORRUPTION", appErr.ErrorCode())
}

func TestClosetService_AddCloth_FirstContactCreatesUser(t *testing.T) {
	service, m := newClosetServiceForTest(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txClothRepo := mockRepo.NewMockClothRepository(t)

	ctx := context.Background()
	userID := uuid.New()
	image := []byte("fake-image-bytes")
	features := &entity.ClothFeatures{Color: "navy", WarmthLevel: 3}

	m.storage.EXPECT().Save(ctx, mock.Anything, "image/jpeg", mock.Anything).
		Return("https://img.example.com/clothes/some.jpg", nil)
	m.analyzer.EXPECT().Analyze(ctx, "https://img.example.com/clothes/some.jpg", image).
		Return(features, nil)

	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewUserRepository().Return(userRepo)
	m.factory.EXPECT().NewClothRepository().Return(txClothRepo)

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, user *entity.User) error {
			assert.Equal(t, userID, user.ID)
			assert.Equal(t, 3, user.WashCycleDays)

			return nil
		})
	txClothRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	cloth, err := service.AddCloth(ctx, &usecase.AddClothInput{
		UserID:      userID,
		Category:    "tops",
		FileName:    "shirt.jpg",
		ContentType: "image/jpeg",
		Image:       image,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, cloth.UserID)
	assert.Equal(t, entity.StatusActive, cloth.Status)
	assert.Equal(t, features, cloth.Features)
	assert.NotEmpty(t, cloth.ImageURL)
}

func TestClosetService_AddCloth_ExistingUser(t *testing.T) {
	service, m := newClosetServiceForTest(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txClothRepo := mockRepo.NewMockClothRepository(t)

	ctx := context.Background()
	userID := uuid.New()
	image := []byte("fake-image-bytes")

	m.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
		Return("https://img.example.com/clothes/some.png", nil)
	m.analyzer.EXPECT().Analyze(ctx, mock.Anything, image).
		Return(nil, assert.AnError)

	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewUserRepository().Return(userRepo)
	m.factory.EXPECT().NewClothRepository().Return(txClothRepo)

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, WashCycleDays: 7}, nil)
	txClothRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	cloth, err := service.AddCloth(ctx, &usecase.AddClothInput{
		UserID:      userID,
		Category:    "bottoms",
		FileName:    "jeans.png",
		ContentType: "image/png",
		Image:       image,
	})
	require.NoError(t, err)
	// Analyzer failure degrades to a featureless cloth, never an error.
	assert.Nil(t, cloth.Features)
}

func TestClosetService_AddCloth_AnalyzerFailureIsLogged(t *testing.T) {
	service, m := newClosetServiceForTest(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txClothRepo := mockRepo.NewMockClothRepository(t)

	var logBuf bytes.Buffer
	service.logger = slog.New(slog.NewTextHandler(&logBuf, nil))

	ctx := context.Background()
	userID := uuid.New()
	image := []byte("fake-image-bytes")

	m.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
		Return("https://img.example.com/clothes/some.png", nil)
	m.analyzer.EXPECT().Analyze(ctx, mock.Anything, image).
		Return(nil, assert.AnError)

	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewUserRepository().Return(userRepo)
	m.factory.EXPECT().NewClothRepository().Return(txClothRepo)

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, WashCycleDays: 7}, nil)
	txClothRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	_, err := service.AddCloth(ctx, &usecase.AddClothInput{
		UserID:      userID,
		Category:    "bottoms",
		FileName:    "jeans.png",
		ContentType: "image/png",
		Image:       image,
	})
	require.NoError(t, err)

	// Degraded extraction is observable in the logs.
	assert.Contains(t, logBuf.String(), "Feature extraction failed")
	assert.Contains(t, logBuf.String(), "WARN")
}

func TestClosetService_AddCloth_EmptyImage(t *testing.T) {
	service, _ := newClosetServiceForTest(t)

	_, err := service.AddCloth(context.Background(), &usecase.AddClothInput{
		UserID:   uuid.New(),
		Category: "tops",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestClosetService_AddCloth_OversizedImage(t *testing.T) {
	service, _ := newClosetServiceForTest(t)

	_, err := service.AddCloth(context.Background(), &usecase.AddClothInput{
		UserID:   uuid.New(),
		Category: "tops",
		Image:    make([]byte, (1<<20)+1),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestClosetService_ChangeClothStatus_ToLaundry(t *testing.T) {
	service, m := newClosetServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	cloth := activeCloth(userID, "tops", nil, fixedNow.AddDate(0, 0, -10))

	m.clothRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{cloth.ID}).
		Return([]*entity.Cloth{cloth}, nil)
	m.clothRepo.EXPECT().UpdateStatus(ctx, cloth, entity.StatusActive).Return(nil)

	updated, err := service.ChangeClothStatus(ctx, &usecase.ChangeClothStatusInput{
		UserID:  userID,
		ClothID: cloth.ID,
		Status:  entity.StatusLaundry,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusLaundry, updated.Status)
	assert.Nil(t, updated.DeletedAt)
}

func TestClosetService_ChangeClothStatus_Discard(t *testing.T) {
	service, m := newClosetServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	cloth := activeCloth(userID, "tops", nil, fixedNow.AddDate(0, 0, -10))

	m.clothRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{cloth.ID}).
		Return([]*entity.Cloth{cloth}, nil)
	m.clothRepo.EXPECT().UpdateStatus(ctx, cloth, entity.StatusActive).Return(nil)

	updated, err := service.ChangeClothStatus(ctx, &usecase.ChangeClothStatusInput{
		UserID:  userID,
		ClothID: cloth.ID,
		Status:  entity.StatusDiscarded,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDiscarded, updated.Status)
	require.NotNil(t, updated.DeletedAt)
	assert.Equal(t, fixedNow, *updated.DeletedAt)
}

func TestClosetService_ChangeClothStatus_DiscardedIsTerminal(t *testing.T) {
	service, m := newClosetServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	deletedAt := fixedNow.AddDate(0, 0, -5)
	cloth := &entity.Cloth{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    entity.StatusDiscarded,
		DeletedAt: &deletedAt,
	}

	m.clothRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{cloth.ID}).
		Return([]*entity.Cloth{cloth}, nil)

	_, err := service.ChangeClothStatus(ctx, &usecase.ChangeClothStatusInput{
		UserID:  userID,
		ClothID: cloth.ID,
		Status:  entity.StatusActive,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
	// The original deletion time is untouched.
	assert.Equal(t, deletedAt, *cloth.DeletedAt)
}

func TestClosetService_ChangeClothStatus_ConcurrentTransitionRejected(t *testing.T) {
	service, m := newClosetServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	cloth := activeCloth(userID, "tops", nil, fixedNow.AddDate(0, 0, -10))

	m.clothRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{cloth.ID}).
		Return([]*entity.Cloth{cloth}, nil)
	// Another request discarded the cloth between the read and the write,
	// so the guarded update matches no row.
	m.clothRepo.EXPECT().UpdateStatus(ctx, cloth, entity.StatusActive).
		Return(repository.ErrStaleStatus)

	_, err := service.ChangeClothStatus(ctx, &usecase.ChangeClothStatusInput{
		UserID:  userID,
		ClothID: cloth.ID,
		Status:  entity.StatusLaundry,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestClosetService_ChangeClothStatus_ForeignClothLooksAbsent(t *testing.T) {
	service, m := newClosetServiceForTest(t)

	ctx := context.Background()
	foreign := activeCloth(uuid.New(), "tops", nil, fixedNow.AddDate(0, 0, -10))

	m.clothRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{foreign.ID}).
		Return([]*entity.Cloth{foreign}, nil)

	_, err := service.ChangeClothStatus(ctx, &usecase.ChangeClothStatusInput{
		UserID:  uuid.New(),
		ClothID: foreign.ID,
		Status:  entity.StatusLaundry,
	})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrClothNotFound, err)
}
