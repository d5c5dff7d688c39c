package impl

import (
	"context"
	"testing"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	mockRepo "closet/internal/mocks/repository"
	"closet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_UpdateWashCycle_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAccountService(txManager, userRepo)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().UpdateWashCycle(ctx, userID, 7).Return(nil)

	err := service.UpdateWashCycle(ctx, &usecase.UpdateWashCycleInput{
		UserID:        userID,
		WashCycleDays: 7,
	})
	require.NoError(t, err)
}

func TestAccountService_UpdateWashCycle_RejectsZero(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAccountService(txManager, userRepo)

	err := service.UpdateWashCycle(context.Background(), &usecase.UpdateWashCycleInput{
		UserID:        uuid.New(),
		WashCycleDays: 0,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAccountService_UpdateWashCycle_UserNotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAccountService(txManager, userRepo)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().UpdateWashCycle(ctx, userID, 5).Return(repository.ErrUserNotFound)

	err := service.UpdateWashCycle(ctx, &usecase.UpdateWashCycleInput{
		UserID:        userID,
		WashCycleDays: 5,
	})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestAccountService_LinkProvider_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	providerRepo := mockRepo.NewMockAuthProviderRepository(t)
	service := NewAccountService(txManager, userRepo)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewAuthProviderRepository().Return(providerRepo)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	providerRepo.EXPECT().Link(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, link *entity.AuthProvider) error {
			assert.Equal(t, userID, link.UserID)
			assert.Equal(t, "google", link.Provider)
			assert.Equal(t, "sub-12345", link.ProviderUserID)

			return nil
		})

	link, err := service.LinkProvider(ctx, &usecase.LinkProviderInput{
		UserID:         userID,
		Provider:       "google",
		ProviderUserID: "sub-12345",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, link.UserID)
}

func TestAccountService_LinkProvider_Conflict(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	providerRepo := mockRepo.NewMockAuthProviderRepository(t)
	service := NewAccountService(txManager, userRepo)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewAuthProviderRepository().Return(providerRepo)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	providerRepo.EXPECT().Link(ctx, mock.Anything).Return(repository.ErrProviderAlreadyLinked)

	_, err := service.LinkProvider(ctx, &usecase.LinkProviderInput{
		UserID:         userID,
		Provider:       "google",
		ProviderUserID: "sub-12345",
	})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrProviderConflict, err)
}

func TestAccountService_LinkProvider_MissingFields(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAccountService(txManager, userRepo)

	_, err := service.LinkProvider(context.Background(), &usecase.LinkProviderInput{
		UserID:   uuid.New(),
		Provider: "google",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
