package postgres

import (
	"context"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	"closet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authProviderRepository implements the repository.AuthProviderRepository interface.
type authProviderRepository struct {
	db *gorm.DB
}

// NewAuthProviderRepository is the constructor for authProviderRepository.
func NewAuthProviderRepository(db *gorm.DB) repository.AuthProviderRepository {
	return &authProviderRepository{
		db: db,
	}
}

// Link persists a new provider link for a user.
func (repo *authProviderRepository) Link(ctx context.Context, link *entity.AuthProvider) error {
	linkM := &model.AuthProviderModel{
		ID:             link.ID,
		UserID:         link.UserID,
		Provider:       link.Provider,
		ProviderUserID: link.ProviderUserID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProviderAlreadyLinked
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link auth provider")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindByProvider retrieves a link by the unique (provider, provider_user_id) pair.
func (repo *authProviderRepository) FindByProvider(ctx context.Context, provider, providerUserID string) (*entity.AuthProvider, error) {
	var linkM model.AuthProviderModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth provider link")
	}

	return &entity.AuthProvider{
		ID:             linkM.ID,
		UserID:         linkM.UserID,
		Provider:       linkM.Provider,
		ProviderUserID: linkM.ProviderUserID,
		CreatedAt:      linkM.CreatedAt,
		UpdatedAt:      linkM.UpdatedAt,
	}, nil
}
