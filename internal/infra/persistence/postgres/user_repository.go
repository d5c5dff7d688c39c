// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	"closet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Another request created the same user concurrently; callers
			// treat that as success on the first-contact path.
			return nil
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateWashCycle changes the user's wash cycle length in days.
func (repo *userRepository) UpdateWashCycle(ctx context.Context, id uuid.UUID, days int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("wash_cycle_days", days)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update wash cycle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	providers := make([]*entity.AuthProvider, 0, len(data.AuthProviders))
	for _, p := range data.AuthProviders {
		providers = append(providers, &entity.AuthProvider{
			ID:             p.ID,
			UserID:         p.UserID,
			Provider:       p.Provider,
			ProviderUserID: p.ProviderUserID,
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		})
	}

	return &entity.User{
		ID:            data.ID,
		WashCycleDays: data.WashCycleDays,
		AuthProviders: providers,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		WashCycleDays: data.WashCycleDays,
	}
}
