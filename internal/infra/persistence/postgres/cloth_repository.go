package postgres

import (
	"context"
	"encoding/json"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	"closet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// clothRepository implements the repository.ClothRepository interface.
type clothRepository struct {
	db *gorm.DB
}

// NewClothRepository is the constructor for clothRepository.
func NewClothRepository(db *gorm.DB) repository.ClothRepository {
	return &clothRepository{
		db: db,
	}
}

// FindActiveByUser retrieves all ACTIVE clothes for a user.
func (repo *clothRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cloth, error) {
	var clothModels []*model.ClothModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.StatusActive)).
		Order("created_at DESC").
		Find(&clothModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active clothes by user")
	}

	return toClothDomainSlice(clothModels)
}

// FindByUser retrieves all non-discarded clothes for a user.
func (repo *clothRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cloth, error) {
	var clothModels []*model.ClothModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, string(entity.StatusDiscarded)).
		Order("created_at DESC").
		Find(&clothModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find clothes by user")
	}

	return toClothDomainSlice(clothModels)
}

// FindByIDs retrieves clothes by their IDs, regardless of status.
func (repo *clothRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Cloth, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var clothModels []*model.ClothModel

	if err := repo.db.WithContext(ctx).
		Where("cloth_id IN ?", ids).
		Find(&clothModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find clothes by ids")
	}

	return toClothDomainSlice(clothModels)
}

// Create persists a new cloth.
func (repo *clothRepository) Create(ctx context.Context, cloth *entity.Cloth) error {
	clothM, err := fromClothDomain(cloth)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(clothM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required cloth information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cloth")
	}

	cloth.ID = clothM.ID
	cloth.CreatedAt = clothM.CreatedAt
	cloth.UpdatedAt = clothM.UpdatedAt

	return nil
}

// UpdateStatus persists a lifecycle change together with the deletion
// timestamp, keeping the status/deleted_at invariant in one write. The
// status guard in the WHERE clause makes the read-validate-write sequence
// safe against a concurrent transition on the same cloth.
func (repo *clothRepository) UpdateStatus(ctx context.Context, cloth *entity.Cloth, from entity.ClothStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClothModel{}).
		Where("cloth_id = ? AND status = ?", cloth.ID, string(from)).
		Updates(map[string]any{
			"status":     string(cloth.Status),
			"deleted_at": cloth.DeletedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cloth status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaleStatus
	}

	return nil
}

// --- Mapper Functions ---

func toClothDomainSlice(clothModels []*model.ClothModel) ([]*entity.Cloth, error) {
	clothes := make([]*entity.Cloth, 0, len(clothModels))
	for _, clothM := range clothModels {
		cloth, err := toClothDomain(clothM)
		if err != nil {
			return nil, err
		}
		clothes = append(clothes, cloth)
	}

	return clothes, nil
}

// toClothDomain converts a GORM ClothModel to a domain Cloth entity.
func toClothDomain(data *model.ClothModel) (*entity.Cloth, error) {
	if data == nil {
		return nil, nil
	}

	var features *entity.ClothFeatures
	if len(data.Features) > 0 {
		features = &entity.ClothFeatures{}
		if err := json.Unmarshal(data.Features, features); err != nil {
			return nil, errors.Wrapf(err, "malformed features payload for cloth %s", data.ID)
		}
	}

	return &entity.Cloth{
		ID:        data.ID,
		UserID:    data.UserID,
		ImageURL:  data.ImageURL,
		Category:  data.Category,
		Features:  features,
		Status:    entity.ClothStatus(data.Status),
		CreatedAt: data.CreatedAt,
		DeletedAt: data.DeletedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromClothDomain converts a domain Cloth entity to a GORM ClothModel for persistence.
func fromClothDomain(data *entity.Cloth) (*model.ClothModel, error) {
	if data == nil {
		return nil, nil
	}

	var features datatypes.JSON
	if data.Features != nil {
		raw, err := json.Marshal(data.Features)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal cloth features")
		}
		features = datatypes.JSON(raw)
	}

	return &model.ClothModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ImageURL:  data.ImageURL,
		Category:  data.Category,
		Features:  features,
		Status:    string(data.Status),
		DeletedAt: data.DeletedAt,
	}, nil
}
