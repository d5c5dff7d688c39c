package postgres

import (
	"context"
	"time"

	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/repository"
	"closet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wornRepository implements the repository.WornRepository interface.
type wornRepository struct {
	db *gorm.DB
}

// NewWornRepository is the constructor for wornRepository.
func NewWornRepository(db *gorm.DB) repository.WornRepository {
	return &wornRepository{
		db: db,
	}
}

// latestWornRow carries the aggregated result of LatestWornSince.
type latestWornRow struct {
	ClothID  uuid.UUID
	LastWorn time.Time
}

// LatestWornSince returns the most recent worn date per cloth inside the
// window. Clothes never worn, or worn only before the window, are absent.
func (repo *wornRepository) LatestWornSince(ctx context.Context, clothIDs []uuid.UUID, since time.Time) (map[uuid.UUID]time.Time, error) {
	if len(clothIDs) == 0 {
		return map[uuid.UUID]time.Time{}, nil
	}

	var rows []latestWornRow

	if err := repo.db.WithContext(ctx).
		Model(&model.WornHistoryModel{}).
		Select("cloth_id, MAX(worn_date) AS last_worn").
		Where("cloth_id IN ? AND worn_date >= ?", clothIDs, entity.DateOnly(since)).
		Group("cloth_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query latest worn dates")
	}

	latest := make(map[uuid.UUID]time.Time, len(rows))
	for _, row := range rows {
		latest[row.ClothID] = entity.DateOnly(row.LastWorn)
	}

	return latest, nil
}

// Append inserts worn records, silently skipping (cloth_id, worn_date)
// pairs that already exist. Re-confirming an outfit is therefore a no-op
// and duplicate rows can never skew the wash-cycle filter.
func (repo *wornRepository) Append(ctx context.Context, records []*entity.WornRecord) error {
	if len(records) == 0 {
		return nil
	}

	wornModels := make([]*model.WornHistoryModel, 0, len(records))
	for _, record := range records {
		wornModels = append(wornModels, &model.WornHistoryModel{
			ID:       record.ID,
			ClothID:  record.ClothID,
			WornDate: entity.DateOnly(record.WornDate),
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cloth_id"}, {Name: "worn_date"}},
			DoNothing: true,
		}).
		Create(wornModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClothNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append worn records")
	}

	return nil
}
