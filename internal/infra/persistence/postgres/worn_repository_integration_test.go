package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"closet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openIntegrationDB connects to the disposable database named by the
// CLOSET_TEST_DSN env var and creates the tables the test needs. The DDL
// mirrors the persistence models minus the uuid_generate_v7 defaults, since
// every test row carries an explicit ID.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("CLOSET_TEST_DSN")
	if dsn == "" {
		t.Skip("Skipping integration test: CLOSET_TEST_DSN env var not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id uuid PRIMARY KEY,
			wash_cycle_days int NOT NULL DEFAULT 3,
			created_at timestamptz,
			updated_at timestamptz
		)`,
		`CREATE TABLE IF NOT EXISTS clothes (
			cloth_id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users (user_id),
			image_url text NOT NULL,
			category varchar(100) NOT NULL,
			features jsonb,
			status varchar(16) NOT NULL DEFAULT 'ACTIVE',
			created_at timestamptz,
			deleted_at timestamptz,
			updated_at timestamptz
		)`,
		`CREATE TABLE IF NOT EXISTS worn_history (
			history_id uuid PRIMARY KEY,
			cloth_id uuid NOT NULL REFERENCES clothes (cloth_id),
			worn_date date NOT NULL,
			updated_at timestamptz,
			CONSTRAINT idx_worn_cloth_date UNIQUE (cloth_id, worn_date)
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

// seedCloth inserts a user and one of their clothes, registering cleanup of
// everything the test creates.
func seedCloth(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	clothID := uuid.New()

	require.NoError(t, db.Exec(
		`INSERT INTO users (user_id, wash_cycle_days) VALUES (?, 3)`, userID).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO clothes (cloth_id, user_id, image_url, category, status)
		 VALUES (?, ?, 'https://img.example.com/it.jpg', 'tops', 'ACTIVE')`,
		clothID, userID).Error)

	t.Cleanup(func() {
		db.Exec(`DELETE FROM worn_history WHERE cloth_id = ?`, clothID)
		db.Exec(`DELETE FROM clothes WHERE cloth_id = ?`, clothID)
		db.Exec(`DELETE FROM users WHERE user_id = ?`, userID)
	})

	return clothID
}

func TestWornRepository_Append_DuplicateIsNoOp_Integration(t *testing.T) {
	db := openIntegrationDB(t)
	clothID := seedCloth(t, db)

	ctx := context.Background()
	repo := NewWornRepository(db)
	wornDate := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	since := wornDate.AddDate(0, 0, -3)

	first := entity.NewWornRecord(clothID, wornDate)
	require.NoError(t, repo.Append(ctx, []*entity.WornRecord{first}))

	latestAfterFirst, err := repo.LatestWornSince(ctx, []uuid.UUID{clothID}, since)
	require.NoError(t, err)
	require.Equal(t, wornDate, latestAfterFirst[clothID])

	// Re-confirming the same cloth and date carries a fresh record ID but
	// lands on the (cloth_id, worn_date) unique index: nothing is inserted.
	second := entity.NewWornRecord(clothID, wornDate)
	require.NoError(t, repo.Append(ctx, []*entity.WornRecord{second}))

	var rowCount int64
	require.NoError(t, db.Table("worn_history").
		Where("cloth_id = ?", clothID).Count(&rowCount).Error)
	assert.EqualValues(t, 1, rowCount)

	latestAfterSecond, err := repo.LatestWornSince(ctx, []uuid.UUID{clothID}, since)
	require.NoError(t, err)
	assert.Equal(t, latestAfterFirst, latestAfterSecond)
}

func TestWornRepository_Append_UnknownClothFails_Integration(t *testing.T) {
	db := openIntegrationDB(t)

	ctx := context.Background()
	repo := NewWornRepository(db)

	record := entity.NewWornRecord(uuid.New(), time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	err := repo.Append(ctx, []*entity.WornRecord{record})
	require.Error(t, err)
}