package cars

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almashriq-motors/dealership-backend/pkg/db"
	"github.com/almashriq-motors/dealership-backend/pkg/db/models"
)

func repoCar(id uuid.UUID) *models.Car {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return &models.Car{
		ID:           id,
		Title:        "تويوتا لاند كروزر 2023",
		Make:         "تويوتا",
		Model:        "لاند كروزر",
		Year:         2023,
		Price:        198000,
		Mileage:      5000,
		FuelType:     "بنزين",
		Transmission: "أوتوماتيك",
		EngineSize:   "4.0L V8",
		BodyType:     "SUV",
		Location:     "عدن",
		Features:     []string{"دفع رباعي", "7 مقاعد"},
		Images:       []string{"/uploads/cruiser.jpg"},
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestMemoryRepositoryPutAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.Put(ctx, repoCar(id)))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "تويوتا", got.Make)
	assert.Equal(t, []string{"دفع رباعي", "7 مقاعد"}, got.Features)
}

func TestMemoryRepositoryGetMiss(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestMemoryRepositoryPutReplacesExisting(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.Put(ctx, repoCar(id)))

	replacement := repoCar(id)
	replacement.Price = 189000
	require.NoError(t, repo.Put(ctx, replacement))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 189000, got.Price)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryRepositorySnapshotIsolation(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	id := uuid.New()

	original := repoCar(id)
	require.NoError(t, repo.Put(ctx, original))

	// Mutating the caller's copy after Put must not touch the stored record.
	original.Price = 1
	original.Features[0] = "mutated"

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 198000, got.Price)
	assert.Equal(t, "دفع رباعي", got.Features[0])

	// Mutating a read result must not touch the stored record either.
	got.Price = 2
	got.Features[0] = "mutated again"

	again, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 198000, again.Price)
	assert.Equal(t, "دفع رباعي", again.Features[0])
}

func TestMemoryRepositoryRemove(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.Put(ctx, repoCar(id)))

	removed, err := repo.Remove(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
