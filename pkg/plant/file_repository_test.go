package plant

import (
	"Planta-Backend/entities"
	"Planta-Backend/internal/localstore"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepositoryPersistsAcrossReloads(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir)
	require.NoError(t, err)

	repo := NewFileRepository(store)
	userID := uuid.New()
	plant := &entities.Plant{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     "Monstera",
		Image:    "data:image/jpeg;base64,dGVzdA==",
		Category: entities.CategoryShade,
	}
	require.NoError(t, repo.AddPlant(context.Background(), plant))
	require.NoError(t, repo.AddCareLog(context.Background(), &entities.CareLogEntry{
		ID:       uuid.New(),
		PlantID:  plant.ID,
		Activity: entities.ActivityWatering,
		Date:     time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}))

	// A fresh repository on the same directory sees the saved state.
	reloaded := NewFileRepository(store)
	got, err := reloaded.GetPlantByID(context.Background(), plant.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Monstera", got.Name)
	assert.Len(t, got.CareLog, 1)
}

func TestFileRepositoryNewestFirst(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	repo := NewFileRepository(store)
	userID := uuid.New()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.AddPlant(context.Background(), &entities.Plant{
			ID:     uuid.New(),
			UserID: userID,
			Name:   name,
		}))
	}

	plants, err := repo.GetPlants(context.Background(), userID.String(), "all", "")
	require.NoError(t, err)
	require.Len(t, plants, 3)
	assert.Equal(t, "third", plants[0].Name)
	assert.Equal(t, "first", plants[2].Name)
}

func TestFileRepositoryReturnsClones(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	repo := NewFileRepository(store)

	plant := &entities.Plant{ID: uuid.New(), UserID: uuid.New(), Name: "Monstera"}
	require.NoError(t, repo.AddPlant(context.Background(), plant))

	got, err := repo.GetPlantByID(context.Background(), plant.ID.String())
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := repo.GetPlantByID(context.Background(), plant.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Monstera", again.Name)
}
