package plant

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"Planta-Backend/internal/localstore"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubS3 struct {
	deleted []string
}

func (s *stubS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (s *stubS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (s *stubS3) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *stubS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.amazonaws.com/" + objectKey
}

func (s *stubS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.s3.amazonaws.com/"
	if len(link) > len(prefix) && link[:len(prefix)] == prefix {
		return link[len(prefix):]
	}
	return ""
}

func newTestService(t *testing.T) (PlantService, string) {
	t.Helper()
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	service := NewPlantService(NewFileRepository(store), &stubS3{})
	return service, uuid.New().String()
}

func addPlantRequest(name, category string) domain.AddPlantRequest {
	return domain.AddPlantRequest{
		Name:        name,
		Image:       "data:image/jpeg;base64,dGVzdA==",
		Description: "a houseplant",
		Category:    category,
	}
}

func TestAddPlant(t *testing.T) {
	service, userID := newTestService(t)

	res, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", entities.CategoryShade), userID)
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Monstera", res.Name)
	assert.Empty(t, res.CareLog)
}

func TestAddPlantRequiresNameAndImage(t *testing.T) {
	service, userID := newTestService(t)

	req := addPlantRequest("  ", entities.CategoryShade)
	_, err := service.AddPlant(context.Background(), req, userID)
	assert.ErrorIs(t, err, domain.ErrMissingNameOrImage)

	req = addPlantRequest("Monstera", entities.CategoryShade)
	req.Image = ""
	_, err = service.AddPlant(context.Background(), req, userID)
	assert.ErrorIs(t, err, domain.ErrMissingNameOrImage)
}

func TestAddPlantRejectsUnknownCategory(t *testing.T) {
	service, userID := newTestService(t)

	_, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", "cactus-like"), userID)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetPlantsNewestFirst(t *testing.T) {
	service, userID := newTestService(t)

	_, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", entities.CategoryShade), userID)
	require.NoError(t, err)
	_, err = service.AddPlant(context.Background(), addPlantRequest("Orchid", entities.CategoryFlowering), userID)
	require.NoError(t, err)

	plants, err := service.GetPlants(context.Background(), userID, "all", "")
	require.NoError(t, err)
	require.Len(t, plants, 2)
	assert.Equal(t, "Orchid", plants[0].Name)
	assert.Equal(t, "Monstera", plants[1].Name)
}

func TestGetPlantsFilters(t *testing.T) {
	service, userID := newTestService(t)

	for _, p := range []struct{ name, category string }{
		{"Hoa lan", entities.CategoryFlowering},
		{"Sen đá", entities.CategorySucculent},
		{"Lan ý", entities.CategoryShade},
	} {
		_, err := service.AddPlant(context.Background(), addPlantRequest(p.name, p.category), userID)
		require.NoError(t, err)
	}

	byCategory, err := service.GetPlants(context.Background(), userID, entities.CategorySucculent, "")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Sen đá", byCategory[0].Name)

	bySearch, err := service.GetPlants(context.Background(), userID, "all", "lan")
	require.NoError(t, err)
	require.Len(t, bySearch, 2)

	_, err = service.GetPlants(context.Background(), userID, "bonsai", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetPlantsScopedToUser(t *testing.T) {
	service, userID := newTestService(t)

	_, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", entities.CategoryShade), userID)
	require.NoError(t, err)

	other, err := service.GetPlants(context.Background(), uuid.New().String(), "all", "")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdatePlantSelectiveFields(t *testing.T) {
	service, userID := newTestService(t)

	created, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", entities.CategoryShade), userID)
	require.NoError(t, err)

	res, err := service.UpdatePlant(context.Background(), created.ID, domain.UpdatePlantRequest{
		Description: "repotted last week",
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "Monstera", res.Name)
	assert.Equal(t, "repotted last week", res.Description)
}

func TestDeletePlantRequiresReason(t *testing.T) {
	service, userID := newTestService(t)

	created, err := service.AddPlant(context.Background(), addPlantRequest("Trầu bà", entities.CategoryShade), userID)
	require.NoError(t, err)

	err = service.DeletePlant(context.Background(), created.ID, domain.DeletePlantRequest{}, userID)
	assert.ErrorIs(t, err, domain.ErrMissingDeleteReason)

	err = service.DeletePlant(context.Background(), created.ID, domain.DeletePlantRequest{Reason: "Added by mistake"}, userID)
	require.NoError(t, err)

	_, err = service.GetPlantByID(context.Background(), created.ID, userID)
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}

func TestDeletePlantOwnership(t *testing.T) {
	service, userID := newTestService(t)

	created, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", entities.CategoryShade), userID)
	require.NoError(t, err)

	err = service.DeletePlant(context.Background(), created.ID, domain.DeletePlantRequest{Reason: "cleanup"}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestCareLogLifecycle(t *testing.T) {
	service, userID := newTestService(t)

	created, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", entities.CategoryShade), userID)
	require.NoError(t, err)

	entry, err := service.AddCareLog(context.Background(), created.ID, domain.AddCareLogRequest{
		Activity: entities.ActivityWatering,
		Date:     "2025-06-10",
		Notes:    "half a litre",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, entities.ActivityWatering, entry.Activity)

	updated, err := service.UpdateCareLog(context.Background(), created.ID, entry.ID, domain.UpdateCareLogRequest{
		Notes: "a full litre",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, "a full litre", updated.Notes)

	require.NoError(t, service.DeleteCareLog(context.Background(), created.ID, entry.ID, userID))

	err = service.DeleteCareLog(context.Background(), created.ID, entry.ID, userID)
	assert.ErrorIs(t, err, domain.ErrCareLogNotFound)
}

func TestAddCareLogValidation(t *testing.T) {
	service, userID := newTestService(t)

	created, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", entities.CategoryShade), userID)
	require.NoError(t, err)

	_, err = service.AddCareLog(context.Background(), created.ID, domain.AddCareLogRequest{
		Activity: "singing",
		Date:     "2025-06-10",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidActivity)

	_, err = service.AddCareLog(context.Background(), created.ID, domain.AddCareLogRequest{
		Activity: entities.ActivityWatering,
		Date:     "10/06/2025",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetCareLogsFilterAndOrder(t *testing.T) {
	service, userID := newTestService(t)

	created, err := service.AddPlant(context.Background(), addPlantRequest("Monstera", entities.CategoryShade), userID)
	require.NoError(t, err)

	for _, e := range []struct{ activity, date string }{
		{entities.ActivityWatering, "2025-06-01"},
		{entities.ActivityFertilizing, "2025-06-05"},
		{entities.ActivityWatering, "2025-06-10"},
	} {
		_, err := service.AddCareLog(context.Background(), created.ID, domain.AddCareLogRequest{
			Activity: e.activity,
			Date:     e.date,
		}, userID)
		require.NoError(t, err)
	}

	all, err := service.GetCareLogs(context.Background(), created.ID, userID, "all", "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].Date.After(all[1].Date))
	assert.True(t, all[1].Date.After(all[2].Date))

	watering, err := service.GetCareLogs(context.Background(), created.ID, userID, entities.ActivityWatering, "", "")
	require.NoError(t, err)
	assert.Len(t, watering, 2)

	ranged, err := service.GetCareLogs(context.Background(), created.ID, userID, "all", "2025-06-02", "2025-06-08")
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, entities.ActivityFertilizing, ranged[0].Activity)

	_, err = service.GetCareLogs(context.Background(), created.ID, userID, "all", "2025-06-10", "2025-06-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
