package assistant

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGemini struct {
	plantInfo   domain.PlantInfo
	identifyErr error
	weather     domain.WeatherInfo
	weatherErr  error
	tip         string
	tipErr      error
	tipCalls    int
}

func (s *stubGemini) IdentifyPlant(context.Context, []byte, string) (domain.PlantInfo, error) {
	return s.plantInfo, s.identifyErr
}

func (s *stubGemini) SearchPlantByName(context.Context, string) (domain.PlantInfo, error) {
	return s.plantInfo, s.identifyErr
}

func (s *stubGemini) GetWeather(context.Context, float64, float64) (domain.WeatherInfo, error) {
	return s.weather, s.weatherErr
}

func (s *stubGemini) GetCareTip(context.Context, domain.WeatherInfo, []string) (string, error) {
	s.tipCalls++
	return s.tip, s.tipErr
}

type stubPlantLister struct {
	plants []*entities.Plant
	err    error
}

func (s *stubPlantLister) GetPlants(context.Context, string, string, string) ([]*entities.Plant, error) {
	return s.plants, s.err
}

func imageFileHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "plant.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestIdentifyStartsFreshSession(t *testing.T) {
	gemini := &stubGemini{plantInfo: domain.PlantInfo{CommonName: "Monstera"}}
	service := NewAssistantService(gemini, &stubPlantLister{})

	first, err := service.Identify(context.Background(), imageFileHeader(t))
	require.NoError(t, err)
	require.NotEmpty(t, first.SessionID)
	assert.Equal(t, "Monstera", first.PlantInfo.CommonName)

	entry, err := service.AddGrowthLog(first.SessionID, domain.AddGrowthLogRequest{
		Image: "data:image/jpeg;base64,Zm9v",
		Note:  "new leaf unfurling",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Date)

	// A second identification invalidates the previous session and its log.
	second, err := service.Identify(context.Background(), imageFileHeader(t))
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	_, err = service.GetGrowthLog(first.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	fresh, err := service.GetGrowthLog(second.SessionID)
	require.NoError(t, err)
	assert.Empty(t, fresh)
}

func TestGrowthLogNewestFirst(t *testing.T) {
	gemini := &stubGemini{}
	service := NewAssistantService(gemini, &stubPlantLister{})

	res, err := service.Identify(context.Background(), imageFileHeader(t))
	require.NoError(t, err)

	for _, note := range []string{"first", "second"} {
		_, err := service.AddGrowthLog(res.SessionID, domain.AddGrowthLogRequest{
			Image: "data:image/jpeg;base64,Zm9v",
			Note:  note,
		})
		require.NoError(t, err)
	}

	log, err := service.GetGrowthLog(res.SessionID)
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "second", log[0].Note)
}

func TestAddGrowthLogUnknownSession(t *testing.T) {
	service := NewAssistantService(&stubGemini{}, &stubPlantLister{})

	_, err := service.AddGrowthLog("nope", domain.AddGrowthLogRequest{Image: "x", Note: "y"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSearchByNameRequiresName(t *testing.T) {
	service := NewAssistantService(&stubGemini{}, &stubPlantLister{})

	_, err := service.SearchByName(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrMissingSearchName)
}

func TestGetWeatherCaches(t *testing.T) {
	gemini := &stubGemini{weather: domain.WeatherInfo{Temperature: 30, Condition: "sunny"}}
	service := NewAssistantService(gemini, &stubPlantLister{})

	first, err := service.GetWeather(context.Background(), 10.76, 106.66)
	require.NoError(t, err)

	// A failure after caching is invisible for the same coordinates.
	gemini.weatherErr = errors.New("model offline")
	second, err := service.GetWeather(context.Background(), 10.76, 106.66)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Different coordinates bypass the cache.
	_, err = service.GetWeather(context.Background(), 21.02, 105.80)
	assert.Error(t, err)
}

func TestGetTipFallsBackOnWeatherError(t *testing.T) {
	gemini := &stubGemini{weatherErr: errors.New("model offline")}
	service := NewAssistantService(gemini, &stubPlantLister{})

	tip, err := service.GetTip(context.Background(), 10.76, 106.66, "user")
	require.NoError(t, err)
	assert.Equal(t, domain.TipFallback, tip)
	assert.Zero(t, gemini.tipCalls)
}

func TestGetTipEmptyGarden(t *testing.T) {
	gemini := &stubGemini{weather: domain.WeatherInfo{Temperature: 30}}
	service := NewAssistantService(gemini, &stubPlantLister{})

	tip, err := service.GetTip(context.Background(), 10.76, 106.66, "user")
	require.NoError(t, err)
	assert.Equal(t, domain.TipEmptyGarden, tip)
	assert.Zero(t, gemini.tipCalls)
}

func TestGetTipUsesGardenNames(t *testing.T) {
	gemini := &stubGemini{
		weather: domain.WeatherInfo{Temperature: 30},
		tip:     "Shade the Monstera from the afternoon sun.",
	}
	lister := &stubPlantLister{plants: []*entities.Plant{{Name: "Monstera"}}}
	service := NewAssistantService(gemini, lister)

	tip, err := service.GetTip(context.Background(), 10.76, 106.66, "user")
	require.NoError(t, err)
	assert.Equal(t, gemini.tip, tip)
	assert.Equal(t, 1, gemini.tipCalls)
}

func TestGetTipFallsBackOnModelError(t *testing.T) {
	gemini := &stubGemini{
		weather: domain.WeatherInfo{Temperature: 30},
		tipErr:  errors.New("model offline"),
	}
	lister := &stubPlantLister{plants: []*entities.Plant{{Name: "Monstera"}}}
	service := NewAssistantService(gemini, lister)

	tip, err := service.GetTip(context.Background(), 10.76, 106.66, "user")
	require.NoError(t, err)
	assert.Equal(t, domain.TipFallback, tip)
}
