package assistant

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"context"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// weatherCacheTTL keeps the weather widget from re-querying the model on
// every page load.
const weatherCacheTTL = 10 * time.Minute

type (
	AssistantService interface {
		Identify(ctx context.Context, image *multipart.FileHeader) (domain.IdentifyPlantResponse, error)
		SearchByName(ctx context.Context, name string) (domain.PlantInfo, error)
		GetWeather(ctx context.Context, lat, lon float64) (domain.WeatherInfo, error)
		GetTip(ctx context.Context, lat, lon float64, userID string) (string, error)

		AddGrowthLog(sessionID string, req domain.AddGrowthLogRequest) (domain.GrowthLogEntry, error)
		GetGrowthLog(sessionID string) ([]domain.GrowthLogEntry, error)
	}

	// PlantLister provides the garden's plant names for tip generation.
	// Satisfied by plant.PlantRepository.
	PlantLister interface {
		GetPlants(ctx context.Context, userID string, category string, search string) ([]*entities.Plant, error)
	}

	cachedWeather struct {
		info      domain.WeatherInfo
		lat, lon  float64
		fetchedAt time.Time
	}

	assistantService struct {
		gemini GeminiClient
		plants PlantLister

		mu        sync.Mutex
		sessionID string
		growthLog []domain.GrowthLogEntry
		weather   *cachedWeather
	}
)

func NewAssistantService(gemini GeminiClient, plants PlantLister) AssistantService {
	return &assistantService{
		gemini: gemini,
		plants: plants,
	}
}

func (s *assistantService) Identify(ctx context.Context, image *multipart.FileHeader) (domain.IdentifyPlantResponse, error) {
	file, err := image.Open()
	if err != nil {
		return domain.IdentifyPlantResponse{}, err
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return domain.IdentifyPlantResponse{}, err
	}

	info, err := s.gemini.IdentifyPlant(ctx, imageData, detectMimeType(image))
	if err != nil {
		return domain.IdentifyPlantResponse{}, err
	}

	// A new identification starts a fresh session; the previous growth log
	// is ephemeral and dropped.
	s.mu.Lock()
	s.sessionID = uuid.New().String()
	s.growthLog = make([]domain.GrowthLogEntry, 0)
	sessionID := s.sessionID
	s.mu.Unlock()

	return domain.IdentifyPlantResponse{
		SessionID: sessionID,
		PlantInfo: info,
	}, nil
}

func (s *assistantService) SearchByName(ctx context.Context, name string) (domain.PlantInfo, error) {
	if strings.TrimSpace(name) == "" {
		return domain.PlantInfo{}, domain.ErrMissingSearchName
	}
	return s.gemini.SearchPlantByName(ctx, name)
}

func (s *assistantService) GetWeather(ctx context.Context, lat, lon float64) (domain.WeatherInfo, error) {
	s.mu.Lock()
	cached := s.weather
	s.mu.Unlock()

	if cached != nil && cached.lat == lat && cached.lon == lon &&
		time.Since(cached.fetchedAt) < weatherCacheTTL {
		return cached.info, nil
	}

	info, err := s.gemini.GetWeather(ctx, lat, lon)
	if err != nil {
		return domain.WeatherInfo{}, err
	}

	s.mu.Lock()
	s.weather = &cachedWeather{info: info, lat: lat, lon: lon, fetchedAt: time.Now()}
	s.mu.Unlock()

	return info, nil
}

// GetTip is best-effort: any failure degrades to a static tip, never an
// error to the caller.
func (s *assistantService) GetTip(ctx context.Context, lat, lon float64, userID string) (string, error) {
	weather, err := s.GetWeather(ctx, lat, lon)
	if err != nil {
		log.Printf("assistant: weather for tip: %v", err)
		return domain.TipFallback, nil
	}

	plants, err := s.plants.GetPlants(ctx, userID, "all", "")
	if err != nil {
		log.Printf("assistant: list plants for tip: %v", err)
		return domain.TipFallback, nil
	}
	if len(plants) == 0 {
		return domain.TipEmptyGarden, nil
	}

	names := make([]string, 0, len(plants))
	for _, p := range plants {
		names = append(names, p.Name)
	}

	tip, err := s.gemini.GetCareTip(ctx, weather, names)
	if err != nil {
		log.Printf("assistant: generate tip: %v", err)
		return domain.TipFallback, nil
	}
	return tip, nil
}

func (s *assistantService) AddGrowthLog(sessionID string, req domain.AddGrowthLogRequest) (domain.GrowthLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" || sessionID != s.sessionID {
		return domain.GrowthLogEntry{}, domain.ErrSessionNotFound
	}

	entry := domain.GrowthLogEntry{
		ID:    uuid.New().String(),
		Image: req.Image,
		Note:  req.Note,
		Date:  time.Now().Format("02/01/2006"),
	}
	s.growthLog = append([]domain.GrowthLogEntry{entry}, s.growthLog...)
	return entry, nil
}

func (s *assistantService) GetGrowthLog(sessionID string) ([]domain.GrowthLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" || sessionID != s.sessionID {
		return nil, domain.ErrSessionNotFound
	}

	out := make([]domain.GrowthLogEntry, len(s.growthLog))
	copy(out, s.growthLog)
	return out, nil
}

func detectMimeType(file *multipart.FileHeader) string {
	mimeType := file.Header.Get("Content-Type")
	if mimeType != "" {
		return mimeType
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
