package plant

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"Planta-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PlantService interface {
		AddPlant(ctx context.Context, req domain.AddPlantRequest, userID string) (domain.PlantResponse, error)
		UpdatePlant(ctx context.Context, id string, req domain.UpdatePlantRequest, userID string) (domain.PlantResponse, error)
		DeletePlant(ctx context.Context, id string, req domain.DeletePlantRequest, userID string) error
		GetPlants(ctx context.Context, userID string, category string, search string) ([]domain.PlantResponse, error)
		GetPlantByID(ctx context.Context, id string, userID string) (domain.PlantResponse, error)
		UploadPlantImage(ctx context.Context, req domain.UploadPlantImageRequest, userID string) (string, error)

		AddCareLog(ctx context.Context, plantID string, req domain.AddCareLogRequest, userID string) (domain.CareLogResponse, error)
		UpdateCareLog(ctx context.Context, plantID string, logID string, req domain.UpdateCareLogRequest, userID string) (domain.CareLogResponse, error)
		DeleteCareLog(ctx context.Context, plantID string, logID string, userID string) error
		GetCareLogs(ctx context.Context, plantID string, userID string, activity string, startDate string, endDate string) ([]domain.CareLogResponse, error)
	}

	plantService struct {
		plantRepository PlantRepository
		s3              storage.AwsS3
	}
)

func NewPlantService(plantRepository PlantRepository, s3 storage.AwsS3) PlantService {
	return &plantService{
		plantRepository: plantRepository,
		s3:              s3,
	}
}

func (s *plantService) AddPlant(ctx context.Context, req domain.AddPlantRequest, userID string) (domain.PlantResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.Image == "" {
		return domain.PlantResponse{}, domain.ErrMissingNameOrImage
	}
	if !entities.ValidCategory(req.Category) {
		return domain.PlantResponse{}, domain.ErrInvalidCategory
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PlantResponse{}, domain.ErrParseUUID
	}

	plant := &entities.Plant{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
		CareLog:     []entities.CareLogEntry{},
	}
	plant.CreatedAt = time.Now()

	if err := s.plantRepository.AddPlant(ctx, plant); err != nil {
		return domain.PlantResponse{}, err
	}

	return toPlantResponse(plant), nil
}

func (s *plantService) UpdatePlant(ctx context.Context, id string, req domain.UpdatePlantRequest, userID string) (domain.PlantResponse, error) {
	plant, err := s.getOwnedPlant(ctx, id, userID)
	if err != nil {
		return domain.PlantResponse{}, err
	}

	if req.Name != "" {
		plant.Name = req.Name
	}
	if req.Image != "" {
		plant.Image = req.Image
	}
	if req.Description != "" {
		plant.Description = req.Description
	}
	if req.Category != "" {
		if !entities.ValidCategory(req.Category) {
			return domain.PlantResponse{}, domain.ErrInvalidCategory
		}
		plant.Category = req.Category
	}

	if err := s.plantRepository.UpdatePlant(ctx, plant); err != nil {
		return domain.PlantResponse{}, err
	}

	return toPlantResponse(plant), nil
}

func (s *plantService) DeletePlant(ctx context.Context, id string, req domain.DeletePlantRequest, userID string) error {
	if strings.TrimSpace(req.Reason) == "" {
		return domain.ErrMissingDeleteReason
	}

	plant, err := s.getOwnedPlant(ctx, id, userID)
	if err != nil {
		return err
	}

	// The reason is surfaced for audit only, never stored with the plant.
	log.Printf("plant %s (%q) deleted, reason: %q. This data may be used to improve the AI.",
		plant.ID, plant.Name, req.Reason)

	if plant.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(plant.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.plantRepository.DeletePlant(ctx, id)
}

func (s *plantService) GetPlants(ctx context.Context, userID string, category string, search string) ([]domain.PlantResponse, error) {
	if category != "" && category != "all" && !entities.ValidCategory(category) {
		return nil, domain.ErrInvalidCategory
	}

	plants, err := s.plantRepository.GetPlants(ctx, userID, category, search)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PlantResponse, 0, len(plants))
	for _, p := range plants {
		response = append(response, toPlantResponse(p))
	}
	return response, nil
}

func (s *plantService) GetPlantByID(ctx context.Context, id string, userID string) (domain.PlantResponse, error) {
	plant, err := s.getOwnedPlant(ctx, id, userID)
	if err != nil {
		return domain.PlantResponse{}, err
	}
	return toPlantResponse(plant), nil
}

func (s *plantService) UploadPlantImage(ctx context.Context, req domain.UploadPlantImageRequest, userID string) (string, error) {
	plant, err := s.getOwnedPlant(ctx, req.PlantID, userID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("plant-%s", plant.ID.String())
	var objectKey string
	var uploadErr error

	if plant.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(plant.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "plants", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "plants", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	plant.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.plantRepository.UpdatePlant(ctx, plant); err != nil {
		return "", err
	}

	return plant.ImageURL, nil
}

func (s *plantService) AddCareLog(ctx context.Context, plantID string, req domain.AddCareLogRequest, userID string) (domain.CareLogResponse, error) {
	plant, err := s.getOwnedPlant(ctx, plantID, userID)
	if err != nil {
		return domain.CareLogResponse{}, err
	}

	if !entities.ValidActivity(req.Activity) {
		return domain.CareLogResponse{}, domain.ErrInvalidActivity
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.CareLogResponse{}, domain.ErrInvalidDate
	}

	entry := &entities.CareLogEntry{
		ID:       uuid.New(),
		PlantID:  plant.ID,
		Activity: req.Activity,
		Date:     date,
		Notes:    req.Notes,
	}
	entry.CreatedAt = time.Now()

	if err := s.plantRepository.AddCareLog(ctx, entry); err != nil {
		return domain.CareLogResponse{}, err
	}

	return toCareLogResponse(entry), nil
}

func (s *plantService) UpdateCareLog(ctx context.Context, plantID string, logID string, req domain.UpdateCareLogRequest, userID string) (domain.CareLogResponse, error) {
	if _, err := s.getOwnedPlant(ctx, plantID, userID); err != nil {
		return domain.CareLogResponse{}, err
	}

	entry, err := s.plantRepository.GetCareLogByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CareLogResponse{}, domain.ErrCareLogNotFound
		}
		return domain.CareLogResponse{}, err
	}
	if entry.PlantID.String() != plantID {
		return domain.CareLogResponse{}, domain.ErrCareLogNotFound
	}

	if req.Activity != "" {
		if !entities.ValidActivity(req.Activity) {
			return domain.CareLogResponse{}, domain.ErrInvalidActivity
		}
		entry.Activity = req.Activity
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.CareLogResponse{}, domain.ErrInvalidDate
		}
		entry.Date = date
	}
	entry.Notes = req.Notes

	if err := s.plantRepository.UpdateCareLog(ctx, entry); err != nil {
		return domain.CareLogResponse{}, err
	}

	return toCareLogResponse(entry), nil
}

func (s *plantService) DeleteCareLog(ctx context.Context, plantID string, logID string, userID string) error {
	if _, err := s.getOwnedPlant(ctx, plantID, userID); err != nil {
		return err
	}

	entry, err := s.plantRepository.GetCareLogByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCareLogNotFound
		}
		return err
	}
	if entry.PlantID.String() != plantID {
		return domain.ErrCareLogNotFound
	}

	return s.plantRepository.DeleteCareLog(ctx, logID)
}

func (s *plantService) GetCareLogs(ctx context.Context, plantID string, userID string, activity string, startDate string, endDate string) ([]domain.CareLogResponse, error) {
	if _, err := s.getOwnedPlant(ctx, plantID, userID); err != nil {
		return nil, err
	}

	if activity != "" && activity != "all" && !entities.ValidActivity(activity) {
		return nil, domain.ErrInvalidActivity
	}

	filter := domain.CareLogFilter{Activity: activity}
	if startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		filter.StartDate = &start
	}
	if endDate != "" {
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	entries, err := s.plantRepository.GetCareLogs(ctx, plantID, filter)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CareLogResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, toCareLogResponse(e))
	}
	return response, nil
}

func (s *plantService) getOwnedPlant(ctx context.Context, id string, userID string) (*entities.Plant, error) {
	plant, err := s.plantRepository.GetPlantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlantNotFound
		}
		return nil, err
	}
	if plant.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return plant, nil
}

func toPlantResponse(plant *entities.Plant) domain.PlantResponse {
	careLog := make([]domain.CareLogResponse, 0, len(plant.CareLog))
	for i := range plant.CareLog {
		careLog = append(careLog, toCareLogResponse(&plant.CareLog[i]))
	}
	return domain.PlantResponse{
		ID:          plant.ID.String(),
		Name:        plant.Name,
		Image:       plant.Image,
		ImageURL:    plant.ImageURL,
		Description: plant.Description,
		Category:    plant.Category,
		CareLog:     careLog,
		CreatedAt:   plant.CreatedAt,
	}
}

func toCareLogResponse(entry *entities.CareLogEntry) domain.CareLogResponse {
	return domain.CareLogResponse{
		ID:       entry.ID.String(),
		Activity: entry.Activity,
		Date:     entry.Date,
		Notes:    entry.Notes,
	}
}
