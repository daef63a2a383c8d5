package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddPlant       = "plant added successfully"
	MessageSuccessUpdatePlant    = "plant updated successfully"
	MessageSuccessDeletePlant    = "plant deleted successfully"
	MessageSuccessGetPlants      = "plants retrieved successfully"
	MessageSuccessUploadImage    = "plant image uploaded successfully"
	MessageSuccessAddCareLog     = "care log entry added successfully"
	MessageSuccessUpdateCareLog  = "care log entry updated successfully"
	MessageSuccessDeleteCareLog  = "care log entry deleted successfully"
	MessageSuccessGetCareLogs    = "care log retrieved successfully"

	MessageFailedAddPlant      = "failed to add plant"
	MessageFailedUpdatePlant   = "failed to update plant"
	MessageFailedDeletePlant   = "failed to delete plant"
	MessageFailedGetPlants     = "failed to retrieve plants"
	MessageFailedUploadImage   = "failed to upload plant image"
	MessageFailedAddCareLog    = "failed to add care log entry"
	MessageFailedUpdateCareLog = "failed to update care log entry"
	MessageFailedDeleteCareLog = "failed to delete care log entry"
	MessageFailedGetCareLogs   = "failed to retrieve care log"

	ErrPlantNotFound        = errors.New("plant not found")
	ErrCareLogNotFound      = errors.New("care log entry not found")
	ErrMissingNameOrImage   = errors.New("plant name and image are required")
	ErrMissingDeleteReason  = errors.New("a deletion reason is required")
	ErrInvalidCategory      = errors.New("invalid plant category")
	ErrInvalidActivity      = errors.New("invalid care activity")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrUnauthorizedAccess   = errors.New("unauthorized access to plant")
)

// DeletionReasons is the fixed choice set offered when removing a plant.
// Any other non-empty string is accepted as a free-text "other" reason.
var DeletionReasons = []string{
	"The plant died",
	"Gave the plant away",
	"Added by mistake",
	"No longer taking care of it",
}

type (
	AddPlantRequest struct {
		Name        string `json:"name" validate:"required"`
		Image       string `json:"image" validate:"required"`
		Description string `json:"description"`
		Category    string `json:"category" validate:"required,oneof=shade flowering fruit succulent other"`
	}

	UpdatePlantRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Image       string `json:"image" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty,oneof=shade flowering fruit succulent other"`
	}

	DeletePlantRequest struct {
		Reason string `json:"reason" validate:"required"`
	}

	UploadPlantImageRequest struct {
		PlantID string                `json:"plant_id" form:"plant_id" validate:"required,uuid"`
		Image   *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	PlantResponse struct {
		ID          string             `json:"id"`
		Name        string             `json:"name"`
		Image       string             `json:"image"`
		ImageURL    string             `json:"image_url,omitempty"`
		Description string             `json:"description"`
		Category    string             `json:"category"`
		CareLog     []CareLogResponse  `json:"care_log"`
		CreatedAt   time.Time          `json:"created_at"`
	}

	AddCareLogRequest struct {
		Activity string `json:"activity" validate:"required,oneof=watering fertilizing pest_control pruning other"`
		Date     string `json:"date" validate:"required"`
		Notes    string `json:"notes"`
	}

	UpdateCareLogRequest struct {
		Activity string `json:"activity" validate:"omitempty,oneof=watering fertilizing pest_control pruning other"`
		Date     string `json:"date" validate:"omitempty"`
		Notes    string `json:"notes"`
	}

	CareLogResponse struct {
		ID       string    `json:"id"`
		Activity string    `json:"activity"`
		Date     time.Time `json:"date"`
		Notes    string    `json:"notes,omitempty"`
	}

	CareLogFilter struct {
		Activity  string
		StartDate *time.Time
		EndDate   *time.Time
	}
)
