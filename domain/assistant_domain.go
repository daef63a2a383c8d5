package domain

import (
	"errors"
	"mime/multipart"
)

// HealthStatusNA is substituted when a plant is looked up by name: there is
// no photo to assess, so health analysis does not apply.
const HealthStatusNA = "N/A"

// TipFallback is returned when tip generation fails; the assistant never
// propagates tip errors to the caller.
const TipFallback = "Check your plants' soil moisture today and water the ones that feel dry."

// TipEmptyGarden is returned when the garden has no plants to base a tip on.
const TipEmptyGarden = "Add some plants to your garden to get weather-based care tips!"

var (
	MessageSuccessIdentifyPlant = "plant identified successfully"
	MessageSuccessSearchPlant   = "plant information retrieved successfully"
	MessageSuccessGetWeather    = "weather retrieved successfully"
	MessageSuccessGetTip        = "care tip generated successfully"
	MessageSuccessAddGrowthLog  = "growth log entry added successfully"
	MessageSuccessGetGrowthLog  = "growth log retrieved successfully"

	MessageFailedIdentifyPlant = "failed to identify plant"
	MessageFailedSearchPlant   = "failed to retrieve plant information"
	MessageFailedGetWeather    = "failed to retrieve weather"
	MessageFailedAddGrowthLog  = "failed to add growth log entry"

	ErrRecognitionFailed  = errors.New("could not parse plant data from the AI response")
	ErrWeatherUnavailable = errors.New("could not parse weather data from the AI response")
	ErrSessionNotFound    = errors.New("identification session not found")
	ErrMissingSearchName  = errors.New("a plant name is required")
)

type (
	// PlantInfo mirrors the structured identification result requested from
	// the generative model.
	PlantInfo struct {
		CommonName       string           `json:"common_name"`
		ScientificName   string           `json:"scientific_name"`
		Origin           string           `json:"origin"`
		ShortDescription string           `json:"short_description"`
		Health           PlantHealth      `json:"health"`
		Biology          string           `json:"biology"`
		LivingConditions LivingConditions `json:"living_conditions"`
		CareGuide        CareGuide        `json:"care_guide"`
		CommonDiseases   []PlantDisease   `json:"common_diseases"`
	}

	PlantHealth struct {
		Status  string `json:"status"` // "healthy", "yellowing leaves", "pests", "underwatered", "other", or "N/A"
		Details string `json:"details"`
	}

	LivingConditions struct {
		Light       string `json:"light"`
		Soil        string `json:"soil"`
		Humidity    string `json:"humidity"`
		Temperature string `json:"temperature"`
	}

	CareGuide struct {
		Watering    string   `json:"watering"`
		Fertilizing string   `json:"fertilizing"`
		Repotting   string   `json:"repotting"`
		Warnings    []string `json:"warnings"`
	}

	PlantDisease struct {
		Name      string `json:"name"`
		Symptoms  string `json:"symptoms"`
		Treatment string `json:"treatment"`
	}

	WeatherInfo struct {
		Temperature float64 `json:"temperature"`
		Humidity    float64 `json:"humidity"`
		Condition   string  `json:"condition"`
		Icon        string  `json:"icon"` // "sun", "cloud-sun", "cloud", "rain", "bolt", "snow"
	}

	IdentifyPlantRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	IdentifyPlantResponse struct {
		SessionID string    `json:"session_id"`
		PlantInfo PlantInfo `json:"plant_info"`
	}

	AddGrowthLogRequest struct {
		Image string `json:"image" validate:"required"`
		Note  string `json:"note" validate:"required"`
	}

	GrowthLogEntry struct {
		ID    string `json:"id"`
		Image string `json:"image"`
		Note  string `json:"note"`
		Date  string `json:"date"`
	}

	TipResponse struct {
		Tip string `json:"tip"`
	}
)
