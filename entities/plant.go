package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryShade     = "shade"
	CategoryFlowering = "flowering"
	CategoryFruit     = "fruit"
	CategorySucculent = "succulent"
	CategoryOther     = "other"
)

const (
	ActivityWatering    = "watering"
	ActivityFertilizing = "fertilizing"
	ActivityPestControl = "pest_control"
	ActivityPruning     = "pruning"
	ActivityOther       = "other"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryShade, CategoryFlowering, CategoryFruit, CategorySucculent, CategoryOther:
		return true
	}
	return false
}

func ValidActivity(activity string) bool {
	switch activity {
	case ActivityWatering, ActivityFertilizing, ActivityPestControl, ActivityPruning, ActivityOther:
		return true
	}
	return false
}

type Plant struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Image       string    `gorm:"type:text" json:"image"` // base64 blob
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `json:"category"` // "shade", "flowering", "fruit", "succulent", "other"

	CareLog []CareLogEntry `gorm:"foreignKey:PlantID;constraint:OnDelete:CASCADE" json:"care_log"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type CareLogEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PlantID  uuid.UUID `json:"plant_id"`
	Activity string    `json:"activity"` // "watering", "fertilizing", "pest_control", "pruning", "other"
	Date     time.Time `gorm:"type:date" json:"date"`
	Notes    string    `gorm:"type:text" json:"notes,omitempty"`

	Timestamp
}
