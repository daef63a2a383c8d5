package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	FrequencyOnce    = "once"
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

type Reminder struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	PlantID   *uuid.UUID `json:"plant_id,omitempty"` // nil targets all plants
	Activity  string     `json:"activity"`
	Frequency string     `json:"frequency"` // "once", "daily", "weekly", "monthly"

	// Only the fields relevant to Frequency are populated.
	Date       *time.Time `gorm:"type:date" json:"date,omitempty"`               // once
	DaysOfWeek []int      `gorm:"serializer:json" json:"days_of_week,omitempty"` // weekly, 0=Sunday
	DayOfMonth int        `json:"day_of_month,omitempty"`                        // monthly, 1-31

	Time      string `json:"time"` // "HH:MM"
	IsEnabled bool   `json:"is_enabled"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
