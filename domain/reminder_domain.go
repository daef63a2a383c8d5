package domain

import (
	"errors"
	"time"
)

// TargetAllPlants is the sentinel accepted in place of a plant UUID when a
// reminder applies to the whole garden.
const TargetAllPlants = "all"

// UnknownPlantLabel is shown when a reminder targets a plant that no longer
// exists. Deleting a plant never deletes its reminders.
const UnknownPlantLabel = "unknown plant"

var (
	MessageSuccessSaveReminder    = "reminder saved successfully"
	MessageSuccessDeleteReminder  = "reminder deleted successfully"
	MessageSuccessGetReminders    = "reminders retrieved successfully"
	MessageSuccessDismissReminder = "reminder dismissed"

	MessageFailedSaveReminder   = "failed to save reminder"
	MessageFailedDeleteReminder = "failed to delete reminder"
	MessageFailedGetReminders   = "failed to retrieve reminders"

	ErrReminderNotFound  = errors.New("reminder not found")
	ErrInvalidFrequency  = errors.New("invalid reminder frequency")
	ErrInvalidTime       = errors.New("invalid time, expected HH:MM")
	ErrInvalidTarget     = errors.New("reminder target must be a plant id or \"all\"")
	ErrMissingDate       = errors.New("a date is required for one-time reminders")
	ErrMissingWeekdays   = errors.New("at least one weekday is required for weekly reminders")
	ErrInvalidWeekday    = errors.New("weekdays must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")
	ErrNoActiveReminder  = errors.New("no reminder is currently due")
)

type (
	SaveReminderRequest struct {
		Title      string `json:"title" validate:"required"`
		PlantID    string `json:"plant_id" validate:"required"` // uuid or "all"
		Activity   string `json:"activity" validate:"required,oneof=watering fertilizing pest_control pruning other"`
		Frequency  string `json:"frequency" validate:"required,oneof=once daily weekly monthly"`
		Date       string `json:"date,omitempty"` // YYYY-MM-DD, once only
		DaysOfWeek []int  `json:"days_of_week,omitempty"`
		DayOfMonth int    `json:"day_of_month,omitempty"`
		Time       string `json:"time" validate:"required"`
		IsEnabled  bool   `json:"is_enabled"`
	}

	ReminderResponse struct {
		ID         string     `json:"id"`
		Title      string     `json:"title"`
		PlantID    string     `json:"plant_id"` // uuid or "all"
		Activity   string     `json:"activity"`
		Frequency  string     `json:"frequency"`
		Date       *time.Time `json:"date,omitempty"`
		DaysOfWeek []int      `json:"days_of_week,omitempty"`
		DayOfMonth int        `json:"day_of_month,omitempty"`
		Time       string     `json:"time"`
		IsEnabled  bool       `json:"is_enabled"`
	}

	// ActiveReminderResponse is the popup payload: the due reminder plus the
	// resolved name of the plant it targets.
	ActiveReminderResponse struct {
		Reminder  ReminderResponse `json:"reminder"`
		PlantName string           `json:"plant_name"`
	}
)
