package reminder

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReminderService interface {
		AddReminder(ctx context.Context, req domain.SaveReminderRequest, userID string) (domain.ReminderResponse, error)
		UpdateReminder(ctx context.Context, id string, req domain.SaveReminderRequest, userID string) (domain.ReminderResponse, error)
		DeleteReminder(ctx context.Context, id string, userID string) error
		GetReminders(ctx context.Context, userID string) ([]domain.ReminderResponse, error)
	}

	reminderService struct {
		reminderRepository ReminderRepository
	}
)

func NewReminderService(reminderRepository ReminderRepository) ReminderService {
	return &reminderService{reminderRepository: reminderRepository}
}

func (s *reminderService) AddReminder(ctx context.Context, req domain.SaveReminderRequest, userID string) (domain.ReminderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReminderResponse{}, domain.ErrParseUUID
	}

	reminder, err := buildReminder(req)
	if err != nil {
		return domain.ReminderResponse{}, err
	}
	reminder.ID = uuid.New()
	reminder.UserID = userUUID
	reminder.CreatedAt = time.Now()

	if err := s.reminderRepository.AddReminder(ctx, reminder); err != nil {
		return domain.ReminderResponse{}, err
	}

	return ToReminderResponse(reminder), nil
}

func (s *reminderService) UpdateReminder(ctx context.Context, id string, req domain.SaveReminderRequest, userID string) (domain.ReminderResponse, error) {
	existing, err := s.getOwnedReminder(ctx, id, userID)
	if err != nil {
		return domain.ReminderResponse{}, err
	}

	// Edits replace the whole recurrence definition, so stale
	// frequency-specific fields cannot survive a frequency change.
	updated, err := buildReminder(req)
	if err != nil {
		return domain.ReminderResponse{}, err
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt

	if err := s.reminderRepository.UpdateReminder(ctx, updated); err != nil {
		return domain.ReminderResponse{}, err
	}

	return ToReminderResponse(updated), nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedReminder(ctx, id, userID); err != nil {
		return err
	}
	return s.reminderRepository.DeleteReminder(ctx, id)
}

func (s *reminderService) GetReminders(ctx context.Context, userID string) ([]domain.ReminderResponse, error) {
	reminders, err := s.reminderRepository.GetReminders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		response = append(response, ToReminderResponse(r))
	}
	return response, nil
}

func (s *reminderService) getOwnedReminder(ctx context.Context, id string, userID string) (*entities.Reminder, error) {
	reminder, err := s.reminderRepository.GetReminderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, err
	}
	if reminder.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return reminder, nil
}

// buildReminder converts a save request into an entity carrying exactly the
// fields its frequency needs. ScheduleFor is the single validation point for
// the frequency-specific fields.
func buildReminder(req domain.SaveReminderRequest) (*entities.Reminder, error) {
	if !entities.ValidActivity(req.Activity) {
		return nil, domain.ErrInvalidActivity
	}
	if len(req.Time) != 5 {
		return nil, domain.ErrInvalidTime
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, domain.ErrInvalidTime
	}

	reminder := &entities.Reminder{
		Title:     req.Title,
		Activity:  req.Activity,
		Frequency: req.Frequency,
		Time:      req.Time,
		IsEnabled: req.IsEnabled,
	}

	if req.PlantID != domain.TargetAllPlants {
		plantUUID, err := uuid.Parse(req.PlantID)
		if err != nil {
			return nil, domain.ErrInvalidTarget
		}
		reminder.PlantID = &plantUUID
	}

	switch req.Frequency {
	case entities.FrequencyOnce:
		if req.Date == "" {
			return nil, domain.ErrMissingDate
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		reminder.Date = &date
	case entities.FrequencyDaily:
		// no extra fields
	case entities.FrequencyWeekly:
		reminder.DaysOfWeek = req.DaysOfWeek
	case entities.FrequencyMonthly:
		reminder.DayOfMonth = req.DayOfMonth
	default:
		return nil, domain.ErrInvalidFrequency
	}

	if _, err := ScheduleFor(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func ToReminderResponse(r *entities.Reminder) domain.ReminderResponse {
	plantID := domain.TargetAllPlants
	if r.PlantID != nil {
		plantID = r.PlantID.String()
	}
	return domain.ReminderResponse{
		ID:         r.ID.String(),
		Title:      r.Title,
		PlantID:    plantID,
		Activity:   r.Activity,
		Frequency:  r.Frequency,
		Date:       r.Date,
		DaysOfWeek: r.DaysOfWeek,
		DayOfMonth: r.DayOfMonth,
		Time:       r.Time,
		IsEnabled:  r.IsEnabled,
	}
}
