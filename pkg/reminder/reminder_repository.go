package reminder

import (
	"Planta-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ReminderRepository interface {
		AddReminder(ctx context.Context, reminder *entities.Reminder) error
		GetReminderByID(ctx context.Context, id string) (*entities.Reminder, error)
		UpdateReminder(ctx context.Context, reminder *entities.Reminder) error
		DeleteReminder(ctx context.Context, id string) error
		GetReminders(ctx context.Context, userID string) ([]*entities.Reminder, error)

		// GetAllReminders returns every reminder across users, in
		// most-recent-first order. Used by the due-check engine.
		GetAllReminders(ctx context.Context) ([]*entities.Reminder, error)
	}

	reminderRepository struct {
		db *gorm.DB
	}
)

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) AddReminder(ctx context.Context, reminder *entities.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) GetReminderByID(ctx context.Context, id string) (*entities.Reminder, error) {
	var reminder entities.Reminder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) UpdateReminder(ctx context.Context, reminder *entities.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

func (r *reminderRepository) DeleteReminder(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Reminder{}).Error
}

func (r *reminderRepository) GetReminders(ctx context.Context, userID string) ([]*entities.Reminder, error) {
	var reminders []*entities.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) GetAllReminders(ctx context.Context) ([]*entities.Reminder, error) {
	var reminders []*entities.Reminder
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}
