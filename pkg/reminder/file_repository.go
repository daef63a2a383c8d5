package reminder

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"Planta-Backend/internal/localstore"
	"context"
	"sync"
)

// remindersKey names the reminder collection in the local store.
const remindersKey = "myReminders"

type fileRepository struct {
	store     *localstore.Store
	mu        sync.RWMutex
	reminders []*entities.Reminder
}

func NewFileRepository(store *localstore.Store) ReminderRepository {
	r := &fileRepository{store: store}
	r.reminders = make([]*entities.Reminder, 0)
	store.Load(remindersKey, &r.reminders)
	return r
}

func (r *fileRepository) persistLocked() {
	r.store.Save(remindersKey, r.reminders)
}

func (r *fileRepository) AddReminder(_ context.Context, reminder *entities.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders = append([]*entities.Reminder{reminder}, r.reminders...)
	r.persistLocked()
	return nil
}

func (r *fileRepository) GetReminderByID(_ context.Context, id string) (*entities.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rem := range r.reminders {
		if rem.ID.String() == id {
			clone := *rem
			return &clone, nil
		}
	}
	return nil, domain.ErrReminderNotFound
}

func (r *fileRepository) UpdateReminder(_ context.Context, reminder *entities.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rem := range r.reminders {
		if rem.ID == reminder.ID {
			r.reminders[i] = reminder
			r.persistLocked()
			return nil
		}
	}
	return domain.ErrReminderNotFound
}

func (r *fileRepository) DeleteReminder(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rem := range r.reminders {
		if rem.ID.String() == id {
			r.reminders = append(r.reminders[:i], r.reminders[i+1:]...)
			r.persistLocked()
			return nil
		}
	}
	return domain.ErrReminderNotFound
}

func (r *fileRepository) GetReminders(_ context.Context, userID string) ([]*entities.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entities.Reminder, 0, len(r.reminders))
	for _, rem := range r.reminders {
		if rem.UserID.String() != userID {
			continue
		}
		clone := *rem
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fileRepository) GetAllReminders(_ context.Context) ([]*entities.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entities.Reminder, 0, len(r.reminders))
	for _, rem := range r.reminders {
		clone := *rem
		out = append(out, &clone)
	}
	return out, nil
}
