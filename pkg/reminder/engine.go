package reminder

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"context"
	"log"
	"sync"
	"time"
)

// DefaultCheckInterval is shorter than a minute so a due minute is never
// skipped between ticks; the last-triggered marker keeps a minute from
// firing twice.
const DefaultCheckInterval = 5 * time.Second

type (
	// Broadcaster pushes a due reminder to connected clients.
	Broadcaster interface {
		BroadcastReminder(payload domain.ActiveReminderResponse)
	}

	// PlantResolver looks up a plant to label the popup. Satisfied by
	// plant.PlantRepository.
	PlantResolver interface {
		GetPlantByID(ctx context.Context, id string) (*entities.Plant, error)
	}

	// Engine drives CheckDue on a ticker and surfaces at most one reminder
	// per wall-clock minute. It never blocks waiting for a dismiss: once a
	// minute has fired, nothing else fires until the minute changes.
	Engine struct {
		reminderRepository ReminderRepository
		plants             PlantResolver
		hub                Broadcaster
		interval           time.Duration

		mu            sync.Mutex
		lastTriggered string
		active        *entities.Reminder
	}
)

func NewEngine(reminderRepository ReminderRepository, plants PlantResolver, hub Broadcaster, interval time.Duration) *Engine {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Engine{
		reminderRepository: reminderRepository,
		plants:             plants,
		hub:                hub,
		interval:           interval,
	}
}

// Start runs the polling loop until ctx is cancelled.
func (e *Engine) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.Check(ctx, time.Now())
			}
		}
	}()
}

// Check runs one evaluation cycle at the given wall-clock time. It returns
// the reminder that became active, or nil. Exposed separately from the
// ticker so cycles can be driven deterministically in tests.
func (e *Engine) Check(ctx context.Context, now time.Time) *entities.Reminder {
	minute := now.Format("15:04")

	e.mu.Lock()
	if e.lastTriggered == minute {
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	reminders, err := e.reminderRepository.GetAllReminders(ctx)
	if err != nil {
		log.Printf("reminder engine: load reminders: %v", err)
		return nil
	}

	due := CheckDue(now, reminders)
	if due == nil {
		return nil
	}

	e.mu.Lock()
	e.lastTriggered = minute
	e.active = due
	e.mu.Unlock()

	payload := domain.ActiveReminderResponse{
		Reminder:  ToReminderResponse(due),
		PlantName: e.resolvePlantName(ctx, due),
	}
	if e.hub != nil {
		e.hub.BroadcastReminder(payload)
	}
	return due
}

// Active returns the currently surfaced reminder, if any, with its resolved
// plant name.
func (e *Engine) Active(ctx context.Context) (domain.ActiveReminderResponse, bool) {
	e.mu.Lock()
	active := e.active
	e.mu.Unlock()

	if active == nil {
		return domain.ActiveReminderResponse{}, false
	}
	return domain.ActiveReminderResponse{
		Reminder:  ToReminderResponse(active),
		PlantName: e.resolvePlantName(ctx, active),
	}, true
}

// Dismiss acknowledges the active reminder and frees the popup slot.
func (e *Engine) Dismiss() {
	e.mu.Lock()
	e.active = nil
	e.mu.Unlock()
}

func (e *Engine) resolvePlantName(ctx context.Context, r *entities.Reminder) string {
	if r.PlantID == nil {
		return "all of your plants"
	}
	if e.plants == nil {
		return domain.UnknownPlantLabel
	}
	plant, err := e.plants.GetPlantByID(ctx, r.PlantID.String())
	if err != nil {
		return domain.UnknownPlantLabel
	}
	return plant.Name
}
