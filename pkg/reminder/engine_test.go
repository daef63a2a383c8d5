package reminder

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReminderRepository struct {
	reminders []*entities.Reminder
}

func (s *stubReminderRepository) AddReminder(_ context.Context, r *entities.Reminder) error {
	s.reminders = append([]*entities.Reminder{r}, s.reminders...)
	return nil
}

func (s *stubReminderRepository) GetReminderByID(_ context.Context, id string) (*entities.Reminder, error) {
	for _, r := range s.reminders {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, domain.ErrReminderNotFound
}

func (s *stubReminderRepository) UpdateReminder(_ context.Context, r *entities.Reminder) error {
	for i, existing := range s.reminders {
		if existing.ID == r.ID {
			s.reminders[i] = r
			return nil
		}
	}
	return domain.ErrReminderNotFound
}

func (s *stubReminderRepository) DeleteReminder(_ context.Context, id string) error {
	for i, r := range s.reminders {
		if r.ID.String() == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			return nil
		}
	}
	return domain.ErrReminderNotFound
}

func (s *stubReminderRepository) GetReminders(_ context.Context, userID string) ([]*entities.Reminder, error) {
	out := make([]*entities.Reminder, 0)
	for _, r := range s.reminders {
		if r.UserID.String() == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubReminderRepository) GetAllReminders(_ context.Context) ([]*entities.Reminder, error) {
	return s.reminders, nil
}

type stubPlantResolver struct {
	plants map[string]*entities.Plant
}

func (s *stubPlantResolver) GetPlantByID(_ context.Context, id string) (*entities.Plant, error) {
	if p, ok := s.plants[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPlantNotFound
}

type recordingBroadcaster struct {
	payloads []domain.ActiveReminderResponse
}

func (r *recordingBroadcaster) BroadcastReminder(payload domain.ActiveReminderResponse) {
	r.payloads = append(r.payloads, payload)
}

func dailyReminder(title, at string) *entities.Reminder {
	return &entities.Reminder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Title:     title,
		Activity:  entities.ActivityWatering,
		Frequency: entities.FrequencyDaily,
		Time:      at,
		IsEnabled: true,
	}
}

func TestEngineFiresOncePerMinute(t *testing.T) {
	repo := &stubReminderRepository{reminders: []*entities.Reminder{dailyReminder("water", "08:00")}}
	hub := &recordingBroadcaster{}
	engine := NewEngine(repo, nil, hub, 0)

	now := dateAt(2025, time.June, 10, 8, 0)

	due := engine.Check(context.Background(), now)
	require.NotNil(t, due)
	assert.Len(t, hub.payloads, 1)

	// Re-polls within the same minute stay silent.
	assert.Nil(t, engine.Check(context.Background(), now.Add(5*time.Second)))
	assert.Nil(t, engine.Check(context.Background(), now.Add(55*time.Second)))
	assert.Len(t, hub.payloads, 1)
}

func TestEngineFiresAgainNextDue(t *testing.T) {
	repo := &stubReminderRepository{reminders: []*entities.Reminder{
		dailyReminder("morning", "08:00"),
		dailyReminder("evening", "20:00"),
	}}
	hub := &recordingBroadcaster{}
	engine := NewEngine(repo, nil, hub, 0)

	require.NotNil(t, engine.Check(context.Background(), dateAt(2025, time.June, 10, 8, 0)))
	require.NotNil(t, engine.Check(context.Background(), dateAt(2025, time.June, 10, 20, 0)))

	require.Len(t, hub.payloads, 2)
	assert.Equal(t, "morning", hub.payloads[0].Reminder.Title)
	assert.Equal(t, "evening", hub.payloads[1].Reminder.Title)
}

func TestEngineSingleReminderPerMinute(t *testing.T) {
	repo := &stubReminderRepository{reminders: []*entities.Reminder{
		dailyReminder("first", "08:00"),
		dailyReminder("second", "08:00"),
	}}
	hub := &recordingBroadcaster{}
	engine := NewEngine(repo, nil, hub, 0)

	due := engine.Check(context.Background(), dateAt(2025, time.June, 10, 8, 0))
	require.NotNil(t, due)
	assert.Equal(t, "first", due.Title)

	// The second reminder is skipped for the minute, not queued.
	assert.Nil(t, engine.Check(context.Background(), dateAt(2025, time.June, 10, 8, 0).Add(10*time.Second)))
	assert.Len(t, hub.payloads, 1)
}

func TestEngineActiveAndDismiss(t *testing.T) {
	repo := &stubReminderRepository{reminders: []*entities.Reminder{dailyReminder("water", "08:00")}}
	engine := NewEngine(repo, nil, &recordingBroadcaster{}, 0)

	_, ok := engine.Active(context.Background())
	assert.False(t, ok)

	require.NotNil(t, engine.Check(context.Background(), dateAt(2025, time.June, 10, 8, 0)))

	active, ok := engine.Active(context.Background())
	require.True(t, ok)
	assert.Equal(t, "water", active.Reminder.Title)

	engine.Dismiss()
	_, ok = engine.Active(context.Background())
	assert.False(t, ok)
}

func TestEngineResolvesPlantName(t *testing.T) {
	plantID := uuid.New()
	reminder := dailyReminder("water", "08:00")
	reminder.PlantID = &plantID

	repo := &stubReminderRepository{reminders: []*entities.Reminder{reminder}}
	plants := &stubPlantResolver{plants: map[string]*entities.Plant{
		plantID.String(): {ID: plantID, Name: "Monstera"},
	}}
	hub := &recordingBroadcaster{}
	engine := NewEngine(repo, plants, hub, 0)

	require.NotNil(t, engine.Check(context.Background(), dateAt(2025, time.June, 10, 8, 0)))
	require.Len(t, hub.payloads, 1)
	assert.Equal(t, "Monstera", hub.payloads[0].PlantName)
}

func TestEngineFallsBackOnUnknownPlant(t *testing.T) {
	plantID := uuid.New()
	reminder := dailyReminder("water", "08:00")
	reminder.PlantID = &plantID

	repo := &stubReminderRepository{reminders: []*entities.Reminder{reminder}}
	plants := &stubPlantResolver{plants: map[string]*entities.Plant{}}
	hub := &recordingBroadcaster{}
	engine := NewEngine(repo, plants, hub, 0)

	require.NotNil(t, engine.Check(context.Background(), dateAt(2025, time.June, 10, 8, 0)))
	require.Len(t, hub.payloads, 1)
	assert.Equal(t, domain.UnknownPlantLabel, hub.payloads[0].PlantName)
}

func TestEngineAllPlantsLabel(t *testing.T) {
	repo := &stubReminderRepository{reminders: []*entities.Reminder{dailyReminder("water", "08:00")}}
	hub := &recordingBroadcaster{}
	engine := NewEngine(repo, nil, hub, 0)

	require.NotNil(t, engine.Check(context.Background(), dateAt(2025, time.June, 10, 8, 0)))
	require.Len(t, hub.payloads, 1)
	assert.Equal(t, "all of your plants", hub.payloads[0].PlantName)
	assert.Equal(t, domain.TargetAllPlants, hub.payloads[0].Reminder.PlantID)
}
