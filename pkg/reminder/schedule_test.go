package reminder

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateAt(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestScheduleForOnce(t *testing.T) {
	date := dateAt(2025, time.June, 10, 0, 0)
	r := &entities.Reminder{Frequency: entities.FrequencyOnce, Date: &date}

	schedule, err := ScheduleFor(r)
	require.NoError(t, err)

	assert.True(t, schedule.Matches(dateAt(2025, time.June, 10, 9, 0)))
	assert.False(t, schedule.Matches(dateAt(2025, time.June, 11, 9, 0)))
}

func TestScheduleForOnceMissingDate(t *testing.T) {
	r := &entities.Reminder{Frequency: entities.FrequencyOnce}

	_, err := ScheduleFor(r)
	assert.ErrorIs(t, err, domain.ErrMissingDate)
}

func TestScheduleForDaily(t *testing.T) {
	r := &entities.Reminder{Frequency: entities.FrequencyDaily}

	schedule, err := ScheduleFor(r)
	require.NoError(t, err)

	assert.True(t, schedule.Matches(dateAt(2025, time.June, 10, 9, 0)))
	assert.True(t, schedule.Matches(dateAt(2026, time.January, 1, 0, 0)))
}

func TestScheduleForWeekly(t *testing.T) {
	// Monday and Wednesday only.
	r := &entities.Reminder{Frequency: entities.FrequencyWeekly, DaysOfWeek: []int{1, 3}}

	schedule, err := ScheduleFor(r)
	require.NoError(t, err)

	monday := dateAt(2025, time.June, 9, 8, 0)
	wednesday := dateAt(2025, time.June, 11, 8, 0)
	friday := dateAt(2025, time.June, 13, 8, 0)

	assert.True(t, schedule.Matches(monday))
	assert.True(t, schedule.Matches(wednesday))
	assert.False(t, schedule.Matches(friday))
}

func TestScheduleForWeeklyValidation(t *testing.T) {
	_, err := ScheduleFor(&entities.Reminder{Frequency: entities.FrequencyWeekly})
	assert.ErrorIs(t, err, domain.ErrMissingWeekdays)

	_, err = ScheduleFor(&entities.Reminder{Frequency: entities.FrequencyWeekly, DaysOfWeek: []int{7}})
	assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
}

func TestScheduleForMonthly(t *testing.T) {
	r := &entities.Reminder{Frequency: entities.FrequencyMonthly, DayOfMonth: 15}

	schedule, err := ScheduleFor(r)
	require.NoError(t, err)

	assert.True(t, schedule.Matches(dateAt(2025, time.June, 15, 7, 30)))
	assert.False(t, schedule.Matches(dateAt(2025, time.June, 14, 7, 30)))
}

func TestScheduleForMonthlyValidation(t *testing.T) {
	_, err := ScheduleFor(&entities.Reminder{Frequency: entities.FrequencyMonthly, DayOfMonth: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidDayOfMonth)

	_, err = ScheduleFor(&entities.Reminder{Frequency: entities.FrequencyMonthly, DayOfMonth: 32})
	assert.ErrorIs(t, err, domain.ErrInvalidDayOfMonth)
}

func TestScheduleForUnknownFrequency(t *testing.T) {
	_, err := ScheduleFor(&entities.Reminder{Frequency: "yearly"})
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
}

func TestCheckDueMatchesMinute(t *testing.T) {
	r := &entities.Reminder{
		Frequency: entities.FrequencyDaily,
		Time:      "08:00",
		IsEnabled: true,
	}

	assert.Equal(t, r, CheckDue(dateAt(2025, time.June, 10, 8, 0), []*entities.Reminder{r}))
	assert.Nil(t, CheckDue(dateAt(2025, time.June, 10, 8, 1), []*entities.Reminder{r}))
}

func TestCheckDueSkipsDisabled(t *testing.T) {
	r := &entities.Reminder{
		Frequency: entities.FrequencyDaily,
		Time:      "08:00",
		IsEnabled: false,
	}

	assert.Nil(t, CheckDue(dateAt(2025, time.June, 10, 8, 0), []*entities.Reminder{r}))
}

func TestCheckDueFirstInOrderWins(t *testing.T) {
	first := &entities.Reminder{
		Title:     "water the fern",
		Frequency: entities.FrequencyDaily,
		Time:      "08:00",
		IsEnabled: true,
	}
	second := &entities.Reminder{
		Title:     "fertilize the cactus",
		Frequency: entities.FrequencyDaily,
		Time:      "08:00",
		IsEnabled: true,
	}

	due := CheckDue(dateAt(2025, time.June, 10, 8, 0), []*entities.Reminder{first, second})
	require.NotNil(t, due)
	assert.Equal(t, "water the fern", due.Title)
}

func TestCheckDueSkipsMalformedReminder(t *testing.T) {
	malformed := &entities.Reminder{
		Frequency: entities.FrequencyWeekly,
		Time:      "08:00",
		IsEnabled: true,
	}
	valid := &entities.Reminder{
		Title:     "prune",
		Frequency: entities.FrequencyDaily,
		Time:      "08:00",
		IsEnabled: true,
	}

	due := CheckDue(dateAt(2025, time.June, 10, 8, 0), []*entities.Reminder{malformed, valid})
	require.NotNil(t, due)
	assert.Equal(t, "prune", due.Title)
}
