package reminder

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"time"
)

// Schedule is the recurrence rule of a reminder. Each frequency has its own
// variant carrying only the fields that frequency needs, so an invalid
// combination (a weekly reminder without weekdays, say) cannot be built.
type Schedule interface {
	// Matches reports whether the rule's date condition holds at now. The
	// time-of-day comparison is a separate concern handled by CheckDue.
	Matches(now time.Time) bool
}

type onceSchedule struct {
	date time.Time
}

func (s onceSchedule) Matches(now time.Time) bool {
	y1, m1, d1 := s.date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type dailySchedule struct{}

func (dailySchedule) Matches(time.Time) bool { return true }

type weeklySchedule struct {
	days map[int]bool // 0=Sunday .. 6=Saturday
}

func (s weeklySchedule) Matches(now time.Time) bool {
	return s.days[int(now.Weekday())]
}

type monthlySchedule struct {
	day int // 1-31
}

func (s monthlySchedule) Matches(now time.Time) bool {
	return now.Day() == s.day
}

// ScheduleFor builds the schedule variant for a reminder, rejecting field
// combinations that do not fit its frequency.
func ScheduleFor(r *entities.Reminder) (Schedule, error) {
	switch r.Frequency {
	case entities.FrequencyOnce:
		if r.Date == nil {
			return nil, domain.ErrMissingDate
		}
		return onceSchedule{date: *r.Date}, nil

	case entities.FrequencyDaily:
		return dailySchedule{}, nil

	case entities.FrequencyWeekly:
		if len(r.DaysOfWeek) == 0 {
			return nil, domain.ErrMissingWeekdays
		}
		days := make(map[int]bool, len(r.DaysOfWeek))
		for _, d := range r.DaysOfWeek {
			if d < 0 || d > 6 {
				return nil, domain.ErrInvalidWeekday
			}
			days[d] = true
		}
		return weeklySchedule{days: days}, nil

	case entities.FrequencyMonthly:
		if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
			return nil, domain.ErrInvalidDayOfMonth
		}
		return monthlySchedule{day: r.DayOfMonth}, nil
	}
	return nil, domain.ErrInvalidFrequency
}

// CheckDue evaluates the collection against now, truncated to minute
// resolution, and returns the first due reminder in collection order. If
// several reminders share the same due minute only the first is surfaced;
// the rest are skipped for that cycle and are not queued.
func CheckDue(now time.Time, reminders []*entities.Reminder) *entities.Reminder {
	minute := now.Format("15:04")
	for _, r := range reminders {
		if !r.IsEnabled || r.Time != minute {
			continue
		}
		schedule, err := ScheduleFor(r)
		if err != nil {
			continue
		}
		if schedule.Matches(now) {
			return r
		}
	}
	return nil
}
