package scheduler

import (
	"cmp"
	"slices"
	"time"

	"github.com/akyairhashvil/sessionplan/internal/models"
)

// Classification splits sessions around a calendar day.
type Classification struct {
	Upcoming []models.Session // earliest first
	Past     []models.Session // most recent first
}

// Classify partitions sessions relative to today. A session is upcoming when
// it is scheduled after today, or today while still open and without linked
// completed tasks. Everything else is past. Only the calendar date of today
// and of each ScheduledDate is compared.
func Classify(today time.Time, sessions []models.Session) Classification {
	day := dateKey(today)
	c := Classification{
		Upcoming: make([]models.Session, 0, len(sessions)),
		Past:     make([]models.Session, 0),
	}
	for _, s := range sessions {
		if isUpcoming(day, s) {
			c.Upcoming = append(c.Upcoming, s)
		} else {
			c.Past = append(c.Past, s)
		}
	}
	slices.SortStableFunc(c.Upcoming, func(a, b models.Session) int {
		return cmp.Compare(dateKey(a.ScheduledDate), dateKey(b.ScheduledDate))
	})
	slices.SortStableFunc(c.Past, func(a, b models.Session) int {
		return cmp.Compare(dateKey(b.ScheduledDate), dateKey(a.ScheduledDate))
	})
	return c
}

func isUpcoming(today int, s models.Session) bool {
	day := dateKey(s.ScheduledDate)
	switch {
	case day > today:
		return true
	case day == today:
		return !s.IsCompleted() && !s.HasCompletedTasks()
	default:
		return false
	}
}

// dateKey encodes the calendar date of t as yyyymmdd in t's own location.
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
