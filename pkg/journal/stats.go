// Derived analytics over the entry working set: streaks, distinct days,
// and "on this day" lookback. All date math uses local calendar dates, not
// 24-hour windows.
package journal

import (
	"time"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// nowFunc is swapped in tests to pin "today".
var nowFunc = time.Now

// localDay truncates t to its local calendar date.
func localDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// OnThisDay returns entries created on today's month and day in an earlier
// (or later) year. The comparison is on date fields, not ranges.
func (r *EntryRepository) OnThisDay() []types.Entry {
	now := nowFunc()
	return r.filter(func(e *types.Entry) bool {
		created := e.CreatedAt.Local()
		return created.Month() == now.Month() &&
			created.Day() == now.Day() &&
			created.Year() != now.Year()
	})
}

// CurrentStreak returns the number of consecutive calendar days with at
// least one entry, ending at today. A day without entries before today
// stops the count; no entry today means a streak of zero.
func (r *EntryRepository) CurrentStreak() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := r.distinctDays()
	if len(days) == 0 {
		return 0
	}

	streak := 0
	day := localDay(nowFunc())
	for days[day.Format(time.DateOnly)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// DaysJournaled returns the lifetime count of distinct calendar days with
// at least one entry.
func (r *EntryRepository) DaysJournaled() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.distinctDays())
}

// distinctDays collects the set of local dates with entries, keyed as
// YYYY-MM-DD. Callers hold at least the read lock.
func (r *EntryRepository) distinctDays() map[string]bool {
	days := make(map[string]bool, len(r.entries))
	for _, e := range r.entries {
		days[e.CreatedAt.Local().Format(time.DateOnly)] = true
	}
	return days
}
