package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/internal/logging"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// pinNow fixes "today" for date math until the test ends.
func pinNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = prev })
}

// repoWithDays seeds one entry per given day offset (0 = today) relative to
// the pinned clock.
func repoWithDays(t *testing.T, now time.Time, offsets ...int) *EntryRepository {
	t.Helper()
	store := newTestStore(t)
	var entries []types.Entry
	for i, off := range offsets {
		at := now.AddDate(0, 0, off)
		entries = append(entries, types.Entry{
			ID:          fmt.Sprintf("e%d", i),
			Content:     "entry",
			ContentType: types.ContentTypePlain,
			CreatedAt:   at,
			UpdatedAt:   at,
		})
	}
	require.NoError(t, store.PutEntries(entries))

	repo := NewEntryRepository(store, logging.Nop())
	require.NoError(t, repo.Load())
	return repo
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)
	pinNow(t, now)

	tests := []struct {
		name    string
		offsets []int
		want    int
	}{
		{name: "no entries", offsets: nil, want: 0},
		{name: "only today", offsets: []int{0}, want: 1},
		{name: "run broken by gap", offsets: []int{0, -1, -2, -5}, want: 3},
		{name: "missed today", offsets: []int{-1, -2}, want: 0},
		{name: "two entries same day count once", offsets: []int{0, 0, -1}, want: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := repoWithDays(t, now, tc.offsets...)
			assert.Equal(t, tc.want, repo.CurrentStreak())
		})
	}
}

func TestStreakCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	pinNow(t, now)

	repo := repoWithDays(t, now, 0, -1, -2) // Sep 1, Aug 31, Aug 30.
	assert.Equal(t, 3, repo.CurrentStreak())
}

func TestDaysJournaled(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)
	pinNow(t, now)

	repo := repoWithDays(t, now, 0, 0, -10, -400)
	assert.Equal(t, 3, repo.DaysJournaled())

	empty := repoWithDays(t, now)
	assert.Zero(t, empty.DaysJournaled())
}

func TestOnThisDay(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)
	pinNow(t, now)

	store := newTestStore(t)
	put := func(id string, at time.Time) {
		require.NoError(t, store.PutEntry(types.Entry{
			ID: id, Content: "entry", ContentType: types.ContentTypePlain,
			CreatedAt: at, UpdatedAt: at,
		}))
	}
	put("last-year", time.Date(2025, 8, 30, 10, 0, 0, 0, time.Local))
	put("two-years", time.Date(2024, 8, 30, 23, 0, 0, 0, time.Local))
	put("same-year", time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local))
	put("off-by-a-day", time.Date(2025, 8, 29, 10, 0, 0, 0, time.Local))
	put("wrong-month", time.Date(2025, 7, 30, 10, 0, 0, 0, time.Local))

	repo := NewEntryRepository(store, logging.Nop())
	require.NoError(t, repo.Load())

	got := repo.OnThisDay()
	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"last-year", "two-years"}, ids)
}
