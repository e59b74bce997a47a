package calendar

import (
	"context"
	"testing"
	"time"

	"bakehouse/models"
	"bakehouse/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlockedSource struct {
	blocks map[string][]models.BlockedInterval
}

func (f *fakeBlockedSource) GetByDate(_ context.Context, date string) ([]models.BlockedInterval, error) {
	return f.blocks[date], nil
}

type fakeOrderCounter struct {
	counts map[string]int64
}

func (f *fakeOrderCounter) CountByScheduledDate(_ context.Context, date string) (int64, error) {
	return f.counts[date], nil
}

func newAdapter(blocks map[string][]models.BlockedInterval, counts map[string]int64) *Adapter {
	return &Adapter{
		Eval: &availability.Evaluator{
			Blocked: &fakeBlockedSource{blocks: blocks},
			Orders:  &fakeOrderCounter{counts: counts},
			Now: func() time.Time {
				return time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
			},
		},
	}
}

func cellFor(t *testing.T, days []models.CalendarDay, date string) models.CalendarDay {
	t.Helper()
	for _, d := range days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("no cell for %s", date)
	return models.CalendarDay{}
}

func TestMonthGridStates(t *testing.T) {
	adapter := newAdapter(map[string][]models.BlockedInterval{
		"2025-03-20": {{Date: "2025-03-20", WholeDay: true, Reason: "holiday"}},
	}, map[string]int64{"2025-03-25": 4})

	days := adapter.MonthGrid(context.Background(), 2025, time.March, "")
	require.Len(t, days, 31)

	// Today is 2025-03-01: everything before the 8th is inside the
	// advance-notice window.
	assert.Equal(t, models.CalendarStatePast, cellFor(t, days, "2025-03-05").State)
	assert.True(t, cellFor(t, days, "2025-03-05").Disabled)

	blocked := cellFor(t, days, "2025-03-20")
	assert.Equal(t, models.CalendarStateBlocked, blocked.State)
	assert.Equal(t, "holiday", blocked.Reason)
	assert.True(t, blocked.Disabled)

	full := cellFor(t, days, "2025-03-25")
	assert.Equal(t, models.CalendarStateFull, full.State)
	assert.True(t, full.Disabled)

	open := cellFor(t, days, "2025-03-15")
	assert.Equal(t, models.CalendarStateAvailable, open.State)
	assert.False(t, open.Disabled)
}

func TestSelectedOverlaysStateButNotDisabled(t *testing.T) {
	adapter := newAdapter(map[string][]models.BlockedInterval{
		"2025-03-20": {{Date: "2025-03-20", WholeDay: true, Reason: "holiday"}},
	}, nil)

	// Selected wins the styling precedence even over blocked, but the cell
	// stays disabled.
	days := adapter.MonthGrid(context.Background(), 2025, time.March, "2025-03-20")
	selected := cellFor(t, days, "2025-03-20")
	assert.Equal(t, models.CalendarStateSelected, selected.State)
	assert.True(t, selected.Disabled)

	days = adapter.MonthGrid(context.Background(), 2025, time.March, "2025-03-15")
	selected = cellFor(t, days, "2025-03-15")
	assert.Equal(t, models.CalendarStateSelected, selected.State)
	assert.False(t, selected.Disabled)
}
