package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"bakehouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlockedSource struct {
	blocks map[string][]models.BlockedInterval
	err    error
}

func (f *fakeBlockedSource) GetByDate(_ context.Context, date string) ([]models.BlockedInterval, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks[date], nil
}

type fakeOrderCounter struct {
	counts map[string]int64
	err    error
}

func (f *fakeOrderCounter) CountByScheduledDate(_ context.Context, date string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[date], nil
}

func newEvaluator(blocks map[string][]models.BlockedInterval, counts map[string]int64) *Evaluator {
	return &Evaluator{
		Blocked: &fakeBlockedSource{blocks: blocks},
		Orders:  &fakeOrderCounter{counts: counts},
		Now: func() time.Time {
			return time.Date(2025, 1, 1, 9, 30, 0, 0, time.Local)
		},
	}
}

func TestWholeDayBlockClosesTheDate(t *testing.T) {
	eval := newEvaluator(map[string][]models.BlockedInterval{
		"2025-03-10": {{Date: "2025-03-10", WholeDay: true, Reason: "oven maintenance"}},
	}, nil)

	ctx := context.Background()
	verdict := eval.IsDateTimeBlocked(ctx, "2025-03-10", "")
	assert.True(t, verdict.Blocked)
	assert.Equal(t, "oven maintenance", verdict.Reason)

	// A whole-day block also blocks every specific time.
	verdict = eval.IsDateTimeBlocked(ctx, "2025-03-10", "14:00")
	assert.True(t, verdict.Blocked)

	assert.Empty(t, eval.AvailableTimeSlots(ctx, "2025-03-10"))
}

func TestFullDayYieldsNoSlotsRegardlessOfBlocks(t *testing.T) {
	eval := newEvaluator(nil, map[string]int64{"2025-03-11": 4})

	assert.Empty(t, eval.AvailableTimeSlots(context.Background(), "2025-03-11"))
	assert.Equal(t, 4, eval.OrdersCountForDate(context.Background(), "2025-03-11"))
}

func TestPartialBlockRemovesCoveredSlots(t *testing.T) {
	eval := newEvaluator(map[string][]models.BlockedInterval{
		"2025-03-12": {{Date: "2025-03-12", StartTime: "10:00", EndTime: "12:00", Reason: "wedding order"}},
	}, nil)

	slots := eval.AvailableTimeSlots(context.Background(), "2025-03-12")
	require.NotEmpty(t, slots)

	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "12:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "11:00")
	assert.NotContains(t, slots, "12:00")

	// Bounds are inclusive at both ends of the block.
	verdict := eval.IsDateTimeBlocked(context.Background(), "2025-03-12", "12:00")
	assert.True(t, verdict.Blocked)
	assert.Equal(t, "wedding order", verdict.Reason)
}

func TestSlotBounds(t *testing.T) {
	eval := newEvaluator(nil, nil)

	slots := eval.AvailableTimeSlots(context.Background(), "2025-03-13")
	require.NotEmpty(t, slots)

	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "20:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "20:30")
	assert.NotContains(t, slots, "07:30")
	// 08:00 through 20:00 at 30-minute steps.
	assert.Len(t, slots, 25)
}

func TestAdvanceNoticeFloor(t *testing.T) {
	eval := newEvaluator(nil, nil)
	ctx := context.Background()

	// Today is 2025-01-01; the 7th is six days out, the 8th exactly seven.
	tooSoon := eval.DateVerdict(ctx, "2025-01-07")
	assert.False(t, tooSoon.Selectable)
	assert.True(t, tooSoon.TooSoon)

	admissible := eval.DateVerdict(ctx, "2025-01-08")
	assert.True(t, admissible.Selectable)
	assert.False(t, admissible.TooSoon)
}

func TestDateVerdictPredicatesAreIndependent(t *testing.T) {
	eval := newEvaluator(map[string][]models.BlockedInterval{
		"2025-02-01": {{Date: "2025-02-01", WholeDay: true, Reason: "closed"}},
	}, map[string]int64{"2025-02-01": 4})

	v := eval.DateVerdict(context.Background(), "2025-02-01")
	assert.False(t, v.Selectable)
	assert.False(t, v.TooSoon)
	assert.True(t, v.Blocked)
	assert.True(t, v.Full)
	assert.Equal(t, "closed", v.Reason)
}

func TestCancellationWindow(t *testing.T) {
	eval := newEvaluator(nil, nil)

	// Five days out is still cancellable; four is not.
	assert.True(t, eval.CanCancel(models.Order{ScheduledDate: "2025-01-06"}))
	assert.False(t, eval.CanCancel(models.Order{ScheduledDate: "2025-01-05"}))
}

func TestReadFailuresFailOpen(t *testing.T) {
	eval := &Evaluator{
		Blocked: &fakeBlockedSource{err: errors.New("datastore down")},
		Orders:  &fakeOrderCounter{err: errors.New("datastore down")},
		Now: func() time.Time {
			return time.Date(2025, 1, 1, 9, 30, 0, 0, time.Local)
		},
	}
	ctx := context.Background()

	verdict := eval.IsDateTimeBlocked(ctx, "2025-03-14", "10:00")
	assert.False(t, verdict.Blocked)
	assert.Empty(t, verdict.Reason)

	assert.Equal(t, 0, eval.OrdersCountForDate(ctx, "2025-03-14"))
	assert.Len(t, eval.AvailableTimeSlots(ctx, "2025-03-14"), 25)
	assert.True(t, eval.DateVerdict(ctx, "2025-03-14").Selectable)
}

func TestNormalizeTimeDropsSeconds(t *testing.T) {
	assert.Equal(t, "10:00", NormalizeTime("10:00:00"))
	assert.Equal(t, "10:00", NormalizeTime("10:00"))

	eval := newEvaluator(map[string][]models.BlockedInterval{
		"2025-03-15": {{Date: "2025-03-15", StartTime: "10:00", EndTime: "12:00", Reason: "delivery run"}},
	}, nil)
	verdict := eval.IsDateTimeBlocked(context.Background(), "2025-03-15", "11:30:00")
	assert.True(t, verdict.Blocked)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 1, 1, 23, 59, 0, 0, time.Local)

	assert.Equal(t, 7, DaysUntil(now, "2025-01-08"))
	assert.Equal(t, 0, DaysUntil(now, "2025-01-01"))
	assert.Equal(t, -1, DaysUntil(now, "2024-12-31"))
	assert.Equal(t, -1, DaysUntil(now, "not-a-date"))
}
