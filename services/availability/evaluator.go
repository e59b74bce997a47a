package availability

import (
	"context"
	"fmt"
	"time"

	"bakehouse/models"
	"bakehouse/utils"

	"go.uber.org/zap"
)

// Scheduling rules for the bakery.
const (
	// DayCapacity is the maximum number of orders accepted per calendar day.
	DayCapacity = 4
	// AdvanceNoticeDays is the minimum lead time between placing an order
	// and its scheduled date.
	AdvanceNoticeDays = 7
	// CancelNoticeDays is the minimum lead time required for a customer to
	// cancel an existing order.
	CancelNoticeDays = 5
	// UnpaidCutoffDays: pending orders still unpaid this close to their
	// scheduled date are cancelled by the sweep.
	UnpaidCutoffDays = 7

	firstSlotMinutes = 8 * 60  // 08:00
	lastSlotMinutes  = 20 * 60 // 20:00, inclusive; 20:30 is never offered
	slotStepMinutes  = 30

	dateLayout = "2006-01-02"
)

// BlockedSource yields the operator-defined blocked intervals for a date.
type BlockedSource interface {
	GetByDate(ctx context.Context, date string) ([]models.BlockedInterval, error)
}

// OrderCounter yields how many orders are already scheduled on a date.
type OrderCounter interface {
	CountByScheduledDate(ctx context.Context, date string) (int64, error)
}

// Evaluator decides whether a date (or date+time) can take a new order.
// It holds no state of its own; every answer is a function of the blocked
// intervals and order count for the queried date. Datastore read failures
// are fail-open: the evaluator logs and proceeds as if nothing were
// blocked and no orders existed.
type Evaluator struct {
	Blocked BlockedSource
	Orders  OrderCounter
	Now     func() time.Time // nil means time.Now
}

// DateVerdict is the admissibility answer for scheduling a new order on a
// date. The three predicates are independent; Selectable is their AND.
type DateVerdict struct {
	Selectable bool   `json:"selectable"`
	TooSoon    bool   `json:"tooSoon"`
	Blocked    bool   `json:"blocked"`
	Full       bool   `json:"full"`
	Reason     string `json:"reason,omitempty"`
}

func (e *Evaluator) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// IsDateTimeBlocked reports whether an explicit blocked interval covers the
// given date, or date+time when tm is non-empty. Capacity is not considered
// here. On a read failure the verdict is open.
func (e *Evaluator) IsDateTimeBlocked(ctx context.Context, date, tm string) models.AvailabilityVerdict {
	blocks, err := e.Blocked.GetByDate(ctx, date)
	if err != nil {
		utils.GetLogger().Warn("availability: blocked-interval fetch failed, treating date as open",
			zap.String("date", date), zap.Error(err))
		return models.AvailabilityVerdict{}
	}
	if len(blocks) == 0 {
		return models.AvailabilityVerdict{}
	}

	if tm == "" {
		for _, b := range blocks {
			if b.WholeDay {
				return models.AvailabilityVerdict{Blocked: true, Reason: b.Reason}
			}
		}
		return models.AvailabilityVerdict{}
	}

	t := NormalizeTime(tm)
	for _, b := range blocks {
		// A whole-day interval blocks every time on the date.
		if b.WholeDay {
			return models.AvailabilityVerdict{Blocked: true, Reason: b.Reason}
		}
		if b.StartTime == "" || b.EndTime == "" {
			continue
		}
		// Inclusive bounds. Lexicographic comparison is valid for fixed
		// zero-padded HH:MM strings.
		if b.StartTime <= t && t <= b.EndTime {
			return models.AvailabilityVerdict{Blocked: true, Reason: b.Reason}
		}
	}
	return models.AvailabilityVerdict{}
}

// OrdersCountForDate counts orders of any status scheduled on the date.
// Fails open to zero.
func (e *Evaluator) OrdersCountForDate(ctx context.Context, date string) int {
	count, err := e.Orders.CountByScheduledDate(ctx, date)
	if err != nil {
		utils.GetLogger().Warn("availability: order count fetch failed, treating date as empty",
			zap.String("date", date), zap.Error(err))
		return 0
	}
	return int(count)
}

// AvailableTimeSlots enumerates the open pickup times for a date in
// ascending order: every 30 minutes from 08:00 through 20:00 inclusive,
// minus any slot inside a partial blocked interval. A full day (capacity
// reached) or a whole-day block yields no slots at all.
func (e *Evaluator) AvailableTimeSlots(ctx context.Context, date string) []string {
	if e.OrdersCountForDate(ctx, date) >= DayCapacity {
		return nil
	}

	blocks, err := e.Blocked.GetByDate(ctx, date)
	if err != nil {
		utils.GetLogger().Warn("availability: blocked-interval fetch failed, offering all slots",
			zap.String("date", date), zap.Error(err))
		blocks = nil
	}
	for _, b := range blocks {
		if b.WholeDay {
			return nil
		}
	}

	var slots []string
	for m := firstSlotMinutes; m <= lastSlotMinutes; m += slotStepMinutes {
		t := fmt.Sprintf("%02d:%02d", m/60, m%60)
		covered := false
		for _, b := range blocks {
			if b.StartTime == "" || b.EndTime == "" {
				continue
			}
			if b.StartTime <= t && t <= b.EndTime {
				covered = true
				break
			}
		}
		if !covered {
			slots = append(slots, t)
		}
	}
	return slots
}

// DateVerdict evaluates the three admission predicates for scheduling a
// new order on the date: advance-notice floor, no whole-day block, and
// capacity.
func (e *Evaluator) DateVerdict(ctx context.Context, date string) DateVerdict {
	var v DateVerdict

	if DaysUntil(e.now(), date) < AdvanceNoticeDays {
		v.TooSoon = true
	}
	if blocked := e.IsDateTimeBlocked(ctx, date, ""); blocked.Blocked {
		v.Blocked = true
		v.Reason = blocked.Reason
	}
	if e.OrdersCountForDate(ctx, date) >= DayCapacity {
		v.Full = true
	}

	v.Selectable = !v.TooSoon && !v.Blocked && !v.Full
	return v
}

// CanCancel reports whether a customer may still cancel the order:
// at least CancelNoticeDays whole days before the scheduled date.
func (e *Evaluator) CanCancel(order models.Order) bool {
	return DaysUntil(e.now(), order.ScheduledDate) >= CancelNoticeDays
}

// DaysUntil returns the number of whole days between now and the given
// calendar date. Both sides are pinned to 12:00 local time so the count is
// stable across daylight-saving transitions. Unparseable dates count as
// already past.
func DaysUntil(now time.Time, date string) int {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return -1
	}
	from := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	to := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, now.Location())
	return int(to.Sub(from).Hours() / 24)
}

// NormalizeTime reduces a time-of-day string to zero-padded "HH:MM",
// dropping a seconds component when present.
func NormalizeTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
