package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bakehouse/models"
	"bakehouse/services/availability"
	"bakehouse/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Adapter maps the evaluator's per-date verdicts onto a month grid for the
// date picker. Base grids (everything except the selected highlight) are
// cached in Redis per month; the selected state is overlaid per request so
// one cache entry serves every customer.
type Adapter struct {
	Eval  *availability.Evaluator
	Cache *redis.Client // nil disables caching
}

// MonthGrid returns one cell per day of the given month. State precedence:
// selected > past > blocked > full > available. Disabled is independent of
// the styling precedence: a cell is disabled whenever it is too soon,
// blocked, or at capacity, selected or not.
func (a *Adapter) MonthGrid(ctx context.Context, year int, month time.Month, selected string) []models.CalendarDay {
	days := a.baseGrid(ctx, year, month)
	if selected == "" {
		return days
	}
	for i := range days {
		if days[i].Date == selected {
			days[i].State = models.CalendarStateSelected
		}
	}
	return days
}

func (a *Adapter) baseGrid(ctx context.Context, year int, month time.Month) []models.CalendarDay {
	key := fmt.Sprintf("%s%04d-%02d", utils.CalendarCachePrefix, year, int(month))

	if a.Cache != nil {
		if data, err := a.Cache.Get(ctx, key).Result(); err == nil {
			var days []models.CalendarDay
			if err := json.Unmarshal([]byte(data), &days); err == nil {
				return days
			}
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]models.CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		verdict := a.Eval.DateVerdict(ctx, date)

		cell := models.CalendarDay{
			Date:     date,
			Disabled: !verdict.Selectable,
		}
		switch {
		case verdict.TooSoon:
			cell.State = models.CalendarStatePast
		case verdict.Blocked:
			cell.State = models.CalendarStateBlocked
			cell.Reason = verdict.Reason
		case verdict.Full:
			cell.State = models.CalendarStateFull
		default:
			cell.State = models.CalendarStateAvailable
		}
		days = append(days, cell)
	}

	if a.Cache != nil {
		if data, err := json.Marshal(days); err == nil {
			if err := a.Cache.Set(ctx, key, data, utils.CalendarCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("calendar: cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return days
}

// Invalidate drops the cached grid for the month containing the date, used
// after an order or blocked-interval mutation.
func (a *Adapter) Invalidate(ctx context.Context, date string) {
	if a.Cache == nil {
		return
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return
	}
	key := fmt.Sprintf("%s%04d-%02d", utils.CalendarCachePrefix, d.Year(), int(d.Month()))
	if err := a.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("calendar: cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
