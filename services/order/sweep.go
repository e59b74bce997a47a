package order

import (
	"context"
	"fmt"
	"time"

	"bakehouse/models"
	"bakehouse/services/availability"
	"bakehouse/utils"

	"go.uber.org/zap"
)

// sweepReason is the machine-generated cancellation reason attached to
// operator notifications from the sweep.
const sweepReason = "auto-cancelled: order unpaid inside the 7-day delivery window"

// SweepUnpaid scans every Pending order whose payment is still Unpaid and
// cancels those scheduled fewer than UnpaidCutoffDays from now. Each run
// re-scans unconditionally; cancelled orders drop out of the Pending
// filter, so repeated runs are idempotent. Returns the number of orders
// cancelled this pass.
func (s *DefaultOrderService) SweepUnpaid(ctx context.Context) (int, error) {
	logger := utils.GetLogger()

	pending, err := s.Orders.ListByStatus(ctx, models.OrderStatusPending)
	if err != nil {
		return 0, fmt.Errorf("sweep: failed to list pending orders: %w", err)
	}

	now := time.Now()
	if s.Eval != nil && s.Eval.Now != nil {
		now = s.Eval.Now()
	}

	cancelled := 0
	for _, ord := range pending {
		payment, err := s.Payments.GetByOrderID(ctx, ord.ID)
		if err != nil {
			logger.Warn("sweep: payment lookup failed, skipping order",
				zap.String("orderID", ord.ID), zap.Error(err))
			continue
		}
		if payment.Status != models.PaymentStatusUnpaid {
			continue
		}
		if availability.DaysUntil(now, ord.ScheduledDate) >= availability.UnpaidCutoffDays {
			continue
		}

		if err := s.Orders.UpdateStatus(ctx, ord.ID, models.OrderStatusCancelled); err != nil {
			logger.Error("sweep: failed to cancel order",
				zap.String("orderID", ord.ID), zap.Error(err))
			continue
		}
		cancelled++
		if s.Calendar != nil {
			s.Calendar.Invalidate(ctx, ord.ScheduledDate)
		}
		s.notifyOperator(ctx, "Order auto-cancelled",
			fmt.Sprintf("Order %s for %s: %s", ord.ID, ord.ScheduledDate, sweepReason),
			map[string]string{"orderId": ord.ID, "cause": "sweep", "reason": sweepReason})
	}

	if cancelled > 0 {
		logger.Info("sweep: cancelled unpaid orders", zap.Int("count", cancelled))
	}
	return cancelled, nil
}
