package order

import (
	"context"
	"fmt"
	"slices"
	"time"

	"bakehouse/models"
	"bakehouse/services/availability"
	"bakehouse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create re-validates the requested date and time against the evaluator,
// then performs three independent writes: the order row, the item rows,
// and the payment row. There is no compensating rollback; if a later write
// fails, the earlier rows stand and the error is surfaced to the caller.
func (s *DefaultOrderService) Create(ctx context.Context, customerID string, input models.OrderInput) (*models.Order, error) {
	logger := utils.GetLogger()

	scheduledTime := availability.NormalizeTime(input.ScheduledTime)
	verdict := s.Eval.DateVerdict(ctx, input.ScheduledDate)
	switch {
	case verdict.TooSoon:
		return nil, newOrderError(CodeTooSoon, fmt.Sprintf("orders need at least %d days notice", availability.AdvanceNoticeDays))
	case verdict.Blocked:
		return nil, newOrderError(CodeTimeBlocked, verdict.Reason)
	case verdict.Full:
		return nil, newOrderError(CodeDayFull, "no more orders can be scheduled for this date")
	}
	if blocked := s.Eval.IsDateTimeBlocked(ctx, input.ScheduledDate, scheduledTime); blocked.Blocked {
		return nil, newOrderError(CodeTimeBlocked, blocked.Reason)
	}
	if !slices.Contains(s.Eval.AvailableTimeSlots(ctx, input.ScheduledDate), scheduledTime) {
		return nil, newOrderError(CodeInvalidTime, "requested time is not an open pickup slot")
	}

	items, total, err := s.priceItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	ord := &models.Order{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: scheduledTime,
		Status:        models.OrderStatusPending,
		Total:         total,
		Note:          input.Note,
	}
	if err := s.Orders.Create(ctx, ord); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		items[i].OrderID = ord.ID
	}
	if err := s.Orders.InsertItems(ctx, items); err != nil {
		return nil, fmt.Errorf("order %s created but item insert failed: %w", ord.ID, err)
	}

	payment := &models.Payment{
		ID:       uuid.New().String(),
		OrderID:  ord.ID,
		Method:   input.PaymentMethod,
		Status:   models.PaymentStatusUnpaid,
		Amount:   total,
		Currency: "usd",
	}
	if input.PaymentMethod == "card" && s.Intents != nil {
		intentID, err := s.Intents.CreateIntent(ctx, total, payment.Currency, ord.ID)
		if err != nil {
			// Intent creation is retried from the payment screen; the
			// order itself stands.
			logger.Error("order: payment intent creation failed",
				zap.String("orderID", ord.ID), zap.Error(err))
		} else {
			payment.StripeIntentID = intentID
		}
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("order %s created but payment insert failed: %w", ord.ID, err)
	}

	if s.Calendar != nil {
		s.Calendar.Invalidate(ctx, ord.ScheduledDate)
	}
	logger.Info("order created",
		zap.String("orderID", ord.ID),
		zap.String("date", ord.ScheduledDate),
		zap.String("time", ord.ScheduledTime))
	return ord, nil
}

func (s *DefaultOrderService) priceItems(ctx context.Context, inputs []models.OrderItemInput) ([]models.OrderItem, float64, error) {
	if len(inputs) == 0 {
		return nil, 0, newOrderError(CodeNotFound, "order has no items")
	}

	var items []models.OrderItem
	var total float64
	for _, in := range inputs {
		product, err := s.Products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, 0, newOrderError(CodeNotFound, fmt.Sprintf("unknown product %s", in.ProductID))
		}
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			Quantity:       qty,
			UnitPrice:      product.Price,
			Inscription:    in.Inscription,
			DesignImageURL: in.DesignImageURL,
		})
		total += product.Price * float64(qty)
	}
	return items, total, nil
}

// Cancel cancels a customer's own order if the cancellation window is
// still open, and notifies the operator. Notification failures are logged
// only.
func (s *DefaultOrderService) Cancel(ctx context.Context, orderID, customerID string) error {
	ord, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return newOrderError(CodeNotFound, "order not found")
	}
	if ord.CustomerID != customerID {
		return newOrderError(CodeForbidden, "order belongs to another customer")
	}
	if !s.Eval.CanCancel(*ord) {
		return newOrderError(CodeCancelWindowClosed,
			fmt.Sprintf("orders can only be cancelled at least %d days before the scheduled date", availability.CancelNoticeDays))
	}

	if err := s.Orders.UpdateStatus(ctx, orderID, models.OrderStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}
	if s.Calendar != nil {
		s.Calendar.Invalidate(ctx, ord.ScheduledDate)
	}

	s.notifyOperator(ctx, "Order cancelled",
		fmt.Sprintf("Order %s for %s was cancelled by the customer.", ord.ID, ord.ScheduledDate),
		map[string]string{"orderId": ord.ID, "cause": "customer"})
	return nil
}

// Approve moves a pending order to Approved.
func (s *DefaultOrderService) Approve(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, models.OrderStatusApproved)
}

// MarkDelivered moves an order to Delivered.
func (s *DefaultOrderService) MarkDelivered(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, models.OrderStatusDelivered)
}

func (s *DefaultOrderService) transition(ctx context.Context, orderID, status string) error {
	if err := s.Orders.UpdateStatus(ctx, orderID, status); err != nil {
		return newOrderError(CodeNotFound, fmt.Sprintf("order %s not found", orderID))
	}
	return nil
}

// MarkPaid flips the order's payment row to Paid, e.g. after a Stripe
// webhook or a cash payment at pickup.
func (s *DefaultOrderService) MarkPaid(ctx context.Context, orderID string) error {
	if err := s.Payments.UpdateStatus(ctx, orderID, models.PaymentStatusPaid); err != nil {
		return newOrderError(CodeNotFound, fmt.Sprintf("payment for order %s not found", orderID))
	}
	return nil
}

func (s *DefaultOrderService) GetWithItems(ctx context.Context, orderID string) (*models.Order, []models.OrderItem, error) {
	ord, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, newOrderError(CodeNotFound, "order not found")
	}
	items, err := s.Orders.GetItems(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load items for order %s: %w", orderID, err)
	}
	return ord, items, nil
}

func (s *DefaultOrderService) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	return s.Orders.ListByCustomer(ctx, customerID)
}

func (s *DefaultOrderService) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return s.Orders.ListByStatus(ctx, status)
}

func (s *DefaultOrderService) notifyOperator(ctx context.Context, title, body string, data map[string]string) {
	if s.Notifier == nil {
		return
	}
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Notifier.NotifyOperator(notifyCtx, title, body, data); err != nil {
		utils.GetLogger().Warn("order: operator notification failed", zap.Error(err))
	}
}
