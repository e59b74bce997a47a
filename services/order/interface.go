package order

import (
	"context"

	orderRepo "bakehouse/database/repository/order"
	paymentRepo "bakehouse/database/repository/payment"
	productRepo "bakehouse/database/repository/product"
	"bakehouse/models"
	"bakehouse/services/availability"
	"bakehouse/services/calendar"
	"bakehouse/services/notification"
)

// OrderService is the order lifecycle: creation with availability
// re-validation, customer cancellation, admin review, and the unpaid-order
// sweep.
type OrderService interface {
	Create(ctx context.Context, customerID string, input models.OrderInput) (*models.Order, error)
	Cancel(ctx context.Context, orderID, customerID string) error
	Approve(ctx context.Context, orderID string) error
	MarkDelivered(ctx context.Context, orderID string) error
	MarkPaid(ctx context.Context, orderID string) error
	GetWithItems(ctx context.Context, orderID string) (*models.Order, []models.OrderItem, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error)
	ListByStatus(ctx context.Context, status string) ([]models.Order, error)
	SweepUnpaid(ctx context.Context) (int, error)
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Orders   orderRepo.OrderRepository
	Payments paymentRepo.PaymentRepository
	Products productRepo.ProductRepository
	Eval     *availability.Evaluator
	Calendar *calendar.Adapter
	Notifier notification.NotificationService
	Intents  PaymentIntents // nil disables card intents (e.g. in tests)
}
