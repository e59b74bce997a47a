// File: database/repository/order/interface.go
package orderRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bakehouse/database"
	"bakehouse/models"
)

// OrderRepository defines persistence for orders and their line items.
// The order row, item rows and payment row are three independent writes;
// there is no transaction spanning them.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	InsertItems(ctx context.Context, items []models.OrderItem) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByScheduledDate(ctx context.Context, date string) (int64, error)
	ListByStatus(ctx context.Context, status string) ([]models.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error)
}

type mongoOrderRepo struct {
	orders *mongo.Collection
	items  *mongo.Collection
}

// NewMongoOrderRepo constructs a new MongoDB OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	db := database.DB()
	return &mongoOrderRepo{
		orders: db.Collection("orders"),
		items:  db.Collection("order_items"),
	}
}
