// File: database/repository/order/queries.go
package orderRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bakehouse/models"
)

// CountByScheduledDate counts orders of any status scheduled on the given
// day. The capacity rule counts every order, cancelled or not, matching the
// admission check done at booking time.
func (r *mongoOrderRepo) CountByScheduledDate(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.orders.CountDocuments(ctx, bson.M{"scheduled_date": date})
}

func (r *mongoOrderRepo) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: 1}, {Key: "scheduled_time", Value: 1}})
	cursor, err := r.orders.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.orders.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
