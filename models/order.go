package models

import "time"

// Order statuses. An order is created Pending, moves to Approved once an
// admin accepts it, and to Delivered after fulfilment. Cancelled is terminal
// and reached either by the customer or the unpaid-order sweep.
const (
	OrderStatusPending   = "Pending"
	OrderStatusApproved  = "Approved"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// Order is a confirmed cake order scheduled for pickup or delivery.
type Order struct {
	ID            string    `bson:"id" json:"id"`
	CustomerID    string    `bson:"customer_id" json:"customerId"`
	ScheduledDate string    `bson:"scheduled_date" json:"scheduledDate"` // "2006-01-02"
	ScheduledTime string    `bson:"scheduled_time" json:"scheduledTime"` // "HH:MM"
	Status        string    `bson:"status" json:"status"`
	Total         float64   `bson:"total" json:"total"`
	Note          string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// OrderItem is one line of an order. DesignImageURL points at the uploaded
// export of the customer's cake-canvas design, when present.
type OrderItem struct {
	ID             string  `bson:"id" json:"id"`
	OrderID        string  `bson:"order_id" json:"orderId"`
	ProductID      string  `bson:"product_id" json:"productId"`
	Quantity       int     `bson:"quantity" json:"quantity"`
	UnitPrice      float64 `bson:"unit_price" json:"unitPrice"`
	Inscription    string  `bson:"inscription,omitempty" json:"inscription,omitempty"`
	DesignImageURL string  `bson:"design_image_url,omitempty" json:"designImageUrl,omitempty"`
}

// OrderInput is the payload for creating an order.
type OrderInput struct {
	ScheduledDate string           `json:"scheduledDate" binding:"required"`
	ScheduledTime string           `json:"scheduledTime" binding:"required"`
	Items         []OrderItemInput `json:"items" binding:"required"`
	PaymentMethod string           `json:"paymentMethod" binding:"required"` // "card" or "cash"
	Note          string           `json:"note"`
}

type OrderItemInput struct {
	ProductID      string `json:"productId" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	Inscription    string `json:"inscription"`
	DesignImageURL string `json:"designImageUrl"`
}
