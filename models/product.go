package models

import "time"

// Product is a catalog cake.
type Product struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	ImageURL    string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Category    string    `bson:"category" json:"category"` // e.g. "birthday", "wedding"
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
