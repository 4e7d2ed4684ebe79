package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line in a cart. Price and name are snapshots taken when the
// item was added; they are not refreshed if the product changes afterwards.
type CartItem struct {
	ProductID    string    `bson:"product_id" json:"productId"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	WeightOption string    `bson:"weight_option,omitempty" json:"weightOption,omitempty"`
	Price        float64   `bson:"price" json:"price"`
	AddedAt      time.Time `bson:"added_at" json:"addedAt"`
}

// Cart is a user's shopping cart. Exactly one cart per user, created lazily
// on the first add.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CartID    string             `bson:"id" json:"id"`
	UserID    string             `bson:"user_id" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	Subtotal  float64            `bson:"subtotal" json:"subtotal"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// RecomputeSubtotal recalculates the cart subtotal from its line items.
func (c *Cart) RecomputeSubtotal() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Subtotal = total
}
