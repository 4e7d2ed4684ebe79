package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem references exactly one of a product or a recipe, never both.
type WishlistItem struct {
	ItemID    string    `bson:"id" json:"id"`
	ProductID string    `bson:"product_id,omitempty" json:"productId,omitempty"`
	RecipeID  string    `bson:"recipe_id,omitempty" json:"recipeId,omitempty"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt"`
}

// Wishlist is a user's saved items, one wishlist per user.
type Wishlist struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	WishlistID string             `bson:"id" json:"id"`
	UserID     string             `bson:"user_id" json:"userId"`
	Items      []WishlistItem     `bson:"items" json:"items"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}
