package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/masalamart/masalamart-api/models"
)

// CartRepository stores carts in the "carts" collection, one document per
// user enforced by a unique index on user_id.
type CartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository creates a CartRepository on the given database.
func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection("carts")}
}

// FindByUser returns the user's cart or mongo.ErrNoDocuments.
func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cart models.Cart
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save upserts the cart keyed by user_id, creating the document on first add.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"items":      cart.Items,
			"subtotal":   cart.Subtotal,
			"updated_at": cart.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":      cart.CartID,
			"user_id": cart.UserID,
		},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"user_id": cart.UserID}, update, options.Update().SetUpsert(true))
	return err
}
