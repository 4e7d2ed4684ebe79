package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/masalamart/masalamart-api/models"
)

// WishlistRepository stores wishlists in the "wishlists" collection, one
// document per user enforced by a unique index on user_id.
type WishlistRepository struct {
	coll *mongo.Collection
}

// NewWishlistRepository creates a WishlistRepository on the given database.
func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{coll: db.Collection("wishlists")}
}

// FindByUser returns the user's wishlist or mongo.ErrNoDocuments.
func (r *WishlistRepository) FindByUser(ctx context.Context, userID string) (*models.Wishlist, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var w models.Wishlist
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Save upserts the wishlist keyed by user_id.
func (r *WishlistRepository) Save(ctx context.Context, w *models.Wishlist) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"items":      w.Items,
			"updated_at": w.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":      w.WishlistID,
			"user_id": w.UserID,
		},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"user_id": w.UserID}, update, options.Update().SetUpsert(true))
	return err
}
