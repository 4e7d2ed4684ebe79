package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/masalamart/masalamart-api/models"
)

// RewardRepository stores reward accounts in "rewards" and the immutable
// ledger in "reward_transactions". Balance mutations are single conditional
// updates so two racing earn/redeem calls for one user cannot lose a write.
type RewardRepository struct {
	rewards      *mongo.Collection
	transactions *mongo.Collection
}

// NewRewardRepository creates a RewardRepository on the given database.
func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{
		rewards:      db.Collection("rewards"),
		transactions: db.Collection("reward_transactions"),
	}
}

// ApplyEarn atomically credits the balance and lifetime_earned counters,
// creating the account on first earn, and returns the post-increment state.
func (r *RewardRepository) ApplyEarn(ctx context.Context, userID string, amount int64) (*models.Reward, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{
			"balance":         amount,
			"lifetime_earned": amount,
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
		"$setOnInsert": bson.M{
			"id":                uuid.NewString(),
			"user_id":           userID,
			"lifetime_redeemed": int64(0),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var reward models.Reward
	if err := r.rewards.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&reward); err != nil {
		return nil, err
	}
	return &reward, nil
}

// ApplyRedeem atomically debits the balance, guarded by a balance >= amount
// filter. A short balance matches no document and nothing is written; the
// mongo.ErrNoDocuments result signals insufficient balance to the caller.
func (r *RewardRepository) ApplyRedeem(ctx context.Context, userID string, amount int64) (*models.Reward, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"balance": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{
			"balance":           -amount,
			"lifetime_redeemed": amount,
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var reward models.Reward
	if err := r.rewards.FindOneAndUpdate(ctx, filter, update, opts).Decode(&reward); err != nil {
		return nil, err
	}
	return &reward, nil
}

// Compensate reverses a balance mutation whose paired transaction failed to
// append, so the account never reflects an unledgered change.
func (r *RewardRepository) Compensate(ctx context.Context, userID string, balanceDelta, earnedDelta, redeemedDelta int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{
			"balance":           balanceDelta,
			"lifetime_earned":   earnedDelta,
			"lifetime_redeemed": redeemedDelta,
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	_, err := r.rewards.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	return err
}

// InsertTransaction appends one immutable ledger entry.
func (r *RewardRepository) InsertTransaction(ctx context.Context, tx *models.RewardTransaction) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.transactions.InsertOne(ctx, tx)
	return err
}

// FindByUser returns the user's reward account or mongo.ErrNoDocuments.
func (r *RewardRepository) FindByUser(ctx context.Context, userID string) (*models.Reward, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var reward models.Reward
	if err := r.rewards.FindOne(ctx, bson.M{"user_id": userID}).Decode(&reward); err != nil {
		return nil, err
	}
	return &reward, nil
}

// ListTransactions returns the user's ledger entries in reverse chronological
// order, capped at limit.
func (r *RewardRepository) ListTransactions(ctx context.Context, userID string, limit int64) ([]models.RewardTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.transactions.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	txs := []models.RewardTransaction{}
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
