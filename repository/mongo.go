package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "ping mongodb")
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes the one-document-per-user
// collections rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string]mongo.IndexModel{
		"users":     {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		"carts":     {Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		"rewards":   {Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		"wishlists": {Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		"blogs":     {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
	}
	for coll, spec := range specs {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, spec); err != nil {
			return errors.Wrapf(err, "create index on %s", coll)
		}
	}

	ledger := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}}
	if _, err := db.Collection("reward_transactions").Indexes().CreateOne(ctx, ledger); err != nil {
		return errors.Wrap(err, "create index on reward_transactions")
	}

	inbox := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_read", Value: 1}}}
	if _, err := db.Collection("notifications").Indexes().CreateOne(ctx, inbox); err != nil {
		return errors.Wrap(err, "create index on notifications")
	}
	return nil
}
