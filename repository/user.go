package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masalamart/masalamart-api/models"
)

// UserRepository stores customer accounts in the "users" collection.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a UserRepository on the given database.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

// FindByEmail returns the account with the given email or
// mongo.ErrNoDocuments.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert creates a new account document.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, u)
	return err
}
