package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a user's delivery address.
type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipcode" json:"zipcode"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// User represents a customer account.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     string             `bson:"id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password,omitempty" json:"-"`
	Address    Address            `bson:"address" json:"address"`
	Role       string             `bson:"role" json:"role"` // "user" or "admin"
	IsVerified bool               `bson:"is_verified" json:"isVerified"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
