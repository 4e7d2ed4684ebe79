package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog statuses. Blogs are soft-deleted: a deleted blog keeps its document
// with status "deleted" and is filtered out of every read path.
const (
	BlogActive  = "active"
	BlogDeleted = "deleted"
)

// Blog is a storefront article. The slug is the resolver key readers use;
// the id is the stable business identifier and the Mongo _id still resolves
// as a fallback.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BlogID    string             `bson:"id" json:"id"`
	Slug      string             `bson:"slug" json:"slug"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// BlogUpdate carries the editable fields of an article. Nil fields are left
// untouched.
type BlogUpdate struct {
	Title  *string   `json:"title"`
	Body   *string   `json:"body"`
	Author *string   `json:"author"`
	Tags   *[]string `json:"tags"`
}
