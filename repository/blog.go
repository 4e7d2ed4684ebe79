package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/masalamart/masalamart-api/models"
)

// BlogRepository stores articles in the "blogs" collection. Deletes are soft:
// the status field flips to "deleted" and every read filters on "active".
type BlogRepository struct {
	coll *mongo.Collection
}

// NewBlogRepository creates a BlogRepository on the given database.
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection("blogs")}
}

// FindBySlug returns the active article with the given slug or
// mongo.ErrNoDocuments.
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "status": models.BlogActive})
}

// FindByObjectID returns the active article with the given storage id or
// mongo.ErrNoDocuments.
func (r *BlogRepository) FindByObjectID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.findOne(ctx, bson.M{"_id": id, "status": models.BlogActive})
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var blog models.Blog
	if err := r.coll.FindOne(ctx, filter).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// Insert creates a new article document.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

// Update applies field changes to an active article and returns the updated
// document, or mongo.ErrNoDocuments when no active article has the slug.
func (r *BlogRepository) Update(ctx context.Context, slug string, fields map[string]interface{}) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog models.Blog
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"slug": slug, "status": models.BlogActive},
		bson.M{"$set": set},
		opts,
	).Decode(&blog)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// SoftDelete flips an active article to deleted status. The document stays
// in place for audit and history.
func (r *BlogRepository) SoftDelete(ctx context.Context, slug string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"slug": slug, "status": models.BlogActive},
		bson.M{"$set": bson.M{"status": models.BlogDeleted, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
