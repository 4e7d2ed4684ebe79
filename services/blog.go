package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masalamart/masalamart-api/models"
)

// BlogStore persists blog articles. Both finders must filter out soft-deleted
// documents and fail with mongo.ErrNoDocuments on a miss.
type BlogStore interface {
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	FindByObjectID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	Insert(ctx context.Context, b *models.Blog) error
	Update(ctx context.Context, slug string, fields map[string]interface{}) (*models.Blog, error)
	SoftDelete(ctx context.Context, slug string) error
}

// BlogService resolves and manages storefront articles.
type BlogService struct {
	store BlogStore
}

// NewBlogService creates a BlogService over the given store.
func NewBlogService(store BlogStore) *BlogService {
	return &BlogService{store: store}
}

// Resolve looks an article up by its slug first, then by its storage id.
// Both stages are explicit; not-found is returned only when both miss.
func (s *BlogService) Resolve(ctx context.Context, id string) (*models.Blog, error) {
	if id == "" {
		return nil, NewValidationError("blog id is required")
	}

	blog, err := s.store.FindBySlug(ctx, id)
	if err == nil {
		return blog, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "find blog by slug")
	}

	oid, oidErr := primitive.ObjectIDFromHex(id)
	if oidErr != nil {
		return nil, NewNotFoundError("blog")
	}
	blog, err = s.store.FindByObjectID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("blog")
		}
		return nil, errors.Wrap(err, "find blog by object id")
	}
	return blog, nil
}

// Create publishes a new article in active status.
func (s *BlogService) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if blog.Slug == "" || blog.Title == "" {
		return nil, NewValidationError("slug and title are required")
	}

	now := time.Now().UTC()
	blog.BlogID = uuid.NewString()
	blog.Status = models.BlogActive
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if err := s.store.Insert(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "insert blog")
	}
	return blog, nil
}

// Update edits an active article in place. Only the fields set in changes
// are touched; editing an unknown or soft-deleted article reports not found.
func (s *BlogService) Update(ctx context.Context, slug string, changes models.BlogUpdate) (*models.Blog, error) {
	if slug == "" {
		return nil, NewValidationError("slug is required")
	}

	fields := map[string]interface{}{}
	if changes.Title != nil {
		if *changes.Title == "" {
			return nil, NewValidationError("title must not be empty")
		}
		fields["title"] = *changes.Title
	}
	if changes.Body != nil {
		fields["body"] = *changes.Body
	}
	if changes.Author != nil {
		fields["author"] = *changes.Author
	}
	if changes.Tags != nil {
		fields["tags"] = *changes.Tags
	}
	if len(fields) == 0 {
		return nil, NewValidationError("no fields to update")
	}

	blog, err := s.store.Update(ctx, slug, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("blog")
		}
		return nil, errors.Wrap(err, "update blog")
	}
	return blog, nil
}

// Delete soft-deletes an article by slug. The document is kept with status
// "deleted" and disappears from all read paths.
func (s *BlogService) Delete(ctx context.Context, slug string) error {
	if slug == "" {
		return NewValidationError("slug is required")
	}
	if err := s.store.SoftDelete(ctx, slug); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError("blog")
		}
		return errors.Wrap(err, "soft delete blog")
	}
	return nil
}
