package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/masalamart/masalamart-api/models"
)

// NotificationRepository stores notifications in the "notifications"
// collection. Documents are appended and have is_read flipped, never deleted.
type NotificationRepository struct {
	coll *mongo.Collection
}

// NewNotificationRepository creates a NotificationRepository on the given
// database.
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection("notifications")}
}

// Insert appends one notification.
func (r *NotificationRepository) Insert(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, n)
	return err
}

// SetRead flips the read flag by business id and returns the updated record,
// or mongo.ErrNoDocuments if the id does not resolve.
func (r *NotificationRepository) SetRead(ctx context.Context, notificationID string, isRead bool) (*models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var n models.Notification
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": notificationID},
		bson.M{"$set": bson.M{"is_read": isRead}},
		opts,
	).Decode(&n)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkAllRead flips every unread notification for the user and returns the
// number modified.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.coll.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// CountUnread returns the user's unread count.
func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "is_read": false})
}

// ListByUser returns the user's notifications newest first, capped at limit.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Notification{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
