package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masalamart/masalamart-api/models"
)

// NotificationStore persists notifications. SetRead must fail with
// mongo.ErrNoDocuments when the id does not resolve.
type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
	SetRead(ctx context.Context, notificationID string, isRead bool) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
}

// NotificationCenter creates, lists and flips per-user notifications.
// Notifications are soft-state: they are appended and flipped, never deleted.
type NotificationCenter struct {
	store NotificationStore
}

// NewNotificationCenter creates a NotificationCenter over the given store.
func NewNotificationCenter(store NotificationStore) *NotificationCenter {
	return &NotificationCenter{store: store}
}

// Create appends a new unread notification. There is no idempotency key;
// duplicate payloads produce duplicate notifications.
func (c *NotificationCenter) Create(ctx context.Context, userID, typ, title, message string, data json.RawMessage) (*models.Notification, error) {
	if userID == "" {
		return nil, NewValidationError("userId is required")
	}
	if !models.ValidNotificationType(typ) {
		return nil, NewValidationError("unknown notification type %q", typ)
	}
	if title == "" || message == "" {
		return nil, NewValidationError("title and message are required")
	}

	n := &models.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Type:           typ,
		Title:          title,
		Message:        message,
		Data:           data,
		IsRead:         false,
		CreatedAt:      time.Now().UTC(),
	}
	if err := c.store.Insert(ctx, n); err != nil {
		return nil, errors.Wrap(err, "insert notification")
	}
	return n, nil
}

// MarkRead flips the read flag on one notification and returns the updated
// record. An unknown id yields a not-found error with no mutation.
func (c *NotificationCenter) MarkRead(ctx context.Context, notificationID string, isRead bool) (*models.Notification, error) {
	if notificationID == "" {
		return nil, NewValidationError("notificationId is required")
	}

	n, err := c.store.SetRead(ctx, notificationID, isRead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("notification")
		}
		return nil, errors.Wrap(err, "set read flag")
	}
	return n, nil
}

// MarkAllRead flips every unread notification for the user and returns the
// count affected. Zero unread notifications is a successful no-op.
func (c *NotificationCenter) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, NewValidationError("userId is required")
	}

	count, err := c.store.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "mark all read")
	}
	return count, nil
}

// CountUnread returns the user's unread notification count.
func (c *NotificationCenter) CountUnread(ctx context.Context, userID string) (int64, error) {
	count, err := c.store.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "count unread")
	}
	return count, nil
}

// List returns the user's notifications, newest first.
func (c *NotificationCenter) List(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	list, err := c.store.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}
	return list, nil
}
