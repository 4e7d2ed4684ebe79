package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types.
const (
	NotificationOrder        = "order"
	NotificationDelivery     = "delivery"
	NotificationOffer        = "offer"
	NotificationSubscription = "subscription"
	NotificationReward       = "reward"
	NotificationGeneral      = "general"
)

// ValidNotificationType reports whether t is a known notification type.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationOrder, NotificationDelivery, NotificationOffer,
		NotificationSubscription, NotificationReward, NotificationGeneral:
		return true
	}
	return false
}

// Notification is an in-app message for one user. Only the is_read flag is
// ever mutated; notifications are never deleted.
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	NotificationID string             `bson:"id" json:"id"`
	UserID         string             `bson:"user_id" json:"userId"`
	Type           string             `bson:"type" json:"type"`
	Title          string             `bson:"title" json:"title"`
	Message        string             `bson:"message" json:"message"`
	Data           json.RawMessage    `bson:"data,omitempty" json:"data,omitempty"`
	IsRead         bool               `bson:"is_read" json:"isRead"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}
