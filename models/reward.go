package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reward transaction types.
const (
	TransactionEarned   = "earned"
	TransactionRedeemed = "redeemed"
	TransactionAdjusted = "adjusted"
	TransactionExpired  = "expired"
)

// Reward is a user's point account. The balance is reconstructible from the
// transaction ledger: balance = lifetime_earned - lifetime_redeemed.
type Reward struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RewardID         string             `bson:"id" json:"id"`
	UserID           string             `bson:"user_id" json:"userId"`
	Balance          int64              `bson:"balance" json:"balance"`
	LifetimeEarned   int64              `bson:"lifetime_earned" json:"lifetimeEarned"`
	LifetimeRedeemed int64              `bson:"lifetime_redeemed" json:"lifetimeRedeemed"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

// RewardTransaction is an immutable ledger entry. Entries are never mutated
// after creation and are listed newest-first per user.
type RewardTransaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TransactionID string             `bson:"id" json:"id"`
	UserID        string             `bson:"user_id" json:"userId"`
	Type          string             `bson:"type" json:"type"`
	Amount        int64              `bson:"amount" json:"amount"`
	BalanceAfter  int64              `bson:"balance_after" json:"balanceAfter"`
	OrderID       string             `bson:"order_id,omitempty" json:"orderId,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
