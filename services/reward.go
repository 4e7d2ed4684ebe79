package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masalamart/masalamart-api/models"
)

// RewardStore persists reward accounts and their transaction ledger. ApplyEarn
// and ApplyRedeem must perform the balance mutation as a single atomic update
// and return the post-mutation document; ApplyRedeem must fail with
// mongo.ErrNoDocuments (no mutation) when the balance is short.
type RewardStore interface {
	ApplyEarn(ctx context.Context, userID string, amount int64) (*models.Reward, error)
	ApplyRedeem(ctx context.Context, userID string, amount int64) (*models.Reward, error)
	Compensate(ctx context.Context, userID string, balanceDelta, earnedDelta, redeemedDelta int64) error
	InsertTransaction(ctx context.Context, tx *models.RewardTransaction) error
	FindByUser(ctx context.Context, userID string) (*models.Reward, error)
	ListTransactions(ctx context.Context, userID string, limit int64) ([]models.RewardTransaction, error)
}

// Notifier delivers in-app notifications; satisfied by NotificationCenter.
type Notifier interface {
	Create(ctx context.Context, userID, typ, title, message string, data json.RawMessage) (*models.Notification, error)
}

// RewardLedger maintains per-user point balances. Every balance mutation is
// paired with exactly one ledger transaction whose balance_after matches the
// resulting balance; the pair succeeds or fails as a unit.
type RewardLedger struct {
	store    RewardStore
	notifier Notifier
}

// NewRewardLedger creates a RewardLedger. The notifier may be nil, in which
// case no reward notifications are emitted.
func NewRewardLedger(store RewardStore, notifier Notifier) *RewardLedger {
	return &RewardLedger{store: store, notifier: notifier}
}

// RecordEarn credits amount points to the user and appends the paired
// "earned" transaction. The account is created lazily on first earn.
func (l *RewardLedger) RecordEarn(ctx context.Context, userID string, amount int64, orderID, description string) (*models.RewardTransaction, error) {
	if amount <= 0 {
		return nil, NewValidationError("amount must be positive")
	}

	reward, err := l.store.ApplyEarn(ctx, userID, amount)
	if err != nil {
		return nil, errors.Wrap(err, "apply earn")
	}

	tx, err := l.appendTransaction(ctx, userID, models.TransactionEarned, amount, reward.Balance, orderID, description)
	if err != nil {
		// Undo the credit so no mutation is observable without its ledger entry.
		if cerr := l.store.Compensate(ctx, userID, -amount, -amount, 0); cerr != nil {
			log.WithError(cerr).WithField("user_id", userID).Error("failed to compensate earn")
		}
		return nil, err
	}

	l.notifyEarn(ctx, userID, amount, reward.Balance)
	return tx, nil
}

// RecordRedeem debits amount points from the user and appends the paired
// "redeemed" transaction. A balance smaller than amount leaves the account
// untouched and reports an insufficient-balance error.
func (l *RewardLedger) RecordRedeem(ctx context.Context, userID string, amount int64, orderID, description string) (*models.RewardTransaction, error) {
	if amount <= 0 {
		return nil, NewValidationError("amount must be positive")
	}

	reward, err := l.store.ApplyRedeem(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &InsufficientBalanceError{Requested: amount}
		}
		return nil, errors.Wrap(err, "apply redeem")
	}

	tx, err := l.appendTransaction(ctx, userID, models.TransactionRedeemed, amount, reward.Balance, orderID, description)
	if err != nil {
		if cerr := l.store.Compensate(ctx, userID, amount, 0, -amount); cerr != nil {
			log.WithError(cerr).WithField("user_id", userID).Error("failed to compensate redeem")
		}
		return nil, err
	}
	return tx, nil
}

// Balance returns the user's reward account, zero-valued if none exists yet.
// The zero-valued snapshot carries no business id; the store mints one when
// the account is created on first earn.
func (l *RewardLedger) Balance(ctx context.Context, userID string) (*models.Reward, error) {
	reward, err := l.store.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.Reward{UserID: userID}, nil
		}
		return nil, errors.Wrap(err, "find reward")
	}
	return reward, nil
}

// Transactions lists the user's ledger entries, newest first.
func (l *RewardLedger) Transactions(ctx context.Context, userID string, limit int64) ([]models.RewardTransaction, error) {
	txs, err := l.store.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}
	return txs, nil
}

func (l *RewardLedger) appendTransaction(ctx context.Context, userID, typ string, amount, balanceAfter int64, orderID, description string) (*models.RewardTransaction, error) {
	tx := &models.RewardTransaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          typ,
		Amount:        amount,
		BalanceAfter:  balanceAfter,
		OrderID:       orderID,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	}
	if err := l.store.InsertTransaction(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "append transaction")
	}
	return tx, nil
}

func (l *RewardLedger) notifyEarn(ctx context.Context, userID string, amount, balance int64) {
	if l.notifier == nil {
		return
	}
	data, _ := json.Marshal(map[string]int64{"amount": amount, "balance": balance})
	_, err := l.notifier.Create(ctx, userID, models.NotificationReward,
		"Points earned",
		fmt.Sprintf("You earned %d reward points.", amount),
		data)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to create reward notification")
	}
}
