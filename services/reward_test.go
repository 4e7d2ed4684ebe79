package services_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masalamart/masalamart-api/models"
	"github.com/masalamart/masalamart-api/services"
)

// mockRewardStore mirrors the store contract: ApplyEarn upserts and
// increments atomically, ApplyRedeem is guarded by the balance filter.
type mockRewardStore struct {
	accounts     map[string]*models.Reward
	transactions []models.RewardTransaction
	failInsert   bool
}

func newMockRewardStore() *mockRewardStore {
	return &mockRewardStore{accounts: make(map[string]*models.Reward)}
}

func (m *mockRewardStore) ApplyEarn(_ context.Context, userID string, amount int64) (*models.Reward, error) {
	acc, ok := m.accounts[userID]
	if !ok {
		acc = &models.Reward{RewardID: "rw-" + userID, UserID: userID}
		m.accounts[userID] = acc
	}
	acc.Balance += amount
	acc.LifetimeEarned += amount
	copied := *acc
	return &copied, nil
}

func (m *mockRewardStore) ApplyRedeem(_ context.Context, userID string, amount int64) (*models.Reward, error) {
	acc, ok := m.accounts[userID]
	if !ok || acc.Balance < amount {
		return nil, mongo.ErrNoDocuments
	}
	acc.Balance -= amount
	acc.LifetimeRedeemed += amount
	copied := *acc
	return &copied, nil
}

func (m *mockRewardStore) Compensate(_ context.Context, userID string, balanceDelta, earnedDelta, redeemedDelta int64) error {
	acc, ok := m.accounts[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	acc.Balance += balanceDelta
	acc.LifetimeEarned += earnedDelta
	acc.LifetimeRedeemed += redeemedDelta
	return nil
}

func (m *mockRewardStore) InsertTransaction(_ context.Context, tx *models.RewardTransaction) error {
	if m.failInsert {
		return errors.New("ledger unavailable")
	}
	m.transactions = append(m.transactions, *tx)
	return nil
}

func (m *mockRewardStore) FindByUser(_ context.Context, userID string) (*models.Reward, error) {
	acc, ok := m.accounts[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *acc
	return &copied, nil
}

func (m *mockRewardStore) ListTransactions(_ context.Context, userID string, limit int64) ([]models.RewardTransaction, error) {
	var out []models.RewardTransaction
	for i := len(m.transactions) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if m.transactions[i].UserID == userID {
			out = append(out, m.transactions[i])
		}
	}
	return out, nil
}

func TestEarnThenRedeemRestoresBalance(t *testing.T) {
	store := newMockRewardStore()
	ledger := services.NewRewardLedger(store, nil)
	ctx := context.Background()

	_, err := ledger.RecordEarn(ctx, "user-1", 200, "", "signup bonus")
	require.NoError(t, err)

	before, err := ledger.Balance(ctx, "user-1")
	require.NoError(t, err)

	earnTx, err := ledger.RecordEarn(ctx, "user-1", 50, "order-9", "purchase")
	require.NoError(t, err)
	redeemTx, err := ledger.RecordRedeem(ctx, "user-1", 50, "order-9", "checkout discount")
	require.NoError(t, err)

	after, err := ledger.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, before.Balance, after.Balance)

	require.Len(t, store.transactions, 3)
	assert.Equal(t, models.TransactionEarned, earnTx.Type)
	assert.Equal(t, before.Balance+50, earnTx.BalanceAfter)
	assert.Equal(t, models.TransactionRedeemed, redeemTx.Type)
	assert.Equal(t, before.Balance, redeemTx.BalanceAfter)
}

func TestRedeemInsufficientBalanceLeavesStateUntouched(t *testing.T) {
	store := newMockRewardStore()
	ledger := services.NewRewardLedger(store, nil)
	ctx := context.Background()

	_, err := ledger.RecordEarn(ctx, "user-1", 30, "", "")
	require.NoError(t, err)

	_, err = ledger.RecordRedeem(ctx, "user-1", 100, "", "")
	var insufficient *services.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)

	reward, err := ledger.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(30), reward.Balance)
	assert.Equal(t, int64(0), reward.LifetimeRedeemed)
	assert.Len(t, store.transactions, 1)
}

func TestRedeemUnknownUserIsInsufficient(t *testing.T) {
	ledger := services.NewRewardLedger(newMockRewardStore(), nil)

	_, err := ledger.RecordRedeem(context.Background(), "nobody", 10, "", "")
	var insufficient *services.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
}

func TestRecordEarnRejectsNonPositiveAmount(t *testing.T) {
	store := newMockRewardStore()
	ledger := services.NewRewardLedger(store, nil)

	for _, amount := range []int64{0, -5} {
		_, err := ledger.RecordEarn(context.Background(), "user-1", amount, "", "")
		var validation *services.ValidationError
		require.ErrorAs(t, err, &validation)
	}
	assert.Empty(t, store.accounts)
}

func TestEarnCompensatesWhenLedgerAppendFails(t *testing.T) {
	store := newMockRewardStore()
	ledger := services.NewRewardLedger(store, nil)
	ctx := context.Background()

	_, err := ledger.RecordEarn(ctx, "user-1", 100, "", "")
	require.NoError(t, err)

	store.failInsert = true
	_, err = ledger.RecordEarn(ctx, "user-1", 40, "", "")
	require.Error(t, err)

	// The credit was rolled back, so balance still matches the ledger.
	reward, err := ledger.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), reward.Balance)
	assert.Equal(t, int64(100), reward.LifetimeEarned)
	assert.Len(t, store.transactions, 1)
}

func TestBalanceForUnknownUserIsZeroValued(t *testing.T) {
	ledger := services.NewRewardLedger(newMockRewardStore(), nil)

	reward, err := ledger.Balance(context.Background(), "new-user")
	require.NoError(t, err)
	assert.Equal(t, "new-user", reward.UserID)
	assert.Zero(t, reward.Balance)
	assert.Zero(t, reward.LifetimeEarned)

	// Reads never mint an account id; repeated reads agree.
	assert.Empty(t, reward.RewardID)
	again, err := ledger.Balance(context.Background(), "new-user")
	require.NoError(t, err)
	assert.Equal(t, reward.RewardID, again.RewardID)
}

func TestTransactionsNewestFirst(t *testing.T) {
	store := newMockRewardStore()
	ledger := services.NewRewardLedger(store, nil)
	ctx := context.Background()

	_, err := ledger.RecordEarn(ctx, "user-1", 10, "", "first")
	require.NoError(t, err)
	_, err = ledger.RecordEarn(ctx, "user-1", 20, "", "second")
	require.NoError(t, err)

	txs, err := ledger.Transactions(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "second", txs[0].Description)
	assert.Equal(t, "first", txs[1].Description)
}
