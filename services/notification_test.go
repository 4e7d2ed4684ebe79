package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masalamart/masalamart-api/models"
	"github.com/masalamart/masalamart-api/services"
)

type mockNotificationStore struct {
	byID  map[string]*models.Notification
	order []string
}

func newMockNotificationStore() *mockNotificationStore {
	return &mockNotificationStore{byID: make(map[string]*models.Notification)}
}

func (m *mockNotificationStore) Insert(_ context.Context, n *models.Notification) error {
	copied := *n
	m.byID[n.NotificationID] = &copied
	m.order = append(m.order, n.NotificationID)
	return nil
}

func (m *mockNotificationStore) SetRead(_ context.Context, id string, isRead bool) (*models.Notification, error) {
	n, ok := m.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	n.IsRead = isRead
	copied := *n
	return &copied, nil
}

func (m *mockNotificationStore) MarkAllRead(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range m.byID {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationStore) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range m.byID {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationStore) ListByUser(_ context.Context, userID string, limit int64) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(m.order) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		n := m.byID[m.order[i]]
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func TestCreateAppendsUnreadNotification(t *testing.T) {
	center := services.NewNotificationCenter(newMockNotificationStore())

	data, _ := json.Marshal(map[string]string{"orderId": "order-1"})
	n, err := center.Create(context.Background(), "user-1", models.NotificationOrder, "Order placed", "Your order is on its way", data)
	require.NoError(t, err)

	assert.NotEmpty(t, n.NotificationID)
	assert.False(t, n.IsRead)
	assert.JSONEq(t, `{"orderId":"order-1"}`, string(n.Data))
}

func TestCreateRejectsUnknownType(t *testing.T) {
	center := services.NewNotificationCenter(newMockNotificationStore())

	_, err := center.Create(context.Background(), "user-1", "carrier-pigeon", "t", "m", nil)
	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateAllowsDuplicates(t *testing.T) {
	store := newMockNotificationStore()
	center := services.NewNotificationCenter(store)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := center.Create(ctx, "user-1", models.NotificationOffer, "Sale", "20% off garam masala", nil)
		require.NoError(t, err)
	}
	assert.Len(t, store.byID, 2)
}

func TestMarkReadUnknownIDIsNotFound(t *testing.T) {
	store := newMockNotificationStore()
	center := services.NewNotificationCenter(store)

	_, err := center.MarkRead(context.Background(), "missing-id", true)
	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, store.byID)
}

func TestMarkReadFlipsFlagBothWays(t *testing.T) {
	center := services.NewNotificationCenter(newMockNotificationStore())
	ctx := context.Background()

	created, err := center.Create(ctx, "user-1", models.NotificationGeneral, "Hello", "Welcome", nil)
	require.NoError(t, err)

	read, err := center.MarkRead(ctx, created.NotificationID, true)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := center.MarkRead(ctx, created.NotificationID, false)
	require.NoError(t, err)
	assert.False(t, unread.IsRead)
}

func TestMarkAllReadIsIdempotent(t *testing.T) {
	center := services.NewNotificationCenter(newMockNotificationStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := center.Create(ctx, "user-1", models.NotificationGeneral, "Hi", "msg", nil)
		require.NoError(t, err)
	}

	first, err := center.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), first)

	second, err := center.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, second)

	count, err := center.CountUnread(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkAllReadOnEmptyInboxIsNoop(t *testing.T) {
	center := services.NewNotificationCenter(newMockNotificationStore())

	count, err := center.MarkAllRead(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCountUnreadScopedToUser(t *testing.T) {
	center := services.NewNotificationCenter(newMockNotificationStore())
	ctx := context.Background()

	_, err := center.Create(ctx, "user-1", models.NotificationGeneral, "A", "m", nil)
	require.NoError(t, err)
	_, err = center.Create(ctx, "user-2", models.NotificationGeneral, "B", "m", nil)
	require.NoError(t, err)

	count, err := center.CountUnread(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
