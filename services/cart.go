package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masalamart/masalamart-api/models"
)

// CartStore persists carts, one document per user.
type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// CartManager owns cart line-item rules: merge on (productId, weightOption),
// quantity floor of 1, explicit removal only.
type CartManager struct {
	store CartStore
}

// NewCartManager creates a CartManager over the given store.
func NewCartManager(store CartStore) *CartManager {
	return &CartManager{store: store}
}

// Get returns the user's cart, or an empty snapshot if none exists yet. The
// snapshot carries no business id; one is minted when the first write
// persists the cart, so repeated reads observe a stable identity.
func (m *CartManager) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := m.store.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return m.emptyCart(userID), nil
		}
		return nil, errors.Wrap(err, "find cart")
	}
	return cart, nil
}

// AddItem adds a line to the user's cart, creating the cart lazily. An
// existing line for the same (productId, weightOption) has its quantity
// incremented instead of a second line being appended.
func (m *CartManager) AddItem(ctx context.Context, userID string, item models.CartItem) (*models.Cart, error) {
	if item.ProductID == "" {
		return nil, NewValidationError("productId is required")
	}
	if item.Quantity < 1 {
		return nil, NewValidationError("quantity must be at least 1")
	}
	if item.Price < 0 {
		return nil, NewValidationError("price must not be negative")
	}

	cart, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	item.AddedAt = time.Now().UTC()
	merged := false
	for i, existing := range cart.Items {
		if existing.ProductID == item.ProductID && existing.WeightOption == item.WeightOption {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return m.save(ctx, cart)
}

// UpdateItem sets the quantity of an existing line. Quantities below 1 are
// rejected; a line disappears only through RemoveItem.
func (m *CartManager) UpdateItem(ctx context.Context, userID, productID, weightOption string, quantity int) (*models.Cart, error) {
	if productID == "" {
		return nil, NewValidationError("productId is required")
	}
	if quantity < 1 {
		return nil, NewValidationError("quantity must be at least 1")
	}

	cart, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i, existing := range cart.Items {
		if existing.ProductID == productID && existing.WeightOption == weightOption {
			cart.Items[i].Quantity = quantity
			return m.save(ctx, cart)
		}
	}
	return nil, NewNotFoundError("cart item")
}

// RemoveItem deletes a line from the cart.
func (m *CartManager) RemoveItem(ctx context.Context, userID, productID, weightOption string) (*models.Cart, error) {
	if productID == "" {
		return nil, NewValidationError("productId is required")
	}

	cart, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	removed := false
	for _, existing := range cart.Items {
		if existing.ProductID == productID && existing.WeightOption == weightOption {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return nil, NewNotFoundError("cart item")
	}
	cart.Items = kept

	return m.save(ctx, cart)
}

func (m *CartManager) save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if cart.CartID == "" {
		cart.CartID = uuid.NewString()
	}
	cart.RecomputeSubtotal()
	cart.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}
	return cart, nil
}

func (m *CartManager) emptyCart(userID string) *models.Cart {
	return &models.Cart{
		UserID: userID,
		Items:  []models.CartItem{},
	}
}
