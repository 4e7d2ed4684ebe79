package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/masalamart/masalamart-api/models"
)

// WishlistStore persists wishlists, one document per user.
type WishlistStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Wishlist, error)
	Save(ctx context.Context, w *models.Wishlist) error
}

// WishlistManager owns wishlist rules: each entry references exactly one of
// a product or a recipe, duplicates are collapsed.
type WishlistManager struct {
	store WishlistStore
}

// NewWishlistManager creates a WishlistManager over the given store.
func NewWishlistManager(store WishlistStore) *WishlistManager {
	return &WishlistManager{store: store}
}

// Get returns the user's wishlist, or an empty one if none exists yet. The
// business id is minted on first persist, never on a read.
func (m *WishlistManager) Get(ctx context.Context, userID string) (*models.Wishlist, error) {
	w, err := m.store.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return m.emptyWishlist(userID), nil
		}
		return nil, errors.Wrap(err, "find wishlist")
	}
	return w, nil
}

// AddItem appends a reference to the wishlist, creating it lazily. Exactly
// one of productID and recipeID must be set. Adding an already-present
// reference is a no-op returning the current wishlist.
func (m *WishlistManager) AddItem(ctx context.Context, userID, productID, recipeID string) (*models.Wishlist, error) {
	if (productID == "") == (recipeID == "") {
		return nil, NewValidationError("exactly one of productId and recipeId is required")
	}

	w, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range w.Items {
		if existing.ProductID == productID && existing.RecipeID == recipeID {
			return w, nil
		}
	}

	w.Items = append(w.Items, models.WishlistItem{
		ItemID:    uuid.NewString(),
		ProductID: productID,
		RecipeID:  recipeID,
		AddedAt:   time.Now().UTC(),
	})
	return m.save(ctx, w)
}

// RemoveItem deletes one entry by its item id.
func (m *WishlistManager) RemoveItem(ctx context.Context, userID, itemID string) (*models.Wishlist, error) {
	if itemID == "" {
		return nil, NewValidationError("itemId is required")
	}

	w, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := w.Items[:0]
	removed := false
	for _, existing := range w.Items {
		if existing.ItemID == itemID {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return nil, NewNotFoundError("wishlist item")
	}
	w.Items = kept

	return m.save(ctx, w)
}

func (m *WishlistManager) save(ctx context.Context, w *models.Wishlist) (*models.Wishlist, error) {
	if w.WishlistID == "" {
		w.WishlistID = uuid.NewString()
	}
	w.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, w); err != nil {
		return nil, errors.Wrap(err, "save wishlist")
	}
	return w, nil
}

func (m *WishlistManager) emptyWishlist(userID string) *models.Wishlist {
	return &models.Wishlist{
		UserID: userID,
		Items:  []models.WishlistItem{},
	}
}
