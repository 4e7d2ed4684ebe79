package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/masalamart/masalamart-api/middleware"
	"github.com/masalamart/masalamart-api/services"
	"github.com/masalamart/masalamart-api/utils"
)

// WishlistController handles wishlist requests.
type WishlistController struct {
	Wishlists *services.WishlistManager
}

// NewWishlistController creates a WishlistController.
func NewWishlistController(wishlists *services.WishlistManager) *WishlistController {
	return &WishlistController{Wishlists: wishlists}
}

// Get handles GET /api/wishlist.
func (wc *WishlistController) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	wishlist, err := wc.Wishlists.Get(r.Context(), claims.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "wishlist fetched", wishlist)
}

// AddItem handles POST /api/wishlist. The body references exactly one of a
// product or a recipe.
func (wc *WishlistController) AddItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	var body struct {
		ProductID string `json:"productId"`
		RecipeID  string `json:"recipeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	wishlist, err := wc.Wishlists.AddItem(r.Context(), claims.UserID, body.ProductID, body.RecipeID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "item added to wishlist", wishlist)
}

// RemoveItem handles DELETE /api/wishlist/{itemId}.
func (wc *WishlistController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	wishlist, err := wc.Wishlists.RemoveItem(r.Context(), claims.UserID, itemID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "item removed from wishlist", wishlist)
}
