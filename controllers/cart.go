package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/masalamart/masalamart-api/middleware"
	"github.com/masalamart/masalamart-api/models"
	"github.com/masalamart/masalamart-api/services"
	"github.com/masalamart/masalamart-api/utils"
)

// CartController handles cart-related requests.
type CartController struct {
	Carts *services.CartManager
}

// NewCartController creates a CartController.
func NewCartController(carts *services.CartManager) *CartController {
	return &CartController{Carts: carts}
}

// GetCart handles GET /api/cart.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	cart, err := cc.Carts.Get(r.Context(), claims.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "cart fetched", cart)
}

// AddItem handles POST /api/cart.
func (cc *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	cart, err := cc.Carts.AddItem(r.Context(), claims.UserID, item)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "item added to cart", cart)
}

// UpdateItem handles PUT /api/cart/items/{productId}.
func (cc *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	var body struct {
		Quantity     int    `json:"quantity"`
		WeightOption string `json:"weightOption"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	productID := mux.Vars(r)["productId"]
	cart, err := cc.Carts.UpdateItem(r.Context(), claims.UserID, productID, body.WeightOption, body.Quantity)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "cart item updated", cart)
}

// RemoveItem handles DELETE /api/cart/items/{productId}. The weight option
// is passed as a query parameter since lines are keyed on the pair.
func (cc *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	productID := mux.Vars(r)["productId"]
	weightOption := r.URL.Query().Get("weightOption")

	cart, err := cc.Carts.RemoveItem(r.Context(), claims.UserID, productID, weightOption)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "item removed from cart", cart)
}
