package routes

import (
	"github.com/gorilla/mux"

	"github.com/masalamart/masalamart-api/controllers"
	"github.com/masalamart/masalamart-api/middleware"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Cart         *controllers.CartController
	Reward       *controllers.RewardController
	Notification *controllers.NotificationController
	Wishlist     *controllers.WishlistController
	Blog         *controllers.BlogController
	Reference    *controllers.ReferenceController
}

// RegisterRoutes sets up all the routes for the application under /api.
func RegisterRoutes(router *mux.Router, c Controllers) {
	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", c.Auth.Register).Methods("POST")
	api.HandleFunc("/auth/login", c.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/otp/request", c.Auth.RequestOTP).Methods("POST")
	api.HandleFunc("/auth/otp/verify", c.Auth.VerifyOTP).Methods("POST")
	api.HandleFunc("/auth/logout", c.Auth.Logout).Methods("POST", "GET")

	api.HandleFunc("/blogs/{id}", c.Blog.GetByID).Methods("GET")
	api.HandleFunc("/delivery/options", c.Reference.GetDeliveryOptions).Methods("GET")
	api.HandleFunc("/country", c.Reference.GetCountries).Methods("GET")
	api.HandleFunc("/dietary", c.Reference.GetDietaryTags).Methods("GET")

	// Cart routes are session-gated; a 401 carries a login redirect hint.
	cart := api.PathPrefix("/cart").Subrouter()
	cart.Use(middleware.RequireAuthRedirect("/login"))
	cart.HandleFunc("", c.Cart.GetCart).Methods("GET")
	cart.HandleFunc("", c.Cart.AddItem).Methods("POST")
	cart.HandleFunc("/items/{productId}", c.Cart.UpdateItem).Methods("PUT")
	cart.HandleFunc("/items/{productId}", c.Cart.RemoveItem).Methods("DELETE")

	// Wishlist routes
	wishlist := api.PathPrefix("/wishlist").Subrouter()
	wishlist.Use(middleware.RequireAuth)
	wishlist.HandleFunc("", c.Wishlist.Get).Methods("GET")
	wishlist.HandleFunc("", c.Wishlist.AddItem).Methods("POST")
	wishlist.HandleFunc("/{itemId}", c.Wishlist.RemoveItem).Methods("DELETE")

	// Reward routes
	rewards := api.PathPrefix("/rewards").Subrouter()
	rewards.Use(middleware.RequireAuth)
	rewards.HandleFunc("", c.Reward.GetBalance).Methods("GET")
	rewards.HandleFunc("/transactions", c.Reward.GetTransactions).Methods("GET")
	rewards.HandleFunc("/earn", c.Reward.Earn).Methods("POST")
	rewards.HandleFunc("/redeem", c.Reward.Redeem).Methods("POST")

	// Notification routes
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(middleware.RequireAuth)
	notifications.HandleFunc("", c.Notification.List).Methods("GET")
	notifications.HandleFunc("", c.Notification.Create).Methods("POST")
	notifications.HandleFunc("/unread-count", c.Notification.UnreadCount).Methods("GET")
	notifications.HandleFunc("/mark-read", c.Notification.MarkRead).Methods("POST")
	notifications.HandleFunc("/mark-all-read", c.Notification.MarkAllRead).Methods("POST")

	// Admin routes
	blogAdmin := api.PathPrefix("/blogs").Subrouter()
	blogAdmin.Use(middleware.RequireAuth)
	blogAdmin.Use(middleware.AdminOnly)
	blogAdmin.HandleFunc("", c.Blog.Create).Methods("POST")
	blogAdmin.HandleFunc("/{id}", c.Blog.Update).Methods("PUT")
	blogAdmin.HandleFunc("/{id}", c.Blog.Delete).Methods("DELETE")
}
