package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/masalamart/masalamart-api/middleware"
	"github.com/masalamart/masalamart-api/services"
	"github.com/masalamart/masalamart-api/utils"
)

const notificationPageSize = 50

// NotificationController handles notification requests.
type NotificationController struct {
	Center *services.NotificationCenter
}

// NewNotificationController creates a NotificationController.
func NewNotificationController(center *services.NotificationCenter) *NotificationController {
	return &NotificationController{Center: center}
}

// List handles GET /api/notifications.
func (nc *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	list, err := nc.Center.List(r.Context(), claims.UserID, notificationPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "notifications fetched", map[string]interface{}{
		"notifications": list,
	})
}

// UnreadCount handles GET /api/notifications/unread-count.
func (nc *NotificationController) UnreadCount(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	count, err := nc.Center.CountUnread(r.Context(), claims.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "unread count fetched", map[string]int64{
		"unreadCount": count,
	})
}

// Create handles POST /api/notifications.
func (nc *NotificationController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	var body struct {
		Type    string          `json:"type"`
		Title   string          `json:"title"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	n, err := nc.Center.Create(r.Context(), claims.UserID, body.Type, body.Title, body.Message, body.Data)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, "notification created", n)
}

// MarkRead handles POST /api/notifications/mark-read.
func (nc *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NotificationID string `json:"notificationId"`
		IsRead         *bool  `json:"isRead"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if body.NotificationID == "" {
		utils.WriteJSON(w, http.StatusBadRequest, "notificationId is required", nil)
		return
	}

	isRead := true
	if body.IsRead != nil {
		isRead = *body.IsRead
	}

	n, err := nc.Center.MarkRead(r.Context(), body.NotificationID, isRead)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "notification updated", n)
}

// MarkAllRead handles POST /api/notifications/mark-all-read. Zero unread
// notifications is a successful no-op with updatedCount 0.
func (nc *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if body.UserID == "" {
		utils.WriteJSON(w, http.StatusBadRequest, "userId is required", nil)
		return
	}

	count, err := nc.Center.MarkAllRead(r.Context(), body.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "notifications marked read", map[string]int64{
		"updatedCount": count,
	})
}
