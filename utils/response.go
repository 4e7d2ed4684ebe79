package utils

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/masalamart/masalamart-api/services"
)

// Envelope is the uniform response wrapper. The status field mirrors the
// HTTP status code and data is always an object, {} when empty.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// WriteJSON writes the envelope with the given status, message and payload.
func WriteJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Status: status, Message: message, Data: data}); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

// WriteError maps a service error onto the envelope. Anything outside the
// known taxonomy becomes a 500 with a generic message, never a stack trace.
func WriteError(w http.ResponseWriter, err error) {
	var validation *services.ValidationError
	var notFound *services.NotFoundError
	var auth *services.AuthError
	var insufficient *services.InsufficientBalanceError

	switch {
	case errors.As(err, &validation):
		WriteJSON(w, http.StatusBadRequest, validation.Reason, nil)
	case errors.As(err, &insufficient):
		WriteJSON(w, http.StatusBadRequest, insufficient.Error(), nil)
	case errors.As(err, &notFound):
		WriteJSON(w, http.StatusNotFound, notFound.Error(), nil)
	case errors.As(err, &auth):
		WriteJSON(w, http.StatusUnauthorized, auth.Reason, nil)
	default:
		log.WithError(err).Error("internal server error")
		WriteJSON(w, http.StatusInternalServerError, "something went wrong", nil)
	}
}
