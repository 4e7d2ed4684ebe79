package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masalamart/masalamart-api/services"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestWriteJSONEnvelopeShape(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, "done", map[string]int{"count": 3})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Equal(t, "done", env.Message)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, data["count"])
}

func TestWriteJSONNilDataBecomesEmptyObject(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, "done", nil)

	env := decode(t, rec)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestWriteErrorMapsTaxonomy(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", services.NewValidationError("quantity must be at least 1"), http.StatusBadRequest},
		{"insufficient balance", &services.InsufficientBalanceError{Requested: 50}, http.StatusBadRequest},
		{"not found", services.NewNotFoundError("notification"), http.StatusNotFound},
		{"auth", services.NewAuthError("credential invalid or expired"), http.StatusUnauthorized},
		{"unknown", errors.New("mongo exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tc.err)

			require.Equal(t, tc.status, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tc.status, env.Status)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestWriteErrorUnwrapsWrappedServiceErrors(t *testing.T) {
	wrapped := errors.Wrap(services.NewNotFoundError("blog"), "resolve blog")

	rec := httptest.NewRecorder()
	WriteError(rec, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("connection refused at 10.0.0.3:27017"))

	env := decode(t, rec)
	assert.Equal(t, "something went wrong", env.Message)
	assert.NotContains(t, env.Message, "10.0.0.3")
}
