package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masalamart/masalamart-api/utils"
)

func TestLogoutClearsSessionCookie(t *testing.T) {
	ac := NewAuthController(nil)

	rec := httptest.NewRecorder()
	ac.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, utils.AuthCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Less(t, cookie.MaxAge, 0)

	var env utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Equal(t, "logged out", env.Message)
}

func TestLogoutViaGet(t *testing.T) {
	ac := NewAuthController(nil)

	rec := httptest.NewRecorder()
	ac.Logout(rec, httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
