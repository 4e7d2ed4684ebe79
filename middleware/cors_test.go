package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doCORSRequest(t *testing.T, allowed []string, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	handler := CORS(allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/country", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORSReflectsOriginWithoutAllowList(t *testing.T) {
	rec := doCORSRequest(t, nil, http.MethodGet, "https://example.com")

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSEchoesExactAllowListMatch(t *testing.T) {
	allowed := []string{"https://shop.masalamart.com", "https://admin.masalamart.com"}
	rec := doCORSRequest(t, allowed, http.MethodGet, "https://admin.masalamart.com")

	assert.Equal(t, "https://admin.masalamart.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMissEchoesFirstAllowedOrigin(t *testing.T) {
	allowed := []string{"https://shop.masalamart.com", "https://admin.masalamart.com"}
	rec := doCORSRequest(t, allowed, http.MethodGet, "https://evil.example.com")

	assert.Equal(t, "https://shop.masalamart.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcardEntryReflectsOriginWithoutCredentials(t *testing.T) {
	rec := doCORSRequest(t, []string{"*"}, http.MethodGet, "https://anywhere.example.com")

	assert.Equal(t, "https://anywhere.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSExactMatchBeatsWildcard(t *testing.T) {
	allowed := []string{"*", "https://shop.masalamart.com"}
	rec := doCORSRequest(t, allowed, http.MethodGet, "https://shop.masalamart.com")

	assert.Equal(t, "https://shop.masalamart.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflightReturns204(t *testing.T) {
	rec := doCORSRequest(t, nil, http.MethodOptions, "https://example.com")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSIgnoresRequestsWithoutOrigin(t *testing.T) {
	rec := doCORSRequest(t, nil, http.MethodGet, "")

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSTrimsConfiguredOrigins(t *testing.T) {
	allowed := []string{" https://shop.masalamart.com ", ""}
	rec := doCORSRequest(t, allowed, http.MethodGet, "https://shop.masalamart.com")

	assert.Equal(t, "https://shop.masalamart.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
