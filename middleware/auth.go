package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/masalamart/masalamart-api/utils"
)

// Key type for context
type contextKey string

// UserContextKey holds the authenticated caller's claims.
const UserContextKey = contextKey("user")

// ClaimsFromContext returns the caller's claims, if authenticated.
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// RequireAuth verifies the caller's credential and attaches the decoded
// claims to the request context. The credential is taken from the bearer
// header first, then from the session cookie.
func RequireAuth(next http.Handler) http.Handler {
	return requireAuth(next, "")
}

// RequireAuthRedirect behaves like RequireAuth but includes a redirect hint
// in the 401 payload, so session-gated pages can send the client to login
// instead of surfacing a generic error.
func RequireAuthRedirect(redirect string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return requireAuth(next, redirect)
	}
}

func requireAuth(next http.Handler, redirect string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, ok := extractCredential(r)
		if !ok {
			unauthorized(w, "credential missing", redirect)
			return
		}

		claims, err := utils.ParseJWT(tokenStr)
		if err != nil {
			unauthorized(w, "credential invalid or expired", redirect)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly rejects callers without the admin role. Must run after
// RequireAuth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != "admin" {
			utils.WriteJSON(w, http.StatusForbidden, "admins only", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractCredential(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], true
		}
		return "", false
	}

	cookie, err := r.Cookie(utils.AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func unauthorized(w http.ResponseWriter, message, redirect string) {
	var data interface{}
	if redirect != "" {
		data = map[string]string{"redirect": redirect}
	}
	utils.WriteJSON(w, http.StatusUnauthorized, message, data)
}
