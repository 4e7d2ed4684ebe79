package middleware

import (
	"net/http"
	"strings"
)

const (
	corsMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsHeaders = "Content-Type, Authorization"
	corsMaxAge  = "86400"
)

// CORS applies the cross-origin policy to every /api route. With no
// allow-list configured the request origin is reflected with credentials.
// With an allow-list, an exact match echoes the origin with credentials, a
// "*" entry reflects the origin without credentials, and a miss echoes the
// first configured origin. Preflight requests get a 204 with the same
// header set.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				allow, credentials := resolveOrigin(origin, origins)
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allow)
				h.Add("Vary", "Origin")
				if credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Allow-Headers", corsHeaders)
				h.Set("Access-Control-Max-Age", corsMaxAge)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolveOrigin picks the origin to echo and whether credentials are
// allowed. Credentials require a concrete, non-wildcard origin.
func resolveOrigin(origin string, allowed []string) (string, bool) {
	if len(allowed) == 0 {
		return origin, true
	}

	wildcard := false
	for _, entry := range allowed {
		if entry == origin {
			return origin, true
		}
		if entry == "*" {
			wildcard = true
		}
	}
	if wildcard {
		return origin, false
	}
	return allowed[0], true
}
