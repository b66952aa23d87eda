package middleware

import (
	"net/http"
	"strings"
)

// NewCachePolicyHandler returns a middleware enforcing the asset-cache
// policy: GET responses outside the API are cacheable shell assets served
// stale-while-revalidate; anything non-GET or under the API prefix must
// never be served from a cache, because those calls mutate state.
func NewCachePolicyHandler(apiPrefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, apiPrefix) {
				w.Header().Set("Cache-Control", "no-store")
			} else {
				w.Header().Set("Cache-Control", "public, max-age=60, stale-while-revalidate=86400")
			}
			next.ServeHTTP(w, r)
		})
	}
}
