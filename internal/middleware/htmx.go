package middleware

import (
	"net/http"
)

// HTMX marks requests coming from htmx so handlers can answer with htmx
// response headers instead of redirects. Caches must key on HX-Request.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), r.Header.Get("HX-Request") == "true")))
	})
}
