package middleware

import (
	"net/http"
	"time"

	"t4wr00t.dev/portfolio-web/internal/nav"
	"t4wr00t.dev/portfolio-web/internal/prefs"
)

// Preferences binds a cookie-backed preference store to each request.
// An exact `lang=fa|en` query parameter changes the displayed language of
// this response only; the stored preference is left alone.
func Preferences(secure bool, maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := prefs.NewOverlay(prefs.NewCookieStore(w, r, secure, maxAge))
			if l, ok := prefs.LookupLanguage(r.URL.Query().Get(nav.LangParam)); ok {
				store.Show(prefs.LanguageKey, string(l))
			}
			// surface Content-Language; output depends on the preference cookies
			w.Header().Set("Content-Language", prefs.Get(store, prefs.LanguageKey))
			w.Header().Add("Vary", "Cookie")
			next.ServeHTTP(w, r.WithContext(WithPrefStore(r.Context(), store)))
		})
	}
}
