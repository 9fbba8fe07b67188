package main

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"

	mw "t4wr00t.dev/portfolio-web/internal/middleware"
	"t4wr00t.dev/portfolio-web/internal/nav"
	"t4wr00t.dev/portfolio-web/internal/prefs"
)

const maxToggleFormBytes = 4 << 10

// ToggleThemeHandler flips dark/light and persists the result.
func ToggleThemeHandler(w http.ResponseWriter, r *http.Request) {
	store := mw.PrefStore(r.Context())
	eff := prefs.Set(store, prefs.ThemeKey, string(prefs.Read(store).Theme.Toggle()))
	logger.Debug("theme toggled", zap.String("body_class", eff.BodyClass))
	finishToggle(w, r)
}

// ToggleLanguageHandler flips fa/en and persists the result.
func ToggleLanguageHandler(w http.ResponseWriter, r *http.Request) {
	store := mw.PrefStore(r.Context())
	eff := prefs.Set(store, prefs.LanguageKey, string(prefs.Read(store).Language.Toggle()))
	logger.Debug("language toggled", zap.String("lang", eff.Lang), zap.String("dir", eff.Dir))
	finishToggle(w, r)
}

// finishToggle sends the browser back to the page it came from. htmx clients
// get the same target through HX-Redirect.
func finishToggle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxToggleFormBytes)
	target := returnTarget(r.PostFormValue("return"))
	if mw.IsHTMX(r.Context()) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// returnTarget keeps only local paths and drops the lang display override so
// the freshly stored language is what the next page shows.
func returnTarget(raw string) string {
	u, err := url.Parse(nav.SafeReturn(raw))
	if err != nil {
		return "/"
	}
	return nav.Current(u)
}
