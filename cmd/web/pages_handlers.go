package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	handlersPkg "t4wr00t.dev/portfolio-web/internal/handlers"
	mw "t4wr00t.dev/portfolio-web/internal/middleware"
	"t4wr00t.dev/portfolio-web/internal/nav"
)

// registerPages mounts one placeholder route per navigation item.
func registerPages(r chi.Router) {
	for _, it := range nav.Main {
		r.Get(it.Path, PageHandler)
	}
}

// PageHandler renders the shell with the view the route table maps the path to.
func PageHandler(w http.ResponseWriter, r *http.Request) {
	view, ok := nav.Lookup(r.URL.Path)
	if !ok {
		NotFoundHandler(w, r)
		return
	}
	renderPage(w, r, view, http.StatusOK)
}

// NotFoundHandler renders the shell with the not-found placeholder.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, nav.ViewNotFound, http.StatusNotFound)
}

func renderPage(w http.ResponseWriter, r *http.Request, view nav.View, status int) {
	vm := handlersPkg.BuildPageData(i18nBundle, mw.Prefs(r.Context()), r.URL, view, siteBaseURL)
	render(w, r, status, vm)
}
