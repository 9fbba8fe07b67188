package nav

import (
	"net/url"
	"strings"
)

// View identifies the placeholder rendered in the route outlet.
type View string

const (
	ViewHome     View = "home"
	ViewArticles View = "articles"
	ViewBlog     View = "blog"
	ViewAbout    View = "about"
	ViewContact  View = "contact"
	ViewNotFound View = "notfound"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/blog"
	LabelKey string // i18n key, e.g. "nav.blog"
	View     View
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition and doubles as the route table.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home", View: ViewHome},
	{Path: "/articles", LabelKey: "nav.articles", View: ViewArticles},
	{Path: "/blog", LabelKey: "nav.blog", View: ViewBlog},
	{Path: "/about", LabelKey: "nav.about", View: ViewAbout},
	{Path: "/contact", LabelKey: "nav.contact", View: ViewContact},
}

// Lookup maps a request path to its view.
func Lookup(p string) (View, bool) {
	if p == "" {
		p = "/"
	}
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	for _, it := range Main {
		if it.Path == p {
			return it.View, true
		}
	}
	return ViewNotFound, false
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// SearchParam is the query parameter carrying search panel visibility.
const SearchParam = "search"

// LangParam selects the displayed language of a single page view. Links
// built here never carry it, so following them shows the stored language.
const LangParam = "lang"

// SearchOpen reports whether the search panel is shown for this query.
func SearchOpen(q url.Values) bool {
	return q.Get(SearchParam) == "1"
}

// ToggleSearch returns the local URL for u with search panel visibility flipped.
// Other query parameters except LangParam are kept.
func ToggleSearch(u *url.URL) string {
	q := u.Query()
	if SearchOpen(q) {
		q.Del(SearchParam)
	} else {
		q.Set(SearchParam, "1")
	}
	return localURL(u.Path, q)
}

// Current returns the local URL of u (path and query only) without LangParam.
func Current(u *url.URL) string {
	return localURL(u.Path, u.Query())
}

// SafeReturn accepts only local absolute paths, falling back to "/".
func SafeReturn(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return raw
}

func localURL(p string, q url.Values) string {
	if p == "" {
		p = "/"
	}
	q.Del(LangParam)
	if enc := q.Encode(); enc != "" {
		return p + "?" + enc
	}
	return p
}
