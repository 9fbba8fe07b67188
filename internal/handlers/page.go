package handlers

import (
	"net/url"

	"t4wr00t.dev/portfolio-web/internal/i18n"
	"t4wr00t.dev/portfolio-web/internal/nav"
	"t4wr00t.dev/portfolio-web/internal/prefs"
	"t4wr00t.dev/portfolio-web/internal/seo"
)

// Remote images referenced by the hero section.
const (
	ProfileImageURL = "https://raw.githubusercontent.com/TAwR00T/image/main/photo_2025-03-14_12-40-50%20(2).jpg"
	HeroImageURL    = "https://images.unsplash.com/photo-1605379399642-870262d3d051?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=3840&q=100"
	flagURLPattern  = "https://flagcdn.com/w40/"
)

// Content is the locale lookup the page model is built from.
type Content interface {
	T(lang, key string) string
	Hero(lang string) i18n.Hero
	Supported() []string
}

// PageData is the view model shared by every route of the shell.
type PageData struct {
	Lang      string
	Dir       string
	Theme     string
	BodyClass string

	Path    string
	Current string // local URL used as toggle return target
	View    nav.View
	Nav     []nav.RenderedItem

	Toggles Toggles
	Search  SearchPanel
	Hero    HeroView
	SEO     seo.Meta
}

// Toggles drives the header controls.
type Toggles struct {
	FlagCode  string // ISO country code of the current language's flag
	FlagURL   string
	ThemeIcon string // font-awesome icon name
}

// SearchPanel describes the transient search panel.
type SearchPanel struct {
	Open       bool
	ToggleHref string
	Param      string
}

// HeroView is the hero section with its image sources.
type HeroView struct {
	i18n.Hero
	ProfileImage string
	Image        string
	CTAIcon      string
}

// BuildPageData assembles the shell for the current preference and request URL.
func BuildPageData(c Content, p prefs.Preference, u *url.URL, view nav.View, baseURL string) PageData {
	eff := p.Effect()
	lang := eff.Lang

	d := PageData{
		Lang:      lang,
		Dir:       eff.Dir,
		Theme:     string(p.Theme),
		BodyClass: eff.BodyClass,
		Path:      u.Path,
		Current:   nav.Current(u),
		View:      view,
		Nav:       nav.Build(u.Path),
		Toggles: Toggles{
			FlagCode:  "us",
			ThemeIcon: "moon",
		},
		Search: SearchPanel{
			Open:       nav.SearchOpen(u.Query()),
			ToggleHref: nav.ToggleSearch(u),
			Param:      nav.SearchParam,
		},
		Hero: HeroView{
			Hero:         c.Hero(lang),
			ProfileImage: ProfileImageURL,
			Image:        HeroImageURL,
			CTAIcon:      "arrow-right",
		},
	}
	if p.Language == prefs.Persian {
		d.Toggles.FlagCode = "ir"
		d.Hero.CTAIcon = "arrow-left"
	}
	d.Toggles.FlagURL = flagURLPattern + d.Toggles.FlagCode + ".png"
	if p.Theme == prefs.Light {
		d.Toggles.ThemeIcon = "sun"
	}

	brand := c.T(lang, "brand")
	d.SEO = seo.Meta{
		Title:       c.T(lang, "page."+string(view)) + " | " + brand,
		Description: c.T(lang, "meta.description"),
		JSONLD: []string{
			seo.JSON(seo.Person(brand, c.T(lang, "hero.badge"), baseURL, ProfileImageURL)),
			seo.JSON(seo.WebSite(brand, baseURL, lang)),
		},
	}
	if baseURL != "" {
		d.SEO.Canonical = baseURL + u.Path
	}
	for _, l := range c.Supported() {
		d.SEO.Alternates = append(d.SEO.Alternates, seo.Alternate{
			Href:     baseURL + u.Path + "?" + nav.LangParam + "=" + l,
			Hreflang: l,
		})
	}
	return d
}
