package prefs

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeOnlyExactLight(t *testing.T) {
	cases := map[string]Theme{
		"light":  Light,
		"dark":   Dark,
		"":       Dark,
		"Light":  Dark,
		"light ": Dark,
		"blue":   Dark,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseTheme(in), "stored %q", in)
	}
}

func TestParseLanguageDefaultsToPersian(t *testing.T) {
	cases := map[string]Language{
		"en":    English,
		"fa":    Persian,
		"":      Persian,
		"EN":    Persian,
		"ja":    Persian,
		"en-US": Persian,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLanguage(in), "stored %q", in)
	}
}

func TestFreshStoreUsesDefaults(t *testing.T) {
	s := MapStore{}
	p := Read(s)
	assert.Equal(t, Default, p)
	assert.Equal(t, "dark", Get(s, ThemeKey))
	assert.Equal(t, "fa", Get(s, LanguageKey))
	assert.Equal(t, Effect{Lang: "fa", Dir: "rtl"}, p.Effect())
}

func TestToggleThemePersists(t *testing.T) {
	s := MapStore{}
	eff := Set(s, ThemeKey, string(Read(s).Theme.Toggle()))
	assert.Equal(t, "light", s[ThemeKey])
	assert.Equal(t, LightThemeClass, eff.BodyClass)

	eff = Set(s, ThemeKey, string(Read(s).Theme.Toggle()))
	assert.Equal(t, "dark", s[ThemeKey])
	assert.Empty(t, eff.BodyClass)
}

func TestToggleLanguageUpdatesDirection(t *testing.T) {
	s := MapStore{}
	eff := Set(s, LanguageKey, string(Read(s).Language.Toggle()))
	assert.Equal(t, Effect{Lang: "en", Dir: "ltr"}, eff)
	assert.Equal(t, "en", s[LanguageKey])

	eff = Set(s, LanguageKey, string(Read(s).Language.Toggle()))
	assert.Equal(t, Effect{Lang: "fa", Dir: "rtl"}, eff)
}

func TestSetNormalizesAndIgnoresUnknownKeys(t *testing.T) {
	s := MapStore{}
	Set(s, LanguageKey, "de")
	assert.Equal(t, "fa", s[LanguageKey])
	Set(s, "font", "large")
	_, ok := s["font"]
	assert.False(t, ok)
	assert.Empty(t, Get(s, "font"))
}

func TestCookieStoreReadsRequestAndWritesResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ThemeKey, Value: "light"})
	req.AddCookie(&http.Cookie{Name: LanguageKey, Value: "en"})
	rec := httptest.NewRecorder()

	s := NewCookieStore(rec, req, true, time.Hour)
	require.Equal(t, Preference{Theme: Light, Language: English}, Read(s))

	eff := Set(s, LanguageKey, "fa")
	assert.Equal(t, "rtl", eff.Dir)
	assert.Equal(t, Persian, Read(s).Language)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, LanguageKey, c.Name)
	assert.Equal(t, "fa", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.Secure)
	assert.Equal(t, 3600, c.MaxAge)
}

func TestLookupLanguageExactCodesOnly(t *testing.T) {
	l, ok := LookupLanguage("en")
	assert.True(t, ok)
	assert.Equal(t, English, l)
	l, ok = LookupLanguage("fa")
	assert.True(t, ok)
	assert.Equal(t, Persian, l)
	for _, v := range []string{"", "xx", "EN", "en-US"} {
		_, ok := LookupLanguage(v)
		assert.False(t, ok, v)
	}
}

func TestOverlayShowsWithoutPersisting(t *testing.T) {
	base := MapStore{LanguageKey: "en"}
	o := NewOverlay(base)
	o.Show(LanguageKey, "fa")

	assert.Equal(t, Persian, Read(o).Language)
	assert.Equal(t, "en", base[LanguageKey])

	eff := Set(o, LanguageKey, "en")
	assert.Equal(t, "ltr", eff.Dir)
	assert.Equal(t, "en", base[LanguageKey])
	assert.Equal(t, English, Read(o).Language)
}
