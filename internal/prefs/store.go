package prefs

import (
	"net/http"
	"time"
)

// Store is a durable key-value store holding preference entries.
type Store interface {
	Lookup(key string) (string, bool)
	Save(key, value string)
}

// Get returns the normalized value stored under key, or its default.
// Unknown keys yield an empty string.
func Get(s Store, key string) string {
	v, _ := s.Lookup(key)
	switch key {
	case ThemeKey:
		return string(ParseTheme(v))
	case LanguageKey:
		return string(ParseLanguage(v))
	}
	return ""
}

// Set normalizes value, persists it under key and returns the document
// effect of the resulting preference. Unknown keys are ignored.
func Set(s Store, key, value string) Effect {
	switch key {
	case ThemeKey:
		s.Save(ThemeKey, string(ParseTheme(value)))
	case LanguageKey:
		s.Save(LanguageKey, string(ParseLanguage(value)))
	}
	return Read(s).Effect()
}

// Read loads both entries from s.
func Read(s Store) Preference {
	return Preference{
		Theme:    ParseTheme(Get(s, ThemeKey)),
		Language: ParseLanguage(Get(s, LanguageKey)),
	}
}

// MapStore keeps entries in memory.
type MapStore map[string]string

// Lookup returns the entry stored under key.
func (m MapStore) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Save stores value under key.
func (m MapStore) Save(key, value string) { m[key] = value }

// CookieStore persists entries as cookies on the response. Values saved during
// a request take precedence over the cookies the request arrived with.
type CookieStore struct {
	w       http.ResponseWriter
	r       *http.Request
	pending map[string]string
	secure  bool
	maxAge  time.Duration
}

// NewCookieStore binds a store to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool, maxAge time.Duration) *CookieStore {
	if maxAge <= 0 {
		maxAge = 365 * 24 * time.Hour
	}
	return &CookieStore{w: w, r: r, pending: map[string]string{}, secure: secure, maxAge: maxAge}
}

// Lookup prefers values saved during this request over request cookies.
func (c *CookieStore) Lookup(key string) (string, bool) {
	if v, ok := c.pending[key]; ok {
		return v, true
	}
	ck, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return ck.Value, true
}

// Save records value for later lookups and sets the cookie on the response.
func (c *CookieStore) Save(key, value string) {
	c.pending[key] = value
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.maxAge / time.Second),
		Expires:  time.Now().Add(c.maxAge),
	})
}

// Overlay shows fixed values on top of a Store without persisting them.
// Saving a key drops its overlaid value.
type Overlay struct {
	Store
	values map[string]string
}

// NewOverlay wraps s with no overlaid values.
func NewOverlay(s Store) *Overlay {
	return &Overlay{Store: s, values: map[string]string{}}
}

// Show overlays value for key for the lifetime of the overlay.
func (o *Overlay) Show(key, value string) { o.values[key] = value }

// Lookup returns the overlaid value for key, or the underlying entry.
func (o *Overlay) Lookup(key string) (string, bool) {
	if v, ok := o.values[key]; ok {
		return v, true
	}
	return o.Store.Lookup(key)
}

// Save persists to the underlying store.
func (o *Overlay) Save(key, value string) {
	delete(o.values, key)
	o.Store.Save(key, value)
}
