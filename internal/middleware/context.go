package middleware

import (
	"context"

	"t4wr00t.dev/portfolio-web/internal/prefs"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyIsHTMX    ctxKey = "is_htmx"
	ctxKeyPrefStore ctxKey = "pref_store"
)

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithPrefStore attaches the request's preference store.
func WithPrefStore(ctx context.Context, s prefs.Store) context.Context {
	return context.WithValue(ctx, ctxKeyPrefStore, s)
}

// PrefStore returns the request's preference store. Outside the Preferences
// middleware it returns an empty in-memory store, so lookups yield defaults.
func PrefStore(ctx context.Context) prefs.Store {
	if s, ok := ctx.Value(ctxKeyPrefStore).(prefs.Store); ok && s != nil {
		return s
	}
	return prefs.MapStore{}
}

// Prefs returns the current preference for the request.
func Prefs(ctx context.Context) prefs.Preference {
	return prefs.Read(PrefStore(ctx))
}
