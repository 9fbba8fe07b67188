package middleware

import (
	"encoding/json"
	"net/http"

	chiMid "github.com/go-chi/chi/v5/middleware"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteError reports a failed page or toggle. htmx callers get JSON and keep
// the current page in place; browsers get plain text.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	reqID := chiMid.GetReqID(r.Context())
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("HX-Reswap", "none")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(errorBody{Error: msg, RequestID: reqID})
		return
	}
	if reqID != "" {
		msg += " (request " + reqID + ")"
	}
	http.Error(w, msg, code)
}
