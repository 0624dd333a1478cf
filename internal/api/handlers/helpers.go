package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"route-summary-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logf(r, "encode failed: err=%v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// logf prefixes a log line with the request id, method and path.
func logf(r *http.Request, format string, args ...any) {
	prefix := []any{obs.RequestID(r.Context()), r.Method, r.URL.Path}
	log.Printf("req_id=%s method=%s path=%s "+format, append(prefix, args...)...)
}
