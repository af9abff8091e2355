package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vportella/agora/pkg/validator"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeError(w, http.StatusBadRequest, errs.Message())
}

// pagination parses ?page and ?limit. Absent values fall back to defaults;
// present but non-positive or non-numeric values are a client error, never a
// silent zero.
func pagination(r *http.Request) (page, limit int, ok bool) {
	page, ok = positiveIntQuery(r, "page", defaultPage)
	if !ok {
		return 0, 0, false
	}
	limit, ok = positiveIntQuery(r, "limit", defaultLimit)
	if !ok {
		return 0, 0, false
	}
	return page, limit, true
}

func positiveIntQuery(r *http.Request, key string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
