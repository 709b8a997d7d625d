package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vaultpass/passgen/internal/crypto"
)

const maxBodyBytes = 1 << 20 // 1MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// validationCode returns the message key for a recoverable validation error,
// or "" when err is not one.
func validationCode(err error) string {
	switch {
	case errors.Is(err, crypto.ErrNoCategorySelected):
		return "NoCategorySelected"
	case errors.Is(err, crypto.ErrLengthInsufficient):
		return "LengthInsufficient"
	}
	return ""
}

// HandleHealth handles GET /health requests.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
