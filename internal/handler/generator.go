package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen/internal/model"
)

// Generator produces passwords for requests.
type Generator interface {
	Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error)
}

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service Generator
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc Generator) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body uses the defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if code := validationCode(err); code != "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": err.Error(),
				"code":  code,
			})
			return
		}
		slog.Error("password generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}
