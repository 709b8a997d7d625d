package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

// GenerationRecorder stores audit records of generation requests.
type GenerationRecorder interface {
	Create(ctx context.Context, rec *model.GenerationRecord) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen      *crypto.Generator
	recorder GenerationRecorder
}

// NewGeneratorService creates a new GeneratorService backed by crypto/rand.
// recorder may be nil, in which case nothing is recorded.
func NewGeneratorService(recorder GenerationRecorder) *GeneratorService {
	return NewGeneratorServiceWithSource(crypto.NewDefaultSource(), recorder)
}

// NewGeneratorServiceWithSource creates a GeneratorService drawing from src.
func NewGeneratorServiceWithSource(src crypto.CharacterSource, recorder GenerationRecorder) *GeneratorService {
	return &GeneratorService{
		gen:      crypto.NewGenerator(src),
		recorder: recorder,
	}
}

// Generate produces a password based on the given request.
// Missing category flags default to enabled and the length is clamped to the supported range.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := ConfigFromRequest(req)

	pw, err := s.gen.Compose(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	s.record(ctx, cfg, pw)

	return model.GenerateResponse{
		Password:    pw.Value,
		Length:      len(pw.Value),
		Strength:    string(pw.Strength),
		EntropyBits: pw.Entropy,
		PoolSize:    pw.PoolSize,
	}, nil
}

// ConfigFromRequest converts a request into a generation config.
func ConfigFromRequest(req model.GenerateRequest) crypto.GenerationConfig {
	var cats crypto.CategorySet
	if boolOrDefault(req.Lowercase, true) {
		cats = cats.With(crypto.Lowercase)
	}
	if boolOrDefault(req.Uppercase, true) {
		cats = cats.With(crypto.Uppercase)
	}
	if boolOrDefault(req.Numbers, true) {
		cats = cats.With(crypto.Numeric)
	}
	if boolOrDefault(req.Special, true) {
		cats = cats.With(crypto.Special)
	}

	return crypto.GenerationConfig{
		Length:     crypto.ClampLength(req.Length),
		Categories: cats,
	}
}

// record is best effort: an audit failure never fails the generation.
func (s *GeneratorService) record(ctx context.Context, cfg crypto.GenerationConfig, pw crypto.Password) {
	if s.recorder == nil {
		return
	}

	rec := &model.GenerationRecord{
		ID:          uuid.NewString(),
		Length:      len(pw.Value),
		Categories:  cfg.Categories.String(),
		PoolSize:    pw.PoolSize,
		EntropyBits: pw.Entropy,
		Strength:    string(pw.Strength),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.recorder.Create(ctx, rec); err != nil {
		slog.Warn("failed to record generation", "id", rec.ID, "error", err)
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
