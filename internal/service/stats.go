package service

import (
	"context"
	"errors"

	"github.com/vaultpass/passgen/internal/model"
)

var ErrStatsUnavailable = errors.New("statistics are not available")

// StatsReader reads aggregated generation records.
type StatsReader interface {
	SummarizeByStrength(ctx context.Context) ([]model.StrengthStats, error)
}

// StatsService reports aggregate generation statistics.
type StatsService struct {
	repo StatsReader
}

// NewStatsService creates a new StatsService. repo may be nil when no audit store is configured.
func NewStatsService(repo StatsReader) *StatsService {
	return &StatsService{repo: repo}
}

// Summary returns the total number of recorded generations and a per-strength breakdown.
func (s *StatsService) Summary(ctx context.Context) (model.StatsResponse, error) {
	if s.repo == nil {
		return model.StatsResponse{}, ErrStatsUnavailable
	}

	byStrength, err := s.repo.SummarizeByStrength(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	resp := model.StatsResponse{ByStrength: byStrength}
	if resp.ByStrength == nil {
		resp.ByStrength = []model.StrengthStats{}
	}
	for _, st := range byStrength {
		resp.Total += st.Count
	}

	return resp, nil
}
