package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/model"
)

type mockStatsReader struct {
	mock.Mock
}

func (m *mockStatsReader) SummarizeByStrength(ctx context.Context) ([]model.StrengthStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StrengthStats), args.Error(1)
}

func TestSummary_NoStore(t *testing.T) {
	svc := NewStatsService(nil)

	_, err := svc.Summary(context.Background())
	if err != ErrStatsUnavailable {
		t.Errorf("expected ErrStatsUnavailable, got %v", err)
	}
}

func TestSummary_Totals(t *testing.T) {
	repo := new(mockStatsReader)
	repo.On("SummarizeByStrength", mock.Anything).Return([]model.StrengthStats{
		{Strength: "medium", Count: 3, AvgEntropyBits: 60.5},
		{Strength: "strong", Count: 7, AvgEntropyBits: 104.9},
	}, nil)

	resp, err := NewStatsService(repo).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.Total)
	assert.Len(t, resp.ByStrength, 2)
	repo.AssertExpectations(t)
}

func TestSummary_Empty(t *testing.T) {
	repo := new(mockStatsReader)
	repo.On("SummarizeByStrength", mock.Anything).Return(nil, nil)

	resp, err := NewStatsService(repo).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
	assert.NotNil(t, resp.ByStrength)
}

func TestSummary_RepositoryError(t *testing.T) {
	repo := new(mockStatsReader)
	repo.On("SummarizeByStrength", mock.Anything).Return(nil, errors.New("query failed"))

	_, err := NewStatsService(repo).Summary(context.Background())
	assert.EqualError(t, err, "query failed")
}
