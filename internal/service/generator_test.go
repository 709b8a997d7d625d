package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

func boolPtr(b bool) *bool { return &b }

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Create(ctx context.Context, rec *model.GenerationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type brokenSource struct{}

func (brokenSource) NextChar(string) (byte, error) { return 0, crypto.ErrEntropySource }
func (brokenSource) NextIndex(int) (int, error)    { return 0, crypto.ErrEntropySource }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.PoolSize != 94 {
		t.Errorf("expected pool size 94, got %d", resp.PoolSize)
	}
	if resp.Strength != "strong" {
		t.Errorf("expected strong password, got %q", resp.Strength)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    12,
		Lowercase: boolPtr(true),
		Uppercase: boolPtr(false),
		Numbers:   boolPtr(true),
		Special:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	if resp.Strength != "medium" {
		t.Errorf("expected medium strength, got %q", resp.Strength)
	}
	for _, c := range resp.Password {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
			t.Errorf("unexpected character %q in password with only lowercase+numbers", c)
		}
	}
}

func TestGenerate_LengthClamped(t *testing.T) {
	svc := NewGeneratorService(nil)

	tests := []struct {
		length int
		want   int
	}{
		{3, 8},
		{-1, 8},
		{200, 30},
		{30, 30},
	}
	for _, tt := range tests {
		resp, err := svc.Generate(context.Background(), model.GenerateRequest{Length: tt.length})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Length != tt.want {
			t.Errorf("length %d: expected %d, got %d", tt.length, tt.want, resp.Length)
		}
	}
}

func TestGenerate_NoCharacterSets(t *testing.T) {
	recorder := new(mockRecorder)
	svc := NewGeneratorService(recorder)

	_, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    16,
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Special:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrNoCategorySelected) {
		t.Fatalf("expected ErrNoCategorySelected, got %v", err)
	}
	recorder.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerate_EntropyFailure(t *testing.T) {
	recorder := new(mockRecorder)
	svc := NewGeneratorServiceWithSource(brokenSource{}, recorder)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	require.ErrorIs(t, err, crypto.ErrEntropySource)
	assert.Empty(t, resp.Password)
	recorder.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerate_RecordsMetadataOnly(t *testing.T) {
	recorder := new(mockRecorder)
	var captured *model.GenerationRecord
	recorder.On("Create", mock.Anything, mock.AnythingOfType("*model.GenerationRecord")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.GenerationRecord) }).
		Return(nil)

	svc := NewGeneratorService(recorder)
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:  20,
		Special: boolPtr(false),
	})
	require.NoError(t, err)
	recorder.AssertExpectations(t)

	require.NotNil(t, captured)
	assert.Len(t, captured.ID, 36)
	assert.Equal(t, 20, captured.Length)
	assert.Equal(t, "lowercase,uppercase,numeric", captured.Categories)
	assert.Equal(t, 62, captured.PoolSize)
	assert.Equal(t, resp.Strength, captured.Strength)
	assert.InDelta(t, resp.EntropyBits, captured.EntropyBits, 1e-9)
	assert.False(t, captured.CreatedAt.IsZero())
}

func TestGenerate_RecorderFailureIgnored(t *testing.T) {
	recorder := new(mockRecorder)
	recorder.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewGeneratorService(recorder)
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Password, 16)
	recorder.AssertExpectations(t)
}

func TestConfigFromRequest(t *testing.T) {
	cfg := ConfigFromRequest(model.GenerateRequest{Uppercase: boolPtr(false)})

	assert.Equal(t, crypto.DefaultLength, cfg.Length)
	assert.Equal(t, crypto.NewCategorySet(crypto.Lowercase, crypto.Numeric, crypto.Special), cfg.Categories)
}
