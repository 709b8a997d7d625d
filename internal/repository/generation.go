package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/passgen/internal/model"
)

// GenerationRepository persists generation audit records.
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new GenerationRepository.
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Create inserts a generation record.
func (r *GenerationRepository) Create(ctx context.Context, rec *model.GenerationRecord) error {
	query := `INSERT INTO generations (id, length, categories, pool_size, entropy_bits, strength, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Length,
		rec.Categories,
		rec.PoolSize,
		rec.EntropyBits,
		rec.Strength,
		rec.CreatedAt,
	)
	return err
}

// SummarizeByStrength returns the record count and average entropy per strength class.
func (r *GenerationRepository) SummarizeByStrength(ctx context.Context) ([]model.StrengthStats, error) {
	query := `SELECT strength, COUNT(*), AVG(entropy_bits) FROM generations
		GROUP BY strength ORDER BY strength`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.StrengthStats
	for rows.Next() {
		var s model.StrengthStats
		if err := rows.Scan(&s.Strength, &s.Count, &s.AvgEntropyBits); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
