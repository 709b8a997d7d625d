package model

import "time"

// GenerationRecord is the audit trail of one generation request.
// It never carries the generated password.
type GenerationRecord struct {
	ID          string
	Length      int
	Categories  string
	PoolSize    int
	EntropyBits float64
	Strength    string
	CreatedAt   time.Time
}

// StrengthStats aggregates generation records for one strength class.
type StrengthStats struct {
	Strength       string  `json:"strength"`
	Count          int64   `json:"count"`
	AvgEntropyBits float64 `json:"avg_entropy_bits"`
}

// StatsResponse represents the generation statistics response.
type StatsResponse struct {
	Total      int64           `json:"total"`
	ByStrength []StrengthStats `json:"by_strength"`
}
