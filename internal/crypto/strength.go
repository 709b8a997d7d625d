package crypto

import "math"

// Strength is a coarse classification of password entropy.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Entropy thresholds in bits.
const (
	MediumEntropyBits = 50
	StrongEntropyBits = 75
)

// Entropy estimates password entropy in bits as length * log2(poolSize).
func Entropy(length, poolSize int) float64 {
	if length <= 0 || poolSize <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// ClassifyEntropy maps an entropy value to a Strength. Both thresholds are
// inclusive lower bounds of the stronger class.
func ClassifyEntropy(bits float64) Strength {
	switch {
	case bits < MediumEntropyBits:
		return StrengthWeak
	case bits < StrongEntropyBits:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

// ClassifyStrength classifies a password drawn from a pool of poolSize characters.
func ClassifyStrength(password string, poolSize int) Strength {
	return ClassifyEntropy(Entropy(len(password), poolSize))
}

// Percent returns the fill level of a strength meter for s.
func (s Strength) Percent() int {
	switch s {
	case StrengthWeak:
		return 33
	case StrengthMedium:
		return 66
	case StrengthStrong:
		return 100
	}
	return 0
}
