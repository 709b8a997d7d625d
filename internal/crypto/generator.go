package crypto

import (
	"errors"
	"strings"
)

const (
	MinLength     = 8
	MaxLength     = 30
	DefaultLength = 16
)

var (
	ErrNoCategorySelected = errors.New("at least one character set must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character sets")
)

// GenerationConfig describes a single password request.
type GenerationConfig struct {
	Length     int
	Categories CategorySet
}

// DefaultConfig returns 16 characters with every category enabled.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		Length:     DefaultLength,
		Categories: AllCategories(),
	}
}

// Password is a generated password together with its strength estimate.
type Password struct {
	Value    string
	PoolSize int
	Entropy  float64
	Strength Strength
}

// ClampLength applies the length bounds callers are expected to enforce.
// Zero means "not given" and yields DefaultLength.
func ClampLength(n int) int {
	switch {
	case n == 0:
		return DefaultLength
	case n < MinLength:
		return MinLength
	case n > MaxLength:
		return MaxLength
	}
	return n
}

// Validate checks cfg without touching any random source.
func Validate(cfg GenerationConfig) error {
	if cfg.Categories.Empty() {
		return ErrNoCategorySelected
	}
	if cfg.Length < cfg.Categories.Count() {
		return ErrLengthInsufficient
	}
	return nil
}

// BuildPool concatenates the charsets of the enabled categories and draws one
// required character from each of them, both in canonical category order.
func BuildPool(src CharacterSource, cats CategorySet) (string, []byte, error) {
	var pool strings.Builder
	required := make([]byte, 0, cats.Count())

	for _, c := range cats.List() {
		charset := c.Charset()
		pool.WriteString(charset)

		ch, err := src.NextChar(charset)
		if err != nil {
			return "", nil, err
		}
		required = append(required, ch)
	}

	return pool.String(), required, nil
}

// Shuffle permutes data in place with a Fisher-Yates shuffle.
func Shuffle(src CharacterSource, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.NextIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// Generator composes passwords from a CharacterSource.
type Generator struct {
	src CharacterSource
}

// NewGenerator creates a Generator drawing from src.
func NewGenerator(src CharacterSource) *Generator {
	return &Generator{src: src}
}

// Compose generates a password for cfg. It guarantees at least one character
// from each enabled category; the remainder is filled from the combined pool
// and the whole buffer is shuffled.
func (g *Generator) Compose(cfg GenerationConfig) (Password, error) {
	if err := Validate(cfg); err != nil {
		return Password{}, err
	}

	pool, required, err := BuildPool(g.src, cfg.Categories)
	if err != nil {
		return Password{}, err
	}

	buf := make([]byte, len(required), cfg.Length)
	copy(buf, required)

	for i := len(required); i < cfg.Length; i++ {
		ch, err := g.src.NextChar(pool)
		if err != nil {
			return Password{}, err
		}
		buf = append(buf, ch)
	}

	if err := Shuffle(g.src, buf); err != nil {
		return Password{}, err
	}

	entropy := Entropy(len(buf), len(pool))
	return Password{
		Value:    string(buf),
		PoolSize: len(pool),
		Entropy:  entropy,
		Strength: ClassifyEntropy(entropy),
	}, nil
}

// Generate composes a password using crypto/rand.
func Generate(cfg GenerationConfig) (Password, error) {
	return NewGenerator(NewDefaultSource()).Compose(cfg)
}
