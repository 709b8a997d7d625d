package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	ErrEntropySource  = errors.New("secure random source failed")
	ErrInvalidCharset = errors.New("charset must contain between 1 and 256 characters")
	ErrInvalidBound   = errors.New("index bound must be positive")
)

// CharacterSource supplies unbiased random selections.
type CharacterSource interface {
	NextChar(charset string) (byte, error)
	NextIndex(n int) (int, error)
}

// Source draws characters and indices from a cryptographically secure byte stream.
// It holds no state between draws and is safe for concurrent use when the
// underlying reader is.
type Source struct {
	r io.Reader
}

// NewSource returns a Source reading from r. r must be a cryptographically
// secure generator outside of tests.
func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

// NewDefaultSource returns a Source backed by crypto/rand.
func NewDefaultSource() *Source {
	return NewSource(rand.Reader)
}

// NextChar returns a uniformly chosen character of charset. Bytes at or above
// the largest multiple of len(charset) that fits in 256 are discarded, so every
// character is selected with probability exactly 1/len(charset).
func (s *Source) NextChar(charset string) (byte, error) {
	n := len(charset)
	if n == 0 || n > 256 {
		return 0, ErrInvalidCharset
	}
	maxValid := (256 / n) * n

	var b [1]byte
	for {
		if err := s.read(b[:]); err != nil {
			return 0, err
		}
		if int(b[0]) < maxValid {
			return charset[int(b[0])%n], nil
		}
	}
}

// NextIndex returns a uniformly chosen integer in [0, n). The 32-bit draw is
// rejection sampled like NextChar.
func (s *Source) NextIndex(n int) (int, error) {
	if n <= 0 || uint64(n) > 1<<32 {
		return 0, ErrInvalidBound
	}
	bound := uint64(n)
	limit := (1 << 32) - (1<<32)%bound

	var b [4]byte
	for {
		if err := s.read(b[:]); err != nil {
			return 0, err
		}
		v := uint64(binary.LittleEndian.Uint32(b[:]))
		if v < limit {
			return int(v % bound), nil
		}
	}
}

func (s *Source) read(p []byte) error {
	if _, err := io.ReadFull(s.r, p); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropySource, err)
	}
	return nil
}
