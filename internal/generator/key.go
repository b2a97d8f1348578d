package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/samber/lo"
)

const (
	// Alphabet excludes 0, O, 1, I and L to avoid confusion
	Alphabet  = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	KeyLength = 17

	Crypto = "crypto"
	Regex  = "regex"
	Math   = "math"
)

var (
	ErrUnknownGenerator = errors.New("unknown key generator")
	ErrInvalidAlphabet  = errors.New("invalid alphabet")
	ErrInvalidLength    = errors.New("key length must be positive")
)

var Kinds = [...]string{Crypto, Regex, Math}

type KeyGenerator interface {
	Key() (string, error)
}

func NewKeyGenerator(kind, alphabet string, length int, seed uint64) (KeyGenerator, error) {
	if err := ValidateAlphabet(alphabet); err != nil {
		return nil, err
	}
	if length < 1 {
		return nil, ErrInvalidLength
	}
	switch kind {
	case Crypto:
		return NewDefaultKeyGenerator(alphabet, length), nil
	case Regex:
		return NewRegexKeyGenerator(alphabet, length)
	case Math:
		return NewMathKeyGenerator(alphabet, length, seed), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownGenerator, kind, Kinds)
	}
}

// ValidateAlphabet accepts only non-empty sets of distinct printable ASCII
// characters, excluding space.
func ValidateAlphabet(alphabet string) error {
	if alphabet == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAlphabet)
	}
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] <= ' ' || alphabet[i] > '~' {
			return fmt.Errorf("%w: character %q is not printable ascii", ErrInvalidAlphabet, alphabet[i])
		}
	}
	chars := []byte(alphabet)
	if len(lo.Uniq(chars)) != len(chars) {
		return fmt.Errorf("%w: %q has repeated characters", ErrInvalidAlphabet, alphabet)
	}
	return nil
}

type DefaultKeyGenerator struct {
	alphabet string
	length   int
	max      *big.Int
}

func NewDefaultKeyGenerator(alphabet string, length int) *DefaultKeyGenerator {
	return &DefaultKeyGenerator{alphabet: alphabet, length: length, max: big.NewInt(int64(len(alphabet)))}
}

func (d *DefaultKeyGenerator) Key() (string, error) {
	result := make([]byte, d.length)
	for i := range result {
		num, err := rand.Int(rand.Reader, d.max)
		if err != nil {
			return "", err
		}
		result[i] = d.alphabet[num.Int64()]
	}
	return string(result), nil
}
