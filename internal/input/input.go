package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ap-pauloafonso/verification-keys/internal/generator"
	"github.com/ap-pauloafonso/verification-keys/internal/keyset"
)

const (
	DefaultCount  = 500
	DefaultOutput = "verification-keys.txt"
)

type InputArgs struct {
	Count     int
	Output    string
	Generator string
	Seed      uint64
	Alphabet  string
	Length    int
	Debug     bool
}

type InputParsed struct {
	Count     int
	Output    string
	Generator string
	Seed      uint64
	Alphabet  string
	Length    int
	Debug     bool
}

func DefaultInputArgs() InputArgs {
	return InputArgs{
		Count:     DefaultCount,
		Output:    DefaultOutput,
		Generator: generator.Crypto,
		Alphabet:  generator.Alphabet,
		Length:    generator.KeyLength,
	}
}

func (I *InputArgs) ParseInput() (*InputParsed, error) {
	if I.Count < 1 {
		return nil, errors.New("count must be at least 1")
	}
	output := strings.TrimSpace(I.Output)
	if output == "" {
		return nil, errors.New("output path can not be empty")
	}
	kind := strings.ToLower(strings.TrimSpace(I.Generator))
	if !validGenerator(kind) {
		return nil, fmt.Errorf("generator must be one of %v", generator.Kinds)
	}
	if I.Seed != 0 && kind != generator.Math {
		return nil, fmt.Errorf("seed is only supported by the %s generator", generator.Math)
	}
	if err := generator.ValidateAlphabet(I.Alphabet); err != nil {
		return nil, err
	}
	if I.Length < 1 {
		return nil, generator.ErrInvalidLength
	}
	if !keyset.KeySpaceFits(len(I.Alphabet), I.Length, I.Count) {
		return nil, fmt.Errorf("%w: %d characters of length %d can not give %d keys", keyset.ErrKeySpaceTooSmall, len(I.Alphabet), I.Length, I.Count)
	}

	return &InputParsed{Count: I.Count,
		Output:    output,
		Generator: kind,
		Seed:      I.Seed,
		Alphabet:  I.Alphabet,
		Length:    I.Length,
		Debug:     I.Debug,
	}, nil
}

func validGenerator(kind string) bool {
	for _, v := range generator.Kinds {
		if v == kind {
			return true
		}
	}
	return false
}
