package keygen

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ap-pauloafonso/verification-keys/internal/generator"
	"github.com/ap-pauloafonso/verification-keys/internal/input"
	"github.com/ap-pauloafonso/verification-keys/internal/keyset"
	"github.com/ap-pauloafonso/verification-keys/internal/printer"
)

type Keygen struct {
	Input     *input.InputParsed
	Generator generator.KeyGenerator
	Logger    *slog.Logger
	Stdout    io.Writer
	// Stderr receives the debug report.
	Stderr io.Writer
}

func NewKeygen(args input.InputArgs, logger *slog.Logger, stdout, stderr io.Writer) (*Keygen, error) {
	inputParsed, err := args.ParseInput()
	if err != nil {
		return nil, err
	}

	g, err := generator.NewKeyGenerator(inputParsed.Generator, inputParsed.Alphabet, inputParsed.Length, inputParsed.Seed)
	if err != nil {
		return nil, err
	}

	return &Keygen{
		Input:     inputParsed,
		Generator: g,
		Logger:    logger,
		Stdout:    stdout,
		Stderr:    stderr,
	}, nil
}

// Run prints the document, saves it and confirms. Nothing is confirmed
// unless the file was written.
func (K *Keygen) Run() error {
	K.Logger.Debug("generating keys",
		"count", K.Input.Count,
		"generator", K.Input.Generator,
		"length", K.Input.Length)

	result, err := keyset.Accumulate(K.Generator, keyset.Options{
		Count:        K.Input.Count,
		AlphabetSize: len(K.Input.Alphabet),
		Length:       K.Input.Length,
	})
	if err != nil {
		return err
	}
	if result.Collisions > 0 {
		K.Logger.Warn("discarded duplicate keys", "collisions", result.Collisions)
	}
	if K.Input.Debug {
		K.printDebug(result)
	}

	doc := printer.Document(result.Keys, K.Input.Length)
	if _, err := K.Stdout.Write(doc); err != nil {
		return fmt.Errorf("printing keys: %w", err)
	}

	if err := printer.Save(K.Input.Output, doc); err != nil {
		return err
	}
	K.Logger.Debug("keys saved", "path", K.Input.Output, "bytes", len(doc))

	printer.Confirm(K.Stdout, K.Input.Output)
	return nil
}

func (K *Keygen) printDebug(result *keyset.Result) {
	var pattern string
	if r, ok := K.Generator.(*generator.RegexKeyGenerator); ok {
		pattern = r.Pattern()
	}
	printer.PrintDebug(K.Stderr, printer.DebugInfo{
		Generator:  K.Input.Generator,
		Pattern:    pattern,
		Alphabet:   K.Input.Alphabet,
		Length:     K.Input.Length,
		Count:      K.Input.Count,
		Output:     K.Input.Output,
		Attempts:   result.Attempts,
		Collisions: result.Collisions,
		Collided:   result.CollisionHistory.Entries(),
	})
}
