package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
	"github.com/ap-pauloafonso/verification-keys/internal/input"
	"github.com/ap-pauloafonso/verification-keys/internal/keygen"
)

func main() {
	defaults := input.DefaultInputArgs()

	count := flag.Int("n", defaults.Count, "number of keys")
	output := flag.String("o", defaults.Output, "output file")
	generatorKind := flag.String("g", defaults.Generator, "key generator")
	seed := flag.Uint64("seed", 0, "seed for the math generator")
	alphabet := flag.String("a", defaults.Alphabet, "key alphabet")
	length := flag.Int("l", defaults.Length, "key length")
	debug := flag.Bool("debug", false, "")

	flag.Usage = func() {
		fmt.Printf("usage: %s [-n COUNT] [-o OUTPUT] [-g GENERATOR] [-seed SEED] [-a ALPHABET] [-l LENGTH] [-debug]\n", os.Args[0])
		fmt.Printf(`
optional arguments:
	-h           		show this help message and exit
	-n [COUNT]   		number of unique keys, default: %d
	-o [OUTPUT]  		file the keys are saved to, default: %s
	-g [GENERATOR]		key generator, default: %s
	-seed [SEED] 		seed for the math generator, default: random
	-a [ALPHABET]		characters keys are drawn from, default: %s
	-l [LENGTH]  		key length, default: %d
	-debug       		print generation statistics to stderr

[GENERATOR] options: crypto, regex, math
`, defaults.Count, defaults.Output, defaults.Generator, defaults.Alphabet, defaults.Length)
	}

	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	opts := *slogcolor.DefaultOptions
	opts.Level = level
	logger := slog.New(slogcolor.NewHandler(os.Stderr, &opts))

	k, err := keygen.NewKeygen(
		input.InputArgs{
			Count:     *count,
			Output:    *output,
			Generator: *generatorKind,
			Seed:      *seed,
			Alphabet:  *alphabet,
			Length:    *length,
			Debug:     *debug,
		}, logger, os.Stdout, os.Stderr)

	if err != nil {
		logger.Error("invalid arguments", "error", err)
		flag.Usage()
		os.Exit(2)
	}

	if err := k.Run(); err != nil {
		logger.Error("generating keys failed", "error", err)
		os.Exit(1)
	}
}
