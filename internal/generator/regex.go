package generator

import (
	"fmt"
	"strings"

	regen "github.com/zach-klippenstein/goregen"
)

type RegexKeyGenerator struct {
	pattern   string
	generator regen.Generator
}

func NewRegexKeyGenerator(alphabet string, length int) (*RegexKeyGenerator, error) {
	pattern := keyPattern(alphabet, length)
	g, err := regen.NewGenerator(pattern, nil)
	if err != nil {
		return nil, err
	}
	return &RegexKeyGenerator{pattern: pattern, generator: g}, nil
}

func (r *RegexKeyGenerator) Key() (string, error) {
	return r.generator.Generate(), nil
}

func (r *RegexKeyGenerator) Pattern() string {
	return r.pattern
}

// keyPattern escapes punctuation so alphabets containing ], ^ or - stay literal.
func keyPattern(alphabet string, length int) string {
	var class strings.Builder
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if !isAlnum(c) {
			class.WriteByte('\\')
		}
		class.WriteByte(c)
	}
	return fmt.Sprintf("[%s]{%d}", class.String(), length)
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
