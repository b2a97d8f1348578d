package printer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ap-pauloafonso/verification-keys/internal/keyset"
	"github.com/fatih/color"
	"github.com/natefinch/atomic"
	"github.com/olekukonko/ts"
)

const Title = "ShoppieApp Verification Keys"

// Document renders the header and the keys, one per line.
func Document(keys []string, length int) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n", Title)
	fmt.Fprintf(&b, "# Generated %d unique %d-digit activation keys\n\n", len(keys), length)
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Save replaces path with doc. The content goes to a temporary file in the
// same directory first, so a failed run never leaves a truncated file behind.
func Save(path string, doc []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(doc)); err != nil {
		return fmt.Errorf("saving keys to %s: %w", path, err)
	}
	return nil
}

func Confirm(w io.Writer, path string) {
	check := color.New(color.FgGreen, color.Bold).Sprint("✓")
	fmt.Fprintf(w, "\n%s Keys saved to %s\n", check, path)
}

type DebugInfo struct {
	Generator  string
	Pattern    string
	Alphabet   string
	Length     int
	Count      int
	Output     string
	Attempts   int
	Collisions int
	Collided   []keyset.CollisionEntry
}

func PrintDebug(w io.Writer, d DebugInfo) {
	width := terminalSize()
	fmt.Fprintf(w, "%s\n", center("  DEBUG  ", width-len("  DEBUG  "), "#"))
	fmt.Fprintf(w, `
	Generator: %v
	Alphabet: %v (%d characters)
	Key length: %v
	Requested: %v
	Output: %v
	Attempts: %v | Collisions: %v
`, d.Generator, d.Alphabet, len(d.Alphabet), d.Length, d.Count, d.Output, d.Attempts, d.Collisions)
	if d.Pattern != "" {
		fmt.Fprintf(w, "\tPattern: %v\n", d.Pattern)
	}
	if len(d.Collided) > 0 {
		fmt.Fprintf(w, "\n%s\n\n", center("  COLLISIONS  ", width-len("  COLLISIONS  "), "#"))
		for _, c := range d.Collided {
			fmt.Fprintf(w, "#%v %v | duplicate discarded\n", c.Attempt, c.Key)
		}
	}
	fmt.Fprintln(w)
}

func terminalSize() int {
	size, _ := ts.GetSize()
	width := size.Col()
	if width < 40 {
		width = 40
	}
	return width
}

func center(s string, n int, fill string) string {
	div := n / 2
	return strings.Repeat(fill, div) + s + strings.Repeat(fill, div)
}
