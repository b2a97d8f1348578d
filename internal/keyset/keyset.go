package keyset

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ap-pauloafonso/verification-keys/internal/generator"
	"github.com/gammazero/deque"
	"github.com/samber/lo"
)

const (
	maxCollisionHistory = 10
	attemptsPerKey      = 100
	maxSizeHint         = 1 << 16
)

var (
	ErrKeySpaceTooSmall = errors.New("key space is smaller than the requested count")
	ErrTooManyAttempts  = errors.New("too many attempts generating unique keys")
)

type Options struct {
	Count        int
	AlphabetSize int
	Length       int
	// MaxAttempts defaults to Count*100 when zero.
	MaxAttempts int
}

type Result struct {
	Keys             []string
	Attempts         int
	Collisions       int
	CollisionHistory collisionHistory
}

type CollisionEntry struct {
	Attempt int
	Key     string
}

type collisionHistory struct {
	deque.Deque
}

func (C *collisionHistory) pushValueHistory(value CollisionEntry) {
	if C.Len() >= maxCollisionHistory {
		C.PopFront()
	}
	C.PushBack(value)
}

func (C *collisionHistory) Entries() []CollisionEntry {
	entries := make([]CollisionEntry, 0, C.Len())
	for i := 0; i < C.Len(); i++ {
		entries = append(entries, C.At(i).(CollisionEntry))
	}
	return entries
}

// Accumulate draws keys from g until opts.Count distinct keys were collected
// and returns them sorted ascending.
func Accumulate(g generator.KeyGenerator, opts Options) (*Result, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	if !KeySpaceFits(opts.AlphabetSize, opts.Length, opts.Count) {
		return nil, fmt.Errorf("%w: %d^%d < %d", ErrKeySpaceTooSmall, opts.AlphabetSize, opts.Length, opts.Count)
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = attemptLimit(opts.Count)
	}

	result := &Result{}
	keys := make(map[string]struct{}, min(opts.Count, maxSizeHint))
	for len(keys) < opts.Count {
		if result.Attempts >= maxAttempts {
			return nil, fmt.Errorf("%w: %d unique out of %d after %d attempts", ErrTooManyAttempts, len(keys), opts.Count, result.Attempts)
		}
		key, err := g.Key()
		if err != nil {
			return nil, fmt.Errorf("generating key: %w", err)
		}
		result.Attempts++
		if _, exists := keys[key]; exists {
			result.Collisions++
			result.CollisionHistory.pushValueHistory(CollisionEntry{Attempt: result.Attempts, Key: key})
			continue
		}
		keys[key] = struct{}{}
	}

	result.Keys = lo.Keys(keys)
	slices.Sort(result.Keys)
	return result, nil
}

// KeySpaceFits reports whether alphabetSize^length >= count.
func KeySpaceFits(alphabetSize, length, count int) bool {
	if alphabetSize < 1 || length < 1 {
		return false
	}
	if alphabetSize == 1 {
		return count <= 1
	}
	space := 1
	for i := 0; i < length; i++ {
		// the next multiplication reaches count; stop before it can overflow
		if space >= count || space > (count-1)/alphabetSize {
			return true
		}
		space *= alphabetSize
	}
	return space >= count
}

// attemptLimit saturates at math.MaxInt instead of overflowing.
func attemptLimit(count int) int {
	if count > math.MaxInt/attemptsPerKey {
		return math.MaxInt
	}
	return count * attemptsPerKey
}
