package generator

import "math/rand/v2"

// MathKeyGenerator is fast but predictable. A zero seed draws from the
// runtime's random source; any other seed makes the batch reproducible.
type MathKeyGenerator struct {
	alphabet string
	length   int
	rng      *rand.Rand
}

func NewMathKeyGenerator(alphabet string, length int, seed uint64) *MathKeyGenerator {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	return &MathKeyGenerator{alphabet: alphabet, length: length, rng: rng}
}

func (m *MathKeyGenerator) Key() (string, error) {
	b := make([]byte, m.length)
	for i := range b {
		b[i] = m.alphabet[m.intN(len(m.alphabet))]
	}
	return string(b), nil
}

func (m *MathKeyGenerator) intN(n int) int {
	if m.rng == nil {
		return rand.IntN(n)
	}
	return m.rng.IntN(n)
}
