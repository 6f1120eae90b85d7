// Package random provides convenient bounded random-number generation backed by a single process-wide generator.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/Noratrieb/simple-std/log"
)

// generator wraps a 'rand.Rand' with a mutex so that concurrent draws do not corrupt its state; the lock is only
// held for the duration of a single draw.
type generator struct {
	mu sync.Mutex
	r  *rand.Rand
}

// newGenerator returns a generator drawing from the given source.
func newGenerator(src rand.Source) *generator {
	return &generator{r: rand.New(src)}
}

// intN returns an integer uniformly distributed over [0, n).
func (g *generator) intN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.r.IntN(n)
}

// float64 returns a float uniformly distributed over [0, 1).
func (g *generator) float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.r.Float64()
}

// shuffle permutes n elements using the given swap function.
func (g *generator) shuffle(n int, swap func(i, j int)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.r.Shuffle(n, swap)
}

// shared is the process-wide generator used by all of the package level functions. It's lazily initialized on the
// first draw and never exposed to callers; tests may swap it for a generator with a fixed source.
var (
	sharedMutex sync.Mutex
	shared      *generator
)

// sharedGenerator returns the process-wide generator, seeding it from the OS entropy source on first use.
func sharedGenerator() (*generator, error) {
	sharedMutex.Lock()
	defer sharedMutex.Unlock()

	if shared != nil {
		return shared, nil
	}

	var seed [16]byte

	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to seed generator: %w", err)
	}

	shared = newGenerator(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))

	log.Debugf("(Random) Seeded the shared generator using the OS entropy source")

	return shared, nil
}
