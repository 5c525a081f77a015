// Package ident isolates the engine's only two non-deterministic
// inputs, identifier generation and the current time, behind injectable
// interfaces so that extraction stays a pure function under test.
package ident

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. For tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Generator produces record identifiers. Identifiers denote instances
// of extraction, never content identity: two runs over identical text
// yield different ids.
type Generator interface {
	NewID() string
}

// ULIDGenerator issues monotonic ULIDs. Safe for concurrent use.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULIDGenerator creates a generator backed by crypto/rand entropy.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}

// SequenceGenerator issues "prefix-1", "prefix-2", ... ids. For tests.
type SequenceGenerator struct {
	Prefix string

	mu sync.Mutex
	n  int
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

// Reference builds the human-decipherable correlation tag for a unit:
// the run's base time in unix milliseconds plus the unit's sequence
// index. Unique within one run, not across runs.
func Reference(base time.Time, index int) string {
	return fmt.Sprintf("LOG-%d-%d", base.UnixMilli(), index)
}
