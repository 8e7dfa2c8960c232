// Package ids provides unique identifier generation for zone trees.
//
// The engine only ever compares IDs for equality; it never inspects their
// structure. Callers embedding the engine can therefore supply any
// Generator whose outputs are unique within a tree.
package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers for zones, partitions, drawer
// zones, and shelves.
type Generator interface {
	// NewID returns an identifier that has not been returned before.
	NewID() string
}

// uuidGenerator backs IDs with random UUIDs.
type uuidGenerator struct{}

// UUID returns the production generator, backed by random UUIDv4.
func UUID() Generator { return uuidGenerator{} }

func (uuidGenerator) NewID() string { return uuid.NewString() }

// seqGenerator issues "z1", "z2", ... for deterministic test fixtures.
type seqGenerator struct {
	n atomic.Int64
}

// Sequential returns a deterministic generator for tests and golden files.
// Each call to NewID increments a counter, so IDs are stable across runs.
func Sequential() Generator { return &seqGenerator{} }

func (g *seqGenerator) NewID() string {
	return fmt.Sprintf("z%d", g.n.Add(1))
}
