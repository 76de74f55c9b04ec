// Package spawn provides the depth-dependent selection tables used to
// populate rooms: weighted random choice and threshold-based progression
// lookup.
package spawn

import (
	"errors"
	"math/rand"
)

// Entry pairs a non-negative selection weight with a value.
type Entry[T any] struct {
	Weight int
	Value  T
}

// Table selects values with probability proportional to their weights.
// Tables are immutable once built.
type Table[T any] struct {
	entries []Entry[T]
	total   int
}

// NewTable validates the entries and builds a Table. A negative weight
// or a total weight of zero is a construction error — such a table can
// never be drawn from.
func NewTable[T any](entries []Entry[T]) (*Table[T], error) {
	total := 0
	for _, e := range entries {
		if e.Weight < 0 {
			return nil, errors.New("spawn: negative weight in table")
		}
		total += e.Weight
	}
	if total <= 0 {
		return nil, errors.New("spawn: table total weight must be positive")
	}
	t := &Table[T]{entries: make([]Entry[T], len(entries)), total: total}
	copy(t.entries, entries)
	return t, nil
}

// Choice draws uniformly from the cumulative weight range [0, total)
// and returns the value whose interval contains the draw.
func (t *Table[T]) Choice(rng *rand.Rand) T {
	draw := rng.Intn(t.total)
	acc := 0
	for _, e := range t.entries {
		acc += e.Weight
		if draw < acc {
			return e.Value
		}
	}
	// Unreachable: the last interval ends exactly at total.
	panic("spawn: draw outside cumulative range")
}

// ProgressionEntry maps a dungeon level threshold to a value.
type ProgressionEntry struct {
	Level int
	Value int
}

// Progression derives a level-dependent scalar from threshold entries.
// Entries must be sorted ascending by Level; that is the caller's
// responsibility and is not checked at lookup time.
type Progression []ProgressionEntry

// ValueFor scans from the highest threshold downward and returns the
// value of the first entry whose Level is at most level, or 0 when
// level is below every threshold.
func (p Progression) ValueFor(level int) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Level <= level {
			return p[i].Value
		}
	}
	return 0
}
