// Package store provides the in-memory Store implementation used by
// tests and development.
package store

import (
	"context"
	"sync"

	"github.com/zonavalle/credit-engine/ledger"
)

// =============================================================================
// MEMORY STORE
// =============================================================================

// Memory holds every stream in memory. A single RWMutex serializes
// writers across streams, which is stricter than the per-stream
// requirement but trivially correct.
type Memory struct {
	mu      sync.RWMutex
	streams map[string][]ledger.Row
}

func NewMemory() *Memory {
	return &Memory{streams: make(map[string][]ledger.Row)}
}

// LoadAll returns a deep copy of the stream. Absent streams are zero
// rows, never an error.
func (m *Memory) LoadAll(_ context.Context, stream string) ([]ledger.Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRows(m.streams[stream]), nil
}

// ReplaceAll overwrites the stream with a deep copy of rows, so later
// caller mutations cannot leak into the store.
func (m *Memory) ReplaceAll(_ context.Context, stream string, rows []ledger.Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams[stream] = cloneRows(rows)
	return nil
}

func cloneRows(rows []ledger.Row) []ledger.Row {
	out := make([]ledger.Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
