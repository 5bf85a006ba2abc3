/*
store.go - Storage boundary for record streams

PURPOSE:
  The engine is pure; all I/O goes through this interface. The backing
  store offers exactly two operations per stream: read every row, or
  replace every row. There are no transactions and no row-level writes,
  which mirrors the tabular worksheet the data actually lives in.

SEMANTICS:
  - LoadAll on an absent or empty stream returns zero rows, never an
    error. Streams come into existence on first ReplaceAll.
  - ReplaceAll is a whole-stream overwrite. Implementations must
    serialize writers per stream so two concurrent sessions cannot
    silently clobber each other's rows (lost-update hazard of the
    read-modify-write cycle).
  - Transient backend failures (unreachable, throttled) wrap
    ErrTransient so callers can retry with backoff.

IMPLEMENTATIONS:
  - ledger/store: in-memory, for tests and development
  - store/sqlite: durable, database/sql + go-sqlite3
*/
package ledger

import (
	"context"
	"errors"
)

// Stream names. The four core streams plus the directory, expense and
// archive streams.
const (
	StreamLocations          = "locations"
	StreamContracts          = "contracts"
	StreamPayments           = "payments"
	StreamClients            = "clients"
	StreamVendors            = "vendors"
	StreamExpenses           = "expenses"
	StreamCommissionPayments = "commission_payments"
	StreamArchivedContracts  = "archived_contracts"
	StreamArchivedPayments   = "archived_payments"
)

// Streams lists every known stream, in load order.
var Streams = []string{
	StreamLocations, StreamContracts, StreamPayments,
	StreamClients, StreamVendors, StreamExpenses,
	StreamCommissionPayments, StreamArchivedContracts, StreamArchivedPayments,
}

// Store is the durable tabular backend.
type Store interface {
	// LoadAll returns every row of a stream. Absent streams are zero rows.
	LoadAll(ctx context.Context, stream string) ([]Row, error)

	// ReplaceAll overwrites a stream with the given rows.
	ReplaceAll(ctx context.Context, stream string, rows []Row) error
}

// ErrTransient marks backend failures worth retrying (store unreachable,
// rate-limited). The in-memory result of an operation that hits one is
// never committed.
var ErrTransient = errors.New("store temporarily unavailable")

// IsTransient reports whether err is a retryable backend failure.
func IsTransient(err error) bool { return errors.Is(err, ErrTransient) }
