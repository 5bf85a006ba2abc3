/*
Package sqlite provides the durable Store implementation.

PURPOSE:
  Persists record streams in SQLite while keeping the backend's
  whole-stream contract: LoadAll reads every row of a stream in order,
  ReplaceAll rewrites the stream atomically inside one SQL transaction.
  Rows stay loosely typed - each is stored as a JSON object - so the
  Schema Guard remains the single place that knows stream shapes.

CONCURRENCY:
  A mutex serializes writers, satisfying the serialize-writes-per-stream
  requirement (a single mutex across streams is stricter but simpler).
  Readers go straight to SQLite; WAL mode keeps them from blocking on
  the writer.

USAGE:
  st, err := sqlite.New("./data/credit.db")   // ":memory:" for tests
  defer st.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zonavalle/credit-engine/ledger"
)

// Store implements ledger.Store on SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	-- One table for every stream; rows stay loosely typed as JSON.
	-- seq preserves append order within a stream.
	CREATE TABLE IF NOT EXISTS stream_rows (
		stream   TEXT    NOT NULL,
		seq      INTEGER NOT NULL,
		row_json TEXT    NOT NULL,
		PRIMARY KEY (stream, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_stream_rows_stream
		ON stream_rows(stream);
	`
	_, err := s.db.Exec(schema)
	return err
}

// LoadAll returns every row of a stream in append order. An absent
// stream yields zero rows.
func (s *Store) LoadAll(ctx context.Context, stream string) ([]ledger.Row, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT row_json FROM stream_rows WHERE stream = ? ORDER BY seq`, stream)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ledger.ErrTransient, stream, err)
	}
	defer rows.Close()

	var out []ledger.Row
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", stream, err)
		}
		row := ledger.Row{}
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			// A corrupt cell should not take down the whole stream.
			continue
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ledger.ErrTransient, stream, err)
	}
	return out, nil
}

// ReplaceAll overwrites a stream inside a single transaction: delete
// every existing row, insert the new set in order.
func (s *Store) ReplaceAll(ctx context.Context, stream string, rows []ledger.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: replace %s: %v", ledger.ErrTransient, stream, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM stream_rows WHERE stream = ?`, stream); err != nil {
		return fmt.Errorf("clear %s: %w", stream, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO stream_rows (stream, seq, row_json) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert %s: %w", stream, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		raw, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encode %s row %d: %w", stream, i, err)
		}
		if _, err := stmt.ExecContext(ctx, stream, i, string(raw)); err != nil {
			return fmt.Errorf("insert %s row %d: %w", stream, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit %s: %v", ledger.ErrTransient, stream, err)
	}
	return nil
}
