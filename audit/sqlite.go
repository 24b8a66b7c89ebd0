package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/rowmend/rowmend/heal"
)

const auditSchema = `
CREATE TABLE IF NOT EXISTS audit_entries (
	row_index   INTEGER NOT NULL,
	raw         TEXT    NOT NULL,
	outcome     TEXT    NOT NULL,
	reason      TEXT    NOT NULL DEFAULT '',
	corrections TEXT    NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_audit_row ON audit_entries(row_index);
CREATE INDEX IF NOT EXISTS idx_audit_outcome ON audit_entries(outcome);
`

// SQLiteSink persists entries to a SQLite database. Corrections are
// stored as a JSON array so a row's full repair history stays queryable
// in one place.
type SQLiteSink struct {
	db     *sql.DB
	insert *sql.Stmt
	closed bool
}

// NewSQLiteSink opens (creating if needed) the database at path and
// prepares the audit table.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("audit: open sqlite: %w", err)
	}
	if _, err := db.Exec(auditSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: create schema: %w", err)
	}
	insert, err := db.Prepare(
		`INSERT INTO audit_entries (row_index, raw, outcome, reason, corrections) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: prepare insert: %w", err)
	}
	return &SQLiteSink{db: db, insert: insert}, nil
}

// Append inserts one entry.
func (s *SQLiteSink) Append(entry heal.AuditEntry) error {
	if s.closed {
		return ErrClosed
	}
	corr, err := json.Marshal(entry.Corrections)
	if err != nil {
		return fmt.Errorf("audit: encode corrections: %w", err)
	}
	if entry.Corrections == nil {
		corr = []byte("[]")
	}
	_, err = s.insert.Exec(entry.RowIndex, entry.Raw, entry.Outcome.String(), entry.Reason, string(corr))
	if err != nil {
		return fmt.Errorf("audit: insert entry: %w", err)
	}
	return nil
}

// Close releases the prepared statement and the database handle.
func (s *SQLiteSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.insert.Close()
	return s.db.Close()
}

// Load reads back all entries ordered by row index, inverting Append.
func (s *SQLiteSink) Load() ([]heal.AuditEntry, error) {
	rows, err := s.db.Query(
		`SELECT row_index, raw, outcome, reason, corrections FROM audit_entries ORDER BY row_index`)
	if err != nil {
		return nil, fmt.Errorf("audit: query entries: %w", err)
	}
	defer rows.Close()

	var out []heal.AuditEntry
	for rows.Next() {
		var (
			e       heal.AuditEntry
			outcome string
			corr    string
		)
		if err := rows.Scan(&e.RowIndex, &e.Raw, &outcome, &e.Reason, &corr); err != nil {
			return nil, fmt.Errorf("audit: scan entry: %w", err)
		}
		switch outcome {
		case heal.OutcomeHealed.String():
			e.Outcome = heal.OutcomeHealed
		case heal.OutcomeRejected.String():
			e.Outcome = heal.OutcomeRejected
		default:
			e.Outcome = heal.OutcomeClean
		}
		if corr != "" && corr != "[]" {
			if err := json.Unmarshal([]byte(corr), &e.Corrections); err != nil {
				return nil, fmt.Errorf("audit: decode corrections: %w", err)
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: iterate entries: %w", err)
	}
	return out, nil
}
