package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ratechat/ratechat-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS exchange_audit (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	requested_at DATETIME NOT NULL,
	requester    TEXT NOT NULL
);
`

// AuditStore implements store.AuditStore on SQLite.
type AuditStore struct {
	db *sql.DB
}

// New opens (creating if needed) the audit database at dbPath.
func New(dbPath string) (*AuditStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &AuditStore{db: db}, nil
}

// Append adds one audit record.
func (s *AuditStore) Append(ctx context.Context, rec store.AuditRecord) error {
	query := `
		INSERT INTO exchange_audit (requested_at, requester)
		VALUES (?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, rec.RequestedAt, rec.Requester); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (s *AuditStore) ListRecent(ctx context.Context, limit int) ([]store.AuditRecord, error) {
	query := `
		SELECT requested_at, requester
		FROM exchange_audit
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit records: %w", err)
	}
	defer rows.Close()

	var records []store.AuditRecord
	for rows.Next() {
		var rec store.AuditRecord
		if err := rows.Scan(&rec.RequestedAt, &rec.Requester); err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit records: %w", err)
	}
	return records, nil
}

// Close closes the database connection.
func (s *AuditStore) Close() error {
	return s.db.Close()
}
