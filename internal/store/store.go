package store

import (
	"context"
	"time"
)

// AuditRecord notes one recognized exchange command attempt. It is written
// as soon as the command is classified, before the lookup resolves.
type AuditRecord struct {
	RequestedAt time.Time
	Requester   string
}

// AuditStore persists exchange command audit records.
type AuditStore interface {
	// Append adds one record. Records are never updated or deleted.
	Append(ctx context.Context, rec AuditRecord) error

	// Close releases the underlying file or database handle.
	Close() error
}
