package filelog

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/ratechat/ratechat-server/internal/store"
)

const timestampLayout = "2006-01-02 15:04:05.000000"

// AuditStore implements store.AuditStore as a plain append-only text file,
// one "<timestamp> - <requester>" line per record.
type AuditStore struct {
	mu sync.Mutex
	f  *os.File
}

// New opens (creating if needed) the audit file at path in append mode.
func New(path string) (*AuditStore, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit file: %w", err)
	}
	return &AuditStore{f: f}, nil
}

// Append writes one record line.
func (s *AuditStore) Append(_ context.Context, rec store.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := fmt.Sprintf("%s - %s\n", rec.RequestedAt.Format(timestampLayout), rec.Requester)
	if _, err := s.f.WriteString(line); err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *AuditStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
