package sink

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Record is one published entry retained by the memory sink.
type Record struct {
	ID   string
	Data []byte
}

// MemorySink is a concurrency-safe in-memory Sink for local runs and tests.
// It assigns record IDs the way the real sink does server-side.
type MemorySink struct {
	mu      sync.Mutex
	records []Record
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Publish(_ context.Context, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		ID:   uuid.NewString(),
		Data: append([]byte(nil), data...),
	}
	s.records = append(s.records, rec)
	return rec.ID, nil
}

// Records returns a copy of everything published so far.
func (s *MemorySink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}
