package kvstore

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrWriteRejected is returned by a MemoryStore while FailWrites is set.
var ErrWriteRejected = errors.New("storage quota exceeded")

// MemoryStore keeps records in process memory. It backs tests and the
// "memory" storage type.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	fail    bool
	writes  int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryStore) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return ErrWriteRejected
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.records[key] = v
	m.writes++
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// FailWrites makes every subsequent Put fail until called with false.
func (m *MemoryStore) FailWrites(fail bool) {
	m.mu.Lock()
	m.fail = fail
	m.mu.Unlock()
}

// Writes returns the number of successful Put calls.
func (m *MemoryStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Has reports whether key holds a record.
func (m *MemoryStore) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.records[key]
	return ok
}
