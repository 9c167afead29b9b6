package mocks

import (
	"context"
	"sync"

	"github.com/admin-dashboard/internal/storage"
)

// MockStore is an in-memory storage.Store that records writes and can be told to fail
type MockStore struct {
	mu       sync.Mutex
	Data     map[string][]byte
	GetError error
	SetError error
	SetCalls int
	SetKeys  []string
}

// Verify interface compliance
var _ storage.Store = (*MockStore)(nil)

// NewMockStore creates an empty MockStore
func NewMockStore() *MockStore {
	return &MockStore{
		Data: make(map[string][]byte),
	}
}

// Put seeds a raw value without counting it as a write
func (m *MockStore) Put(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = []byte(value)
}

// Get returns the stored value or GetError
func (m *MockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetError != nil {
		return nil, false, m.GetError
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

// Set records a write, failing with SetError when it is set
func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	m.SetKeys = append(m.SetKeys, key)
	if m.SetError != nil {
		return m.SetError
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key
func (m *MockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	return nil
}

// Close is a no-op
func (m *MockStore) Close() error { return nil }

// Writes returns how many Set calls were made
func (m *MockStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SetCalls
}
