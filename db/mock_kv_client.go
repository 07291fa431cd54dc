package db

import (
	"context"
	"path"
	"sync"
)

// MockKVClient simulates the KV store for testing purposes.
type MockKVClient struct {
	data    map[string]string // Key-value store
	mu      sync.RWMutex      // Mutex for thread-safe operations
	context context.Context
}

// NewMockKVClient initializes a new MockKVClient.
func NewMockKVClient(ctx context.Context) *MockKVClient {
	return &MockKVClient{
		data:    make(map[string]string),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock store.
func (m *MockKVClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock store.
func (m *MockKVClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Del removes a key from the mock store.
func (m *MockKVClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns the stored keys matching a glob pattern.
func (m *MockKVClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// GetContext returns the mock client's context.
func (m *MockKVClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a KV store Ping operation.
func (m *MockKVClient) Ping() error {
	return nil
}
