package theme

import (
	"context"
	"sync"
)

// MemoryStore is a Store that lives as long as the process.
type MemoryStore struct {
	values sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.values.Load(key)
	if !ok {
		return "", false, nil
	}
	return value.(string), true, nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.values.Delete(key)
	return nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.values.Store(key, value)
	return nil
}
