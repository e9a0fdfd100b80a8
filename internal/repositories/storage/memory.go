package storage

import (
	"context"
	"sync"
)

// memoryStorage keeps values in process memory; nothing survives a restart
type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory storage
func NewMemory() *memoryStorage {
	return &memoryStorage{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key
func (m *memoryStorage) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set overwrites the value stored under key
func (m *memoryStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
