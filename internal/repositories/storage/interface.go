package storage

//go:generate mockgen -package=mocks -destination=mocks/mock_storage.go github.com/KirkDiggler/tikkle/internal/repositories/storage Storage

import (
	"context"
)

// Storage is a durable string-to-string map scoped to one client profile
type Storage interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key, value string) error
}
