package storage

// StorageError is a custom error type for storage errors
type StorageError string

// Error implements the error interface
func (e StorageError) Error() string {
	return string(e)
}

const (
	ErrNotFound       StorageError = "key not found"
	ErrNilConfig      StorageError = "config cannot be nil"
	ErrNilRedisClient StorageError = "redis client cannot be nil"
	ErrEmptyKey       StorageError = "key cannot be empty"
	ErrEmptyDir       StorageError = "storage directory cannot be empty"
)
