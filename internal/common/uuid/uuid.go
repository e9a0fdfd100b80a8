package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/tikkle/internal/common/uuid UUID

// UUID generates identifiers used to correlate API requests in logs
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random (v4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}

// Static always returns the same identifier
type Static string

// NewUUID returns the static identifier
func (s Static) NewUUID() string {
	return string(s)
}
