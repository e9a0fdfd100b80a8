package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/tikkle/internal/common/clock Clock

// Clock is the source of wall-clock time for displays and request deadlines
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current local time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a single instant
type Fixed time.Time

// Now returns the frozen instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
