package announcer

import (
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/repositories/seen_badge"
	"go.uber.org/zap"
)

// Config holds configuration for the announcer
type Config struct {
	// Directory is where badges are fetched from
	Directory BadgeDirectory

	// Ledger records earn events already shown
	Ledger seen_badge.Repository

	// Presenter shows queued badges
	Presenter Presenter

	// Celebrator is optional; nil disables the effect
	Celebrator Celebrator

	// DismissSource is optional; without one only Dismiss closes a display
	DismissSource DismissSource

	// SerializeScans drops a scan that starts while another is running
	SerializeScans bool

	Logger *zap.Logger
}

// StateOutput is a snapshot of the announcement queue
type StateOutput struct {
	// Current is the badge on display, nil when idle
	Current *models.Badge

	// Pending are the badges waiting, head first
	Pending []*models.Badge

	// Celebrated reports whether the current display already celebrated
	Celebrated bool

	// Displays counts every display opened since Run started
	Displays uint64
}

// Displaying reports whether a badge is on display
func (o *StateOutput) Displaying() bool {
	return o != nil && o.Current != nil
}

type eventKind int

const (
	eventEnqueue eventKind = iota
	eventDismiss
	eventRefresh
	eventState
)

// event is a request handled on the loop goroutine
type event struct {
	kind eventKind

	// badges to append, for eventEnqueue
	badges []*models.Badge

	// display the dismissal belongs to; zero means whatever is current
	display uint64

	reply chan *StateOutput
}
