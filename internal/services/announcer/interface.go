package announcer

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tikkle/internal/services/announcer Service
//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/tikkle/internal/services/announcer Presenter
//go:generate mockgen -package=mocks -destination=mocks/mock_celebrator.go github.com/KirkDiggler/tikkle/internal/services/announcer Celebrator
//go:generate mockgen -package=mocks -destination=mocks/mock_dismiss_source.go github.com/KirkDiggler/tikkle/internal/services/announcer DismissSource

import (
	"context"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/models"
)

// Service announces newly earned badges one at a time
type Service interface {
	// TriggerScan looks for badges earned since the last scan and queues them.
	// Failures are logged and absorbed.
	TriggerScan(ctx context.Context)

	// InitializeBaseline records every badge already earned as seen.
	// It runs once per profile; later calls are no-ops.
	InitializeBaseline(ctx context.Context) error

	// Run drains the queue until ctx is cancelled
	Run(ctx context.Context) error

	// Dismiss closes the badge currently on display
	Dismiss()

	// Refresh re-evaluates the display after the surface redraws it
	Refresh()

	// State returns a snapshot of the queue
	State(ctx context.Context) (*StateOutput, error)
}

// BadgeDirectory lists badge definitions with the user's earned status
type BadgeDirectory interface {
	ListBadges(ctx context.Context, input *tikkle.ListBadgesInput) (*tikkle.ListBadgesOutput, error)
}

// Presenter shows and hides a badge on a presentation surface
type Presenter interface {
	Open(ctx context.Context, badge *models.Badge) error
	Close(ctx context.Context, badge *models.Badge) error
}

// Celebrator plays the celebration effect for a displayed badge
type Celebrator interface {
	Celebrate(ctx context.Context, badge *models.Badge) error
}

// DismissSource delivers user dismissals while a badge is on display.
// The returned func releases the subscription.
type DismissSource interface {
	Subscribe(onDismiss func()) (unsubscribe func())
}
