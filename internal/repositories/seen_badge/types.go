package seen_badge

import "github.com/KirkDiggler/tikkle/internal/models"

// MarkInitializedInput contains the baseline recorded on first run
type MarkInitializedInput struct {
	// Baseline maps every badge already earned at first run to its earnedAt
	Baseline models.SeenBadges
}

// PutInput contains the next state of the seen map
type PutInput struct {
	Seen models.SeenBadges
}
