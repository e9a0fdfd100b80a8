package seen_badge

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tikkle/internal/repositories/seen_badge Repository

import (
	"context"

	"github.com/KirkDiggler/tikkle/internal/models"
)

// Repository is the ledger of badge earn events already shown to this profile
type Repository interface {
	// IsInitialized reports whether the one-time baseline has been recorded
	IsInitialized(ctx context.Context) bool

	// MarkInitialized persists the baseline and sets the initialized flag.
	// It is a no-op once the ledger is initialized.
	MarkInitialized(ctx context.Context, input *MarkInitializedInput) error

	// Get returns the seen map; unreadable storage yields an empty map
	Get(ctx context.Context) models.SeenBadges

	// Put overwrites the seen map
	Put(ctx context.Context, input *PutInput) error
}
