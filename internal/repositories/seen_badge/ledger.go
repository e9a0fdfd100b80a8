package seen_badge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/repositories/storage"
	"go.uber.org/zap"
)

const (
	// Storage keys shared with earlier clients of the same profile
	seenKey        = "seenBadges"
	initializedKey = "seenBadgesInitialized"

	initializedValue = "1"
)

// Config holds configuration for the ledger
type Config struct {
	// Storage is the profile's persisted key-value store
	Storage storage.Storage

	// Logger receives absorbed storage failures
	Logger *zap.Logger
}

// ledger implements the Repository interface on top of a storage port
type ledger struct {
	storage storage.Storage
	logger  *zap.Logger
}

// New creates a ledger backed by the given storage
func New(cfg *Config) (*ledger, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Storage == nil {
		return nil, ErrNilStorage
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ledger{
		storage: cfg.Storage,
		logger:  logger.Named("seen_badge"),
	}, nil
}

// IsInitialized reports whether the baseline flag is present
func (l *ledger) IsInitialized(ctx context.Context) bool {
	value, err := l.storage.Get(ctx, initializedKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Warn("reading initialized flag failed", zap.Error(err))
		}
		return false
	}

	return value != ""
}

// MarkInitialized writes the baseline, then the flag
func (l *ledger) MarkInitialized(ctx context.Context, input *MarkInitializedInput) error {
	if input == nil {
		return ErrNilInput
	}

	// Concurrent first runs may both reach here; the second one must not
	// overwrite entries the first has already added on top of its baseline.
	if l.IsInitialized(ctx) {
		return nil
	}

	baseline := input.Baseline
	if baseline == nil {
		baseline = models.SeenBadges{}
	}

	if err := l.write(ctx, baseline); err != nil {
		return err
	}

	if err := l.storage.Set(ctx, initializedKey, initializedValue); err != nil {
		return fmt.Errorf("failed to set initialized flag: %w", err)
	}

	return nil
}

// Get returns the persisted seen map
func (l *ledger) Get(ctx context.Context) models.SeenBadges {
	raw, err := l.storage.Get(ctx, seenKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Warn("reading seen badges failed", zap.Error(err))
		}
		return models.SeenBadges{}
	}

	var seen models.SeenBadges
	if err := json.Unmarshal([]byte(raw), &seen); err != nil {
		l.logger.Warn("seen badges are not valid JSON, treating as empty", zap.Error(err))
		return models.SeenBadges{}
	}

	// "null" decodes to a nil map
	if seen == nil {
		return models.SeenBadges{}
	}

	return seen
}

// Put overwrites the persisted seen map
func (l *ledger) Put(ctx context.Context, input *PutInput) error {
	if input == nil {
		return ErrNilInput
	}

	seen := input.Seen
	if seen == nil {
		seen = models.SeenBadges{}
	}

	return l.write(ctx, seen)
}

func (l *ledger) write(ctx context.Context, seen models.SeenBadges) error {
	seenJSON, err := json.Marshal(seen)
	if err != nil {
		return fmt.Errorf("failed to marshal seen badges: %w", err)
	}

	if err := l.storage.Set(ctx, seenKey, string(seenJSON)); err != nil {
		return fmt.Errorf("failed to save seen badges: %w", err)
	}

	return nil
}
