package announcer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/repositories/seen_badge"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	directory  BadgeDirectory
	ledger     seen_badge.Repository
	presenter  Presenter
	celebrator Celebrator
	dismissals DismissSource
	logger     *zap.Logger

	serializeScans bool
	scanning       atomic.Bool

	// inbox is filled by any goroutine and emptied by the loop
	mu      sync.Mutex
	inbox   []event
	stopped bool
	wake    chan struct{}
	done    chan struct{}
	started atomic.Bool

	// owned by the loop goroutine
	queue       []*models.Badge
	current     *models.Badge
	display     uint64
	celebrated  bool
	unsubscribe func()
}

// New creates a new announcer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		directory:      cfg.Directory,
		ledger:         cfg.Ledger,
		presenter:      cfg.Presenter,
		celebrator:     cfg.Celebrator,
		dismissals:     cfg.DismissSource,
		logger:         logger.Named("announcer"),
		serializeScans: cfg.SerializeScans,
		wake:           make(chan struct{}, 1),
		done:           make(chan struct{}),
	}, nil
}

// TriggerScan fetches badges, records the newly earned ones in the ledger
// and queues them for display. A profile without a baseline gets its
// baseline recorded instead, and nothing is announced.
func (s *service) TriggerScan(ctx context.Context) {
	if s.serializeScans {
		if !s.scanning.CompareAndSwap(false, true) {
			s.logger.Debug("scan already in flight, dropping")
			return
		}
		defer s.scanning.Store(false)
	}

	if !s.ledger.IsInitialized(ctx) {
		if err := s.InitializeBaseline(ctx); err != nil {
			s.logger.Warn("baseline not recorded", zap.Error(err))
		}
		return
	}

	badges, err := s.listBadges(ctx)
	if err != nil {
		if errors.Is(err, tikkle.ErrUnauthorized) {
			s.logger.Debug("not signed in, nothing to scan")
			return
		}
		s.logger.Warn("badge scan skipped", zap.Error(err))
		return
	}

	seen := s.ledger.Get(ctx)
	newly := NewlyEarned(badges, seen)
	if len(newly) == 0 {
		return
	}

	next := seen.Clone()
	for _, badge := range newly {
		next[badge.Code] = badge.EarnedAtValue()
	}

	if err := s.ledger.Put(ctx, &seen_badge.PutInput{Seen: next}); err != nil {
		s.logger.Warn("seen badges not saved", zap.Error(err))
	}

	s.logger.Info("badges earned",
		zap.Int("count", len(newly)),
		zap.String("first", newly[0].Code),
	)

	s.post(event{
		kind:   eventEnqueue,
		badges: newly,
	})
}

// InitializeBaseline marks every badge earned so far as seen. A failed
// fetch leaves the ledger uninitialized so the next call retries.
func (s *service) InitializeBaseline(ctx context.Context) error {
	if s.ledger.IsInitialized(ctx) {
		return nil
	}

	badges, err := s.listBadges(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch badges for baseline: %w", err)
	}

	baseline := make(models.SeenBadges)
	for _, badge := range badges {
		if badge.IsAnnounceable() {
			baseline[badge.Code] = badge.EarnedAtValue()
		}
	}

	if err := s.ledger.MarkInitialized(ctx, &seen_badge.MarkInitializedInput{
		Baseline: baseline,
	}); err != nil {
		return fmt.Errorf("failed to record baseline: %w", err)
	}

	s.logger.Info("baseline recorded", zap.Int("earned", len(baseline)))
	return nil
}

func (s *service) listBadges(ctx context.Context) ([]*models.Badge, error) {
	output, err := s.directory.ListBadges(ctx, &tikkle.ListBadgesInput{})
	if err != nil {
		return nil, err
	}
	if output == nil {
		return nil, nil
	}
	return output.Badges, nil
}

// NewlyEarned returns the earned badges whose earn event is not in seen,
// in the order given.
func NewlyEarned(badges []*models.Badge, seen models.SeenBadges) []*models.Badge {
	var newly []*models.Badge
	picked := make(map[string]string)

	for _, badge := range badges {
		if !badge.IsAnnounceable() || seen.HasSeen(badge) {
			continue
		}
		if at, ok := picked[badge.Code]; ok && at == badge.EarnedAtValue() {
			continue
		}
		picked[badge.Code] = badge.EarnedAtValue()
		newly = append(newly, badge)
	}

	return newly
}
