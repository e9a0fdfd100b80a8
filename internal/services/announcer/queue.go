package announcer

import (
	"context"
	"time"

	"github.com/KirkDiggler/tikkle/internal/models"
	"go.uber.org/zap"
)

// Run owns the announcement queue. Every queue mutation happens on the
// goroutine that calls Run; other methods only post events to it.
func (s *service) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.stop(ctx)

	s.logger.Debug("announcer started")

	for {
		for _, ev := range s.takeInbox() {
			s.handle(ctx, ev)
			s.advance(ctx)
		}

		select {
		case <-ctx.Done():
			s.logger.Debug("announcer stopped")
			return nil
		case <-s.wake:
		}
	}
}

// Dismiss closes the current display, if any
func (s *service) Dismiss() {
	s.post(event{kind: eventDismiss})
}

// Refresh re-evaluates the current display
func (s *service) Refresh() {
	s.post(event{kind: eventRefresh})
}

// State asks the loop for a snapshot of the queue
func (s *service) State(ctx context.Context) (*StateOutput, error) {
	reply := make(chan *StateOutput, 1)
	if !s.post(event{kind: eventState, reply: reply}) {
		return nil, ErrStopped
	}

	select {
	case out := <-reply:
		return out, nil
	case <-s.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// post hands an event to the loop. After the loop has stopped nothing is
// accepted and post reports false.
func (s *service) post(ev event) bool {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return false
	}
	s.inbox = append(s.inbox, ev)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

func (s *service) takeInbox() []event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.inbox
	s.inbox = nil
	return events
}

// closeTimeout bounds the final Close issued while the loop shuts down
const closeTimeout = 5 * time.Second

// stop takes down whatever is on display. The run context is already
// cancelled here, so the final Close gets a short-lived one of its own.
func (s *service) stop(ctx context.Context) {
	s.mu.Lock()
	s.stopped = true
	s.inbox = nil
	s.mu.Unlock()

	if s.current != nil {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		s.dismiss(closeCtx, 0)
		cancel()
	}
	s.release()
	s.queue = nil
	close(s.done)
}

func (s *service) handle(ctx context.Context, ev event) {
	switch ev.kind {
	case eventEnqueue:
		s.queue = append(s.queue, ev.badges...)
	case eventDismiss:
		s.dismiss(ctx, ev.display)
	case eventRefresh:
		s.celebrate(ctx)
	case eventState:
		ev.reply <- s.snapshot()
	}
}

// advance opens the head of the queue when nothing is on display
func (s *service) advance(ctx context.Context) {
	for s.current == nil && len(s.queue) > 0 {
		next := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]

		if err := s.presenter.Open(ctx, next); err != nil {
			s.logger.Warn("badge could not be displayed",
				zap.String("code", next.Code),
				zap.Error(err),
			)
			continue
		}

		s.display++
		s.current = next
		s.celebrated = false

		if s.dismissals != nil {
			display := s.display
			s.unsubscribe = s.dismissals.Subscribe(func() {
				s.post(event{kind: eventDismiss, display: display})
			})
		}

		s.celebrate(ctx)
	}

	if len(s.queue) == 0 {
		s.queue = nil
	}
}

// dismiss closes the current display. Dismissals from an earlier
// display's subscription are ignored.
func (s *service) dismiss(ctx context.Context, display uint64) {
	if s.current == nil {
		return
	}
	if display != 0 && display != s.display {
		return
	}

	s.release()

	closing := s.current
	s.current = nil
	if err := s.presenter.Close(ctx, closing); err != nil {
		s.logger.Warn("badge display did not close cleanly",
			zap.String("code", closing.Code),
			zap.Error(err),
		)
	}
}

func (s *service) release() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// celebrate fires the effect at most once per display, and only for a
// badge that is actually earned. A failing celebrator never blocks the
// queue.
func (s *service) celebrate(ctx context.Context) {
	if s.current == nil || s.celebrated || !s.current.Earned {
		return
	}
	s.celebrated = true

	if s.celebrator == nil {
		return
	}

	badge := s.current
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("celebration panicked",
				zap.String("code", badge.Code),
				zap.Any("panic", r),
			)
		}
	}()

	if err := s.celebrator.Celebrate(ctx, badge); err != nil {
		s.logger.Warn("celebration failed",
			zap.String("code", badge.Code),
			zap.Error(err),
		)
	}
}

func (s *service) snapshot() *StateOutput {
	pending := make([]*models.Badge, len(s.queue))
	copy(pending, s.queue)

	return &StateOutput{
		Current:    s.current,
		Pending:    pending,
		Celebrated: s.celebrated,
		Displays:   s.display,
	}
}
