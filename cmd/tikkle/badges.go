package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/handlers/terminal"
	"github.com/KirkDiggler/tikkle/internal/services/announcer"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const drainPoll = 100 * time.Millisecond

func (a *app) badges(c *cli.Context) error {
	output, err := a.client.ListBadges(c.Context, &tikkle.ListBadgesInput{})
	if err != nil {
		return err
	}

	return a.render(output.Badges, func(w *tabwriter.Writer) {
		row(w, "CODE", "BADGE", "STATUS", "EARNED AT")
		for _, badge := range output.Badges {
			status := "locked"
			if badge.Earned {
				status = "earned"
			}
			row(w, badge.Code, strings.TrimSpace(badge.Icon+" "+badge.Title), status, badge.EarnedAtValue())
		}
	})
}

// terminalSession is an announcer running against the terminal
type terminalSession struct {
	announcer announcer.Service
	cancel    context.CancelFunc
	runDone   chan struct{}

	// keysDone closes when stdin ends; displays are then dismissed unattended
	keysDone chan struct{}
}

func (a *app) startTerminalSession(ctx context.Context) (*terminalSession, error) {
	if err := a.loadLedger(ctx); err != nil {
		return nil, err
	}

	surface, err := terminal.NewSurface(&terminal.SurfaceConfig{
		Out:       a.out,
		Messaging: a.messaging,
		Logger:    a.logger,
	})
	if err != nil {
		return nil, err
	}

	keys, err := terminal.NewKeyDismissSource(a.in, a.logger)
	if err != nil {
		return nil, err
	}

	svc, err := a.newAnnouncer(surface, surface, keys)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	session := &terminalSession{
		announcer: svc,
		cancel:    cancel,
		runDone:   make(chan struct{}),
		keysDone:  make(chan struct{}),
	}

	go func() {
		defer close(session.runDone)
		if err := svc.Run(runCtx); err != nil {
			a.logger.Error("announcer stopped", zap.Error(err))
		}
	}()

	go func() {
		defer close(session.keysDone)
		if err := keys.Run(runCtx); err != nil {
			a.logger.Debug("key reader stopped", zap.Error(err))
		}
	}()

	return session, nil
}

// drain waits until every queued badge has been shown and dismissed
func (t *terminalSession) drain(ctx context.Context) error {
	ticker := time.NewTicker(drainPoll)
	defer ticker.Stop()

	for {
		state, err := t.announcer.State(ctx)
		if err != nil {
			return err
		}
		if !state.Displaying() && len(state.Pending) == 0 {
			return nil
		}

		select {
		case <-t.keysDone:
			t.announcer.Dismiss()
		default:
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (t *terminalSession) stop() {
	t.cancel()
	<-t.runDone
}

func (a *app) scan(c *cli.Context) error {
	session, err := a.startTerminalSession(c.Context)
	if err != nil {
		return err
	}
	defer session.stop()

	a.baseline(c.Context, session.announcer)
	session.announcer.TriggerScan(c.Context)
	return session.drain(c.Context)
}

// watch scans on an interval and shows badges as they are earned
func (a *app) watch(c *cli.Context) error {
	interval := a.cfg.Announcer.ScanInterval
	if c.IsSet("interval") {
		interval = c.Duration("interval")
	}
	if interval < time.Second {
		return fmt.Errorf("interval must be at least 1s, got %s", interval)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := a.startTerminalSession(ctx)
	if err != nil {
		return err
	}
	defer session.stop()

	a.baseline(ctx, session.announcer)

	fmt.Fprintf(a.out, "Watching for new badges every %s. Press Ctrl-C to stop.\n", interval)
	return pollScans(ctx, session.announcer, interval)
}

// baseline records what the profile has already earned. A failure only
// costs this cycle: the next scan retries it while the ledger is still
// uninitialized.
func (a *app) baseline(ctx context.Context, svc announcer.Service) {
	if err := svc.InitializeBaseline(ctx); err != nil {
		a.logger.Warn("badge baseline not recorded; will retry on the next scan", zap.Error(err))
	}
}

// pollScans triggers a scan right away and then on every tick
func pollScans(ctx context.Context, svc announcer.Service, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		svc.TriggerScan(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
