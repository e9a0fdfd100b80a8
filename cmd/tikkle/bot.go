package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/tikkle/internal/handlers/discord"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errDiscordNotConfigured = errors.New("DISCORD_TOKEN, DISCORD_CHANNEL_ID and APPLICATION_ID are required for the bot")

// bot announces badges in a Discord channel and serves /tikkle until interrupted
func (a *app) bot(c *cli.Context) error {
	if !a.cfg.Discord.Enabled() {
		return errDiscordNotConfigured
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.loadLedger(ctx); err != nil {
		return err
	}

	session, err := discord.NewSession(a.cfg.Discord.Token)
	if err != nil {
		return err
	}

	surface, err := discord.NewSurface(&discord.SurfaceConfig{
		Session:   session,
		ChannelID: a.cfg.Discord.ChannelID,
		Messaging: a.messaging,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}

	svc, err := a.newAnnouncer(surface, surface, surface)
	if err != nil {
		return err
	}

	savingsSvc, err := a.loadSavings(svc)
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: a.cfg.Discord.ApplicationID,
		GuildID:       a.cfg.Discord.GuildID,
		Announcer:     svc,
		Directory:     a.client,
		Savings:       savingsSvc,
		Messaging:     a.messaging,
		Surface:       surface,
		Logger:        a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	// recorded before /tikkle save can be served
	a.baseline(ctx, svc)

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			a.logger.Warn("error stopping bot", zap.Error(err))
		}
		a.logger.Info("bot has been shut down")
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return svc.Run(gctx)
	})
	g.Go(func() error {
		return pollScans(gctx, svc, a.cfg.Announcer.ScanInterval)
	})

	return g.Wait()
}
