package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/common/uuid"
	"github.com/KirkDiggler/tikkle/internal/config"
	"github.com/KirkDiggler/tikkle/internal/repositories/seen_badge"
	"github.com/KirkDiggler/tikkle/internal/repositories/storage"
	"github.com/KirkDiggler/tikkle/internal/services/announcer"
	"github.com/KirkDiggler/tikkle/internal/services/messaging"
	"github.com/KirkDiggler/tikkle/internal/services/ranking"
	"github.com/KirkDiggler/tikkle/internal/services/savings"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const redisPingTimeout = 5 * time.Second

// app holds everything a command needs; the loaders fill it in
type app struct {
	in  io.Reader
	out io.Writer

	cfg    *config.Config
	logger *zap.Logger
	output string

	client    tikkle.Client
	messaging messaging.Service
	ranking   ranking.Service

	redis   *redis.Client
	storage storage.Storage
	ledger  seen_badge.Repository
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{
		in:     in,
		out:    out,
		logger: zap.NewNop(),
	}
}

// before runs ahead of every command
func (a *app) before(c *cli.Context) error {
	if err := a.loadConfig(c); err != nil {
		return err
	}
	if err := a.loadLogger(); err != nil {
		return err
	}
	if err := a.loadClient(); err != nil {
		return err
	}
	return a.loadServices()
}

func (a *app) after(_ *cli.Context) error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Debug("redis close failed", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
	return nil
}

// loadConfig reads the environment, then applies the global flags over it
func (a *app) loadConfig(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if c.IsSet(flagAPIURL) {
		cfg.API.URL = c.String(flagAPIURL)
	}
	if c.IsSet(flagSession) {
		cfg.API.Session = c.String(flagSession)
	}
	if c.IsSet(flagProfile) {
		cfg.Storage.Profile = c.String(flagProfile)
	}
	if c.IsSet(flagStorage) {
		cfg.Storage.Backend = c.String(flagStorage)
	}
	if c.IsSet(flagLogLevel) {
		cfg.Logging.Level = c.String(flagLogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.output = c.String(flagOutput)
	return nil
}

func (a *app) loadLogger() error {
	logger, err := config.NewLogger(a.cfg.Logging.Level, a.cfg.Logging.Format)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) loadClient() error {
	client, err := tikkle.New(&tikkle.Config{
		BaseURL:       a.cfg.API.URL,
		SessionCookie: a.cfg.API.Session,
		Timeout:       a.cfg.API.Timeout,
		MaxRetries:    a.cfg.API.MaxRetries,
		Logger:        a.logger,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}
	a.client = client
	return nil
}

func (a *app) loadServices() error {
	msg, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return err
	}
	a.messaging = msg

	rank, err := ranking.NewService(&ranking.Config{
		Client:       a.client,
		InviteOrigin: a.cfg.API.InviteOrigin,
		Logger:       a.logger,
	})
	if err != nil {
		return err
	}
	a.ranking = rank

	return nil
}

// loadSavings builds the savings service; scanner may be nil
func (a *app) loadSavings(scanner savings.BadgeScanner) (savings.Service, error) {
	svc, err := savings.NewService(&savings.Config{
		Client:  a.client,
		Scanner: scanner,
		Logger:  a.logger,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// loadLedger opens the profile's storage and the seen-badge ledger on it
func (a *app) loadLedger(ctx context.Context) error {
	switch a.cfg.Storage.Backend {
	case config.StorageRedis:
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Storage.RedisAddr,
			Password: a.cfg.Storage.RedisPassword,
			DB:       a.cfg.Storage.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := a.redis.Ping(pingCtx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}

		store, err := storage.NewRedis(&storage.Config{
			RedisClient: a.redis,
			Profile:     a.cfg.Storage.Profile,
		})
		if err != nil {
			return err
		}
		a.storage = store
	case config.StorageMemory:
		a.logger.Info("using in-memory storage; seen badges are forgotten on exit")
		a.storage = storage.NewMemory()
	default:
		store, err := storage.NewFile(&storage.FileConfig{
			Dir:     a.cfg.Storage.Dir,
			Profile: a.cfg.Storage.Profile,
		})
		if err != nil {
			return err
		}
		a.storage = store
	}

	ledger, err := seen_badge.New(&seen_badge.Config{
		Storage: a.storage,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}
	a.ledger = ledger
	return nil
}

// newAnnouncer wires an announcer to a presentation surface
func (a *app) newAnnouncer(presenter announcer.Presenter, celebrator announcer.Celebrator, dismissals announcer.DismissSource) (announcer.Service, error) {
	svc, err := announcer.New(&announcer.Config{
		Directory:      a.client,
		Ledger:         a.ledger,
		Presenter:      presenter,
		Celebrator:     celebrator,
		DismissSource:  dismissals,
		SerializeScans: a.cfg.Announcer.SerializeScans,
		Logger:         a.logger,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// explain turns a command error into a line for the user
func (a *app) explain(err error) string {
	if a.messaging == nil {
		return err.Error()
	}

	errType := messaging.Classify(err)
	if errType == messaging.ErrorTypeUnknown {
		return err.Error()
	}

	msg, msgErr := a.messaging.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		ErrorType: errType,
	})
	if msgErr != nil {
		return err.Error()
	}

	a.logger.Debug("command failed", zap.Error(err))
	return msg.Message
}
