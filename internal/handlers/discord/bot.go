package discord

import (
	"fmt"

	"github.com/KirkDiggler/tikkle/internal/services/announcer"
	"github.com/KirkDiggler/tikkle/internal/services/messaging"
	"github.com/KirkDiggler/tikkle/internal/services/savings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Button IDs
const (
	ButtonCloseBadge = "tikkle_badge_close"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	surface    *Surface
	config     *Config
	logger     *zap.Logger
	remove     func()
}

// Config holds the configuration for the bot
type Config struct {
	Session Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Announcer announcer.Service
	Directory announcer.BadgeDirectory
	Savings   savings.Service

	// Messaging is optional; plain replies are used without it
	Messaging messaging.Service

	// Surface receives Close button presses
	Surface *Surface

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.ApplicationID == "" {
		return nil, ErrEmptyApplicationID
	}

	if cfg.Announcer == nil {
		return nil, ErrNilAnnouncer
	}

	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}

	if cfg.Savings == nil {
		return nil, ErrNilSavings
	}

	if cfg.Surface == nil {
		return nil, ErrNilSurface
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		surface:    cfg.Surface,
		config:     cfg,
		logger:     logger.Named("discord"),
	}

	bot.remove = cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cmd, err := NewTikkleCommand(&TikkleCommandConfig{
		Announcer: b.config.Announcer,
		Directory: b.config.Directory,
		Savings:   b.config.Savings,
		Messaging: b.config.Messaging,
		Logger:    b.logger,
	})
	if err != nil {
		return err
	}

	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register tikkle command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(b.config.ApplicationID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("id", cmdID),
				zap.Error(err),
			)
		} else {
			b.logger.Debug("deleted command", zap.String("command", cmdName))
		}
		delete(b.commandIDs, cmdName)
	}

	if b.remove != nil {
		b.remove()
		b.remove = nil
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, globally unless a
// guild is configured
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.config.ApplicationID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID),
	)

	return nil
}

func (b *Bot) handleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(i)
}

// dispatch routes an interaction to its command or component handler
func (b *Bot) dispatch(i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(b.session, i); err != nil {
				b.logger.Error("error handling command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(i); err != nil {
			b.logger.Error("error handling component interaction", zap.Error(err))
		}
	}
}

func (b *Bot) handleComponentInteraction(i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case ButtonCloseBadge:
		if err := AcknowledgeComponent(b.session, i); err != nil {
			return err
		}

		messageID := ""
		if i.Message != nil {
			messageID = i.Message.ID
		}
		if !b.surface.HandleClose(messageID) {
			b.logger.Debug("close pressed on an announcement no longer on display",
				zap.String("message_id", messageID),
			)
		}
		return nil
	default:
		return RespondWithError(b.session, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}
