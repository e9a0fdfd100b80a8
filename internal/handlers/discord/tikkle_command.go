package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/services/announcer"
	"github.com/KirkDiggler/tikkle/internal/services/messaging"
	"github.com/KirkDiggler/tikkle/internal/services/savings"
	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Subcommand names
const (
	subcommandBadges = "badges"
	subcommandGoals  = "goals"
	subcommandScan   = "scan"
	subcommandSave   = "save"
)

// commandTimeout bounds the service calls behind one interaction
const commandTimeout = 10 * time.Second

// TikkleCommandConfig holds the services behind /tikkle
type TikkleCommandConfig struct {
	Announcer announcer.Service
	Directory announcer.BadgeDirectory
	Savings   savings.Service
	Messaging messaging.Service
	Logger    *zap.Logger
}

// TikkleCommand handles /tikkle and its subcommands
type TikkleCommand struct {
	BaseCommand
	announcer announcer.Service
	directory announcer.BadgeDirectory
	savings   savings.Service
	messaging messaging.Service
	logger    *zap.Logger
}

// NewTikkleCommand creates the /tikkle command
func NewTikkleCommand(cfg *TikkleCommandConfig) (*TikkleCommand, error) {
	if cfg == nil {
		return nil, ErrNilConfig
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

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	minAmount := float64(1)

	return &TikkleCommand{
		BaseCommand: BaseCommand{
			Name:        "tikkle",
			Description: "Your savings goals and badges",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandBadges,
					Description: "List every badge and whether you earned it",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandGoals,
					Description: "Show your goals and progress",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandScan,
					Description: "Check for newly earned badges",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSave,
					Description: "Record a savings entry",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "goal",
							Description: "Goal id",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "Amount in won",
							Required:    true,
							MinValue:    &minAmount,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "memo",
							Description: "What you skipped buying",
						},
					},
				},
			},
		},
		announcer: cfg.Announcer,
		directory: cfg.Directory,
		savings:   cfg.Savings,
		messaging: cfg.Messaging,
		logger:    logger,
	}, nil
}

// Handle routes the interaction to its subcommand
func (c *TikkleCommand) Handle(s Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Pick a subcommand")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	sub := data.Options[0]
	switch sub.Name {
	case subcommandBadges:
		return c.handleBadges(ctx, s, i)
	case subcommandGoals:
		return c.handleGoals(ctx, s, i)
	case subcommandScan:
		return c.handleScan(ctx, s, i)
	case subcommandSave:
		return c.handleSave(ctx, s, i, sub.Options)
	default:
		c.logger.Warn("unknown subcommand", zap.String("name", sub.Name))
		return RespondWithError(s, i, ErrUnknownSubcommand.Error())
	}
}

func (c *TikkleCommand) handleBadges(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
	output, err := c.directory.ListBadges(ctx, &tikkle.ListBadgesInput{})
	if err != nil {
		return c.respondFailure(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, RenderBadgeList(output.Badges))
}

func (c *TikkleCommand) handleGoals(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
	output, err := c.savings.Summary(ctx, &savings.SummaryInput{})
	if err != nil {
		return c.respondFailure(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, RenderGoals(
		output.Goals,
		models.FormatWon(output.TotalSaved),
		models.FormatWon(output.TotalTarget),
	))
}

// handleScan answers first; any new badge is announced in the channel
func (c *TikkleCommand) handleScan(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
	if err := RespondWithEphemeralMessage(s, i, "Checking for new badges..."); err != nil {
		return err
	}

	c.announcer.TriggerScan(ctx)
	return nil
}

func (c *TikkleCommand) handleSave(ctx context.Context, s Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &savings.RecordSavingInput{}
	for _, opt := range options {
		switch opt.Name {
		case "goal":
			input.GoalID = opt.IntValue()
		case "amount":
			input.Amount = decimal.NewFromInt(opt.IntValue())
		case "memo":
			input.Memo = opt.StringValue()
		}
	}

	output, err := c.savings.RecordSaving(ctx, input)
	if err != nil {
		return c.respondFailure(ctx, s, i, err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Saved!",
		Description: fmt.Sprintf("%s saved.", models.FormatWon(input.Amount)),
		Color:       colorGoals,
	}

	if c.messaging != nil {
		msg, err := c.messaging.GetSavingRecordedMessage(ctx, &messaging.GetSavingRecordedMessageInput{
			Goal:   output.Goal,
			Amount: input.Amount,
		})
		if err == nil {
			embed.Title, embed.Description = msg.Title, msg.Message
		}
	}

	if output.Goal != nil {
		embed.Fields = []*discordgo.MessageEmbedField{
			{
				Name:  output.Goal.Title,
				Value: fmt.Sprintf("%s %s%%", models.ProgressBar(output.Goal.ProgressPercent().IntPart(), progressWidth), output.Goal.ProgressPercent()),
			},
		}
	}

	return RespondWithEmbed(s, i, embed)
}

// respondFailure replies with a friendly error and keeps the detail in the log
func (c *TikkleCommand) respondFailure(ctx context.Context, s Session, i *discordgo.InteractionCreate, cause error) error {
	c.logger.Warn("tikkle command failed", zap.Error(cause))

	message := "Something went wrong. Please try again."
	if c.messaging != nil {
		msg, err := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
			ErrorType: messaging.Classify(cause),
		})
		if err == nil {
			message = msg.Message
		}
	}

	return RespondWithError(s, i, message)
}
