package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_session.go github.com/KirkDiggler/tikkle/internal/handlers/discord Session

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Session is the part of *discordgo.Session the bot uses
type Session interface {
	Open() error
	Close() error
	AddHandler(handler interface{}) func()

	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error

	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(edit *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
}

// NewSession opens a bot session for the token; the websocket connects on Open
func NewSession(token string) (Session, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return session, nil
}
