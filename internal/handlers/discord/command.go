package discord

import (
	"github.com/bwmarrin/discordgo"
)

// CommandHandler is a slash command the bot registers and routes to
type CommandHandler interface {
	GetName() string
	GetCommand() *discordgo.ApplicationCommand

	// Handle answers one invocation of the command
	Handle(s Session, i *discordgo.InteractionCreate) error
}

// BaseCommand carries the registration data shared by every command
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand builds the definition sent to Discord on registration
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// reply answers the interaction with a new message
func reply(s Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithEmbed answers with an embed everyone in the channel sees
func RespondWithEmbed(s Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return reply(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
}

// RespondWithError answers with an error embed only the caller sees
func RespondWithError(s Session, i *discordgo.InteractionCreate, message string) error {
	return reply(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Something went wrong",
			Description: message,
			Color:       colorError,
		}},
		Flags: discordgo.MessageFlagsEphemeral,
	})
}

// RespondWithEphemeralMessage answers with plain text only the caller sees
func RespondWithEphemeralMessage(s Session, i *discordgo.InteractionCreate, message string) error {
	return reply(s, i, &discordgo.InteractionResponseData{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// AcknowledgeComponent tells Discord a button press was handled without
// changing the message it belongs to
func AcknowledgeComponent(s Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}
