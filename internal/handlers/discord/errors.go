package discord

// DiscordError is a custom error type for Discord handler errors
type DiscordError string

// Error implements the error interface
func (e DiscordError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          DiscordError = "config cannot be nil"
	ErrEmptyToken         DiscordError = "token cannot be empty"
	ErrNilSession         DiscordError = "session cannot be nil"
	ErrEmptyChannelID     DiscordError = "channel id cannot be empty"
	ErrEmptyApplicationID DiscordError = "application id cannot be empty"
	ErrNilAnnouncer       DiscordError = "announcer cannot be nil"
	ErrNilDirectory       DiscordError = "badge directory cannot be nil"
	ErrNilSavings         DiscordError = "savings service cannot be nil"
	ErrNilSurface         DiscordError = "surface cannot be nil"
	ErrNilBadge           DiscordError = "badge cannot be nil"
	ErrUnknownSubcommand  DiscordError = "unknown subcommand"
)
