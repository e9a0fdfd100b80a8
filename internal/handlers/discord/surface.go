package discord

import (
	"context"
	"sync"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const celebrationEmoji = "🎉"

// SurfaceConfig holds configuration for the Discord surface
type SurfaceConfig struct {
	Session Session

	// ChannelID is where badge announcements are posted
	ChannelID string

	// Messaging supplies the announcement copy; optional
	Messaging messaging.Service

	Logger *zap.Logger
}

// Surface posts badge announcements to a channel. The Close button on the
// posted message is the dismissal gesture.
type Surface struct {
	session   Session
	channelID string
	messaging messaging.Service
	logger    *zap.Logger

	mu sync.Mutex
	// messages maps a badge code to the announcement message on display
	messages map[string]string
	current  string
	handler  func()
	owner    uint64
	nextID   uint64
}

// NewSurface creates a Discord surface
func NewSurface(cfg *SurfaceConfig) (*Surface, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Surface{
		session:   cfg.Session,
		channelID: cfg.ChannelID,
		messaging: cfg.Messaging,
		logger:    logger.Named("discord_surface"),
		messages:  make(map[string]string),
	}, nil
}

// Open posts the announcement with a Close button
func (s *Surface) Open(ctx context.Context, badge *models.Badge) error {
	if badge == nil {
		return ErrNilBadge
	}

	headline, body := "New badge!", badge.Description
	if s.messaging != nil {
		msg, err := s.messaging.GetAnnouncementMessage(ctx, &messaging.GetAnnouncementMessageInput{Badge: badge})
		if err != nil {
			s.logger.Debug("announcement copy unavailable", zap.Error(err))
		} else {
			headline, body = msg.Title, msg.Message
		}
	}

	m, err := s.session.ChannelMessageSendComplex(s.channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{RenderBadgeAnnouncement(badge, headline, body)},
		Components: RenderCloseButton(),
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.messages[badge.Code] = m.ID
	s.current = m.ID
	s.mu.Unlock()

	return nil
}

// Close strips the Close button from the announcement so it reads as dismissed
func (s *Surface) Close(_ context.Context, badge *models.Badge) error {
	if badge == nil {
		return ErrNilBadge
	}

	s.mu.Lock()
	messageID, ok := s.messages[badge.Code]
	delete(s.messages, badge.Code)
	if s.current == messageID {
		s.current = ""
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}

	components := []discordgo.MessageComponent{}
	_, err := s.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         messageID,
		Channel:    s.channelID,
		Components: &components,
	})
	return err
}

// Celebrate reacts to the announcement and posts a celebration line under it
func (s *Surface) Celebrate(ctx context.Context, badge *models.Badge) error {
	if badge == nil {
		return ErrNilBadge
	}

	s.mu.Lock()
	messageID, ok := s.messages[badge.Code]
	s.mu.Unlock()

	if !ok {
		return nil
	}

	if err := s.session.MessageReactionAdd(s.channelID, messageID, celebrationEmoji); err != nil {
		s.logger.Debug("celebration reaction failed", zap.Error(err))
	}

	line := celebrationEmoji + " " + badge.Title
	if s.messaging != nil {
		msg, err := s.messaging.GetCelebrationMessage(ctx, &messaging.GetCelebrationMessageInput{Badge: badge})
		if err == nil {
			line = msg.Message
		}
	}

	_, err := s.session.ChannelMessageSendComplex(s.channelID, &discordgo.MessageSend{
		Content: line,
		Reference: &discordgo.MessageReference{
			MessageID: messageID,
			ChannelID: s.channelID,
		},
	})
	return err
}

// Subscribe registers the handler fired when the Close button is pressed.
// The returned func only clears the handler it registered.
func (s *Surface) Subscribe(handler func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.handler = handler
	s.owner = id

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.owner == id {
			s.handler = nil
			s.owner = 0
		}
	}
}

// HandleClose fires the dismissal handler when messageID is the
// announcement on display. Presses on older announcements are ignored.
func (s *Surface) HandleClose(messageID string) bool {
	s.mu.Lock()
	handler := s.handler
	match := messageID != "" && messageID == s.current
	s.mu.Unlock()

	if !match || handler == nil {
		return false
	}

	handler()
	return true
}
