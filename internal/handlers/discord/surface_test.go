package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/tikkle/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/tikkle/internal/services/messaging/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SurfaceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSession   *mocks.MockSession
	mockMessaging *messagingMocks.MockService
	surface       *Surface
	ctx           context.Context

	testBadge *models.Badge
}

func (s *SurfaceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSession = mocks.NewMockSession(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	surface, err := NewSurface(&SurfaceConfig{
		Session:   s.mockSession,
		ChannelID: "chan-1",
		Messaging: s.mockMessaging,
	})
	s.Require().NoError(err)
	s.surface = surface

	earnedAt := "2024-03-01T09:30:00Z"
	s.testBadge = &models.Badge{
		Code:     "FIRST_SAVE",
		Title:    "First Save",
		Icon:     "🐷",
		Earned:   true,
		EarnedAt: &earnedAt,
	}
}

func (s *SurfaceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSurfaceTestSuite(t *testing.T) {
	suite.Run(t, new(SurfaceTestSuite))
}

func (s *SurfaceTestSuite) open(messageID string) {
	s.mockMessaging.EXPECT().
		GetAnnouncementMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetAnnouncementMessageOutput{Title: "New badge!", Message: "Well done"}, nil)
	s.mockSession.EXPECT().
		ChannelMessageSendComplex("chan-1", gomock.Any()).
		Return(&discordgo.Message{ID: messageID}, nil)

	s.Require().NoError(s.surface.Open(s.ctx, s.testBadge))
}

func (s *SurfaceTestSuite) TestOpenPostsEmbedWithCloseButton() {
	s.mockMessaging.EXPECT().
		GetAnnouncementMessage(gomock.Any(), &messaging.GetAnnouncementMessageInput{Badge: s.testBadge}).
		Return(&messaging.GetAnnouncementMessageOutput{Title: "Badge earned!", Message: "First Save earned."}, nil)

	var sent *discordgo.MessageSend
	s.mockSession.EXPECT().
		ChannelMessageSendComplex("chan-1", gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			sent = data
			return &discordgo.Message{ID: "m1"}, nil
		})

	s.Require().NoError(s.surface.Open(s.ctx, s.testBadge))

	s.Require().Len(sent.Embeds, 1)
	s.Equal("Badge earned!", sent.Embeds[0].Title)
	s.Equal("First Save earned.", sent.Embeds[0].Description)
	s.Equal("2024-03-01T09:30:00Z", sent.Embeds[0].Timestamp)

	s.Require().Len(sent.Components, 1)
	row, ok := sent.Components[0].(discordgo.ActionsRow)
	s.Require().True(ok)
	button, ok := row.Components[0].(discordgo.Button)
	s.Require().True(ok)
	s.Equal(ButtonCloseBadge, button.CustomID)
}

func (s *SurfaceTestSuite) TestOpenWithoutMessaging() {
	surface, err := NewSurface(&SurfaceConfig{Session: s.mockSession, ChannelID: "chan-1"})
	s.Require().NoError(err)

	s.mockSession.EXPECT().
		ChannelMessageSendComplex("chan-1", gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("New badge!", data.Embeds[0].Title)
			return &discordgo.Message{ID: "m1"}, nil
		})

	s.NoError(surface.Open(s.ctx, s.testBadge))
}

func (s *SurfaceTestSuite) TestOpenSendFailure() {
	s.mockMessaging.EXPECT().
		GetAnnouncementMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no copy"))
	s.mockSession.EXPECT().
		ChannelMessageSendComplex("chan-1", gomock.Any()).
		Return(nil, errors.New("missing access"))

	s.Error(s.surface.Open(s.ctx, s.testBadge))
	s.False(s.surface.HandleClose(""))
}

func (s *SurfaceTestSuite) TestCloseRemovesButton() {
	s.open("m1")

	s.mockSession.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("m1", edit.ID)
			s.Equal("chan-1", edit.Channel)
			s.Require().NotNil(edit.Components)
			s.Empty(*edit.Components)
			return &discordgo.Message{ID: "m1"}, nil
		})

	s.NoError(s.surface.Close(s.ctx, s.testBadge))

	// a second close has nothing to edit
	s.NoError(s.surface.Close(s.ctx, s.testBadge))
}

func (s *SurfaceTestSuite) TestCelebrateReactsAndReplies() {
	s.open("m1")

	s.mockSession.EXPECT().MessageReactionAdd("chan-1", "m1", celebrationEmoji).Return(nil)
	s.mockMessaging.EXPECT().
		GetCelebrationMessage(gomock.Any(), &messaging.GetCelebrationMessageInput{Badge: s.testBadge}).
		Return(&messaging.GetCelebrationMessageOutput{Message: "🎉 🐷 First Save! 🎉"}, nil)
	s.mockSession.EXPECT().
		ChannelMessageSendComplex("chan-1", gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("🎉 🐷 First Save! 🎉", data.Content)
			s.Require().NotNil(data.Reference)
			s.Equal("m1", data.Reference.MessageID)
			return &discordgo.Message{ID: "m2"}, nil
		})

	s.NoError(s.surface.Celebrate(s.ctx, s.testBadge))
}

func (s *SurfaceTestSuite) TestCelebrateReactionFailureStillReplies() {
	s.open("m1")

	s.mockSession.EXPECT().MessageReactionAdd("chan-1", "m1", celebrationEmoji).Return(errors.New("no permission"))
	s.mockMessaging.EXPECT().
		GetCelebrationMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no copy"))
	s.mockSession.EXPECT().
		ChannelMessageSendComplex("chan-1", gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("🎉 First Save", data.Content)
			return &discordgo.Message{ID: "m2"}, nil
		})

	s.NoError(s.surface.Celebrate(s.ctx, s.testBadge))
}

func (s *SurfaceTestSuite) TestCelebrateWithoutAnnouncement() {
	s.NoError(s.surface.Celebrate(s.ctx, s.testBadge))
}

func (s *SurfaceTestSuite) TestHandleCloseOnlyForCurrentAnnouncement() {
	s.open("m1")

	fired := 0
	unsubscribe := s.surface.Subscribe(func() { fired++ })

	s.False(s.surface.HandleClose("old"))
	s.True(s.surface.HandleClose("m1"))
	s.Equal(1, fired)

	unsubscribe()
	s.False(s.surface.HandleClose("m1"))
	s.Equal(1, fired)
}

func (s *SurfaceTestSuite) TestStaleUnsubscribeKeepsNewerHandler() {
	s.open("m1")

	first := s.surface.Subscribe(func() {})
	fired := false
	s.surface.Subscribe(func() { fired = true })

	first()
	s.True(s.surface.HandleClose("m1"))
	s.True(fired)
}

func (s *SurfaceTestSuite) TestNilBadge() {
	s.ErrorIs(s.surface.Open(s.ctx, nil), ErrNilBadge)
	s.ErrorIs(s.surface.Close(s.ctx, nil), ErrNilBadge)
	s.ErrorIs(s.surface.Celebrate(s.ctx, nil), ErrNilBadge)
}

func TestNewSurfaceValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	tests := []struct {
		name string
		cfg  *SurfaceConfig
		err  error
	}{
		{name: "nil config", cfg: nil, err: ErrNilConfig},
		{name: "nil session", cfg: &SurfaceConfig{ChannelID: "c"}, err: ErrNilSession},
		{name: "empty channel", cfg: &SurfaceConfig{Session: session}, err: ErrEmptyChannelID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSurface(tt.cfg)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}
