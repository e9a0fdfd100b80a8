package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	tikkleMocks "github.com/KirkDiggler/tikkle/internal/clients/tikkle/mocks"
	clockMocks "github.com/KirkDiggler/tikkle/internal/common/clock/mocks"
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RankingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *tikkleMocks.MockClient
	mockClock  *clockMocks.MockClock
	service    *service
	ctx        context.Context

	testTime time.Time
}

func (s *RankingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = tikkleMocks.NewMockClient(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	svc, err := NewService(&Config{
		Client:       s.mockClient,
		InviteOrigin: "https://tikkle.example.com/",
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RankingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRankingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RankingServiceTestSuite))
}

func (s *RankingServiceTestSuite) TestLeaderboardOrdering() {
	s.mockClient.EXPECT().
		GetGroup(gomock.Any(), &tikkle.GetGroupInput{GroupID: 7}).
		Return(&tikkle.GetGroupOutput{Group: &models.RankGroupDetail{
			ID: 7,
			Members: []*models.LeaderRow{
				{UserID: 1, Name: "Sora", Total: 10000},
				{UserID: 2, Name: "Bora", Total: 50000},
				nil,
				{UserID: 3, Name: "Ara", Total: 10000},
			},
		}}, nil)

	output, err := s.service.Leaderboard(s.ctx, &LeaderboardInput{GroupID: 7})
	s.Require().NoError(err)
	s.Require().Len(output.Rows, 3)
	s.Equal("Bora", output.Rows[0].Name)
	s.Equal("Ara", output.Rows[1].Name)
	s.Equal("Sora", output.Rows[2].Name)
}

func (s *RankingServiceTestSuite) TestLeaderboardInvalidGroup() {
	_, err := s.service.Leaderboard(s.ctx, &LeaderboardInput{})
	s.ErrorIs(err, ErrInvalidGroupID)
}

func (s *RankingServiceTestSuite) TestCreateInviteDefaults() {
	s.mockClient.EXPECT().
		CreateInvite(gomock.Any(), &tikkle.CreateInviteInput{
			GroupID:  7,
			TTLHours: DefaultInviteTTLHours,
			MaxUses:  DefaultInviteMaxUses,
		}).
		Return(&tikkle.CreateInviteOutput{Invite: &models.InviteLink{
			Code:      "AB12",
			ExpiresAt: "2024-01-04T00:00:00Z",
		}}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	output, err := s.service.CreateInvite(s.ctx, &CreateInviteInput{GroupID: 7})
	s.Require().NoError(err)
	s.Equal("https://tikkle.example.com/join/AB12", output.URL)
	s.Equal(72*time.Hour, output.ExpiresIn)
}

func (s *RankingServiceTestSuite) TestCreateInviteUnparseableExpiry() {
	s.mockClient.EXPECT().
		CreateInvite(gomock.Any(), &tikkle.CreateInviteInput{GroupID: 7, TTLHours: 1, MaxUses: 2}).
		Return(&tikkle.CreateInviteOutput{Invite: &models.InviteLink{
			Code:      "AB12",
			ExpiresAt: "2024-01-04 00:00",
		}}, nil)

	output, err := s.service.CreateInvite(s.ctx, &CreateInviteInput{GroupID: 7, TTLHours: 1, MaxUses: 2})
	s.Require().NoError(err)
	s.Zero(output.ExpiresIn)
}

func (s *RankingServiceTestSuite) TestJoinByLink() {
	s.mockClient.EXPECT().
		JoinByCode(gomock.Any(), &tikkle.JoinByCodeInput{Code: "AB12"}).
		Return(&tikkle.JoinByCodeOutput{Group: &models.RankGroup{ID: 7, Name: "Family"}}, nil)

	output, err := s.service.JoinByCode(s.ctx, &JoinByCodeInput{Code: " https://tikkle.example.com/join/AB12/ "})
	s.Require().NoError(err)
	s.Equal("Family", output.Group.Name)

	_, err = s.service.JoinByCode(s.ctx, &JoinByCodeInput{Code: "  "})
	s.ErrorIs(err, ErrEmptyCode)
}

func (s *RankingServiceTestSuite) TestCreateGroupAndLeave() {
	s.mockClient.EXPECT().
		CreateGroup(gomock.Any(), &tikkle.CreateGroupInput{Name: "Family"}).
		Return(&tikkle.CreateGroupOutput{Group: &models.RankGroup{ID: 7, Name: "Family"}}, nil)
	s.mockClient.EXPECT().
		LeaveGroup(gomock.Any(), &tikkle.LeaveGroupInput{GroupID: 7}).
		Return(nil)

	output, err := s.service.CreateGroup(s.ctx, &CreateGroupInput{Name: " Family "})
	s.Require().NoError(err)
	s.Equal(int64(7), output.Group.ID)

	s.NoError(s.service.LeaveGroup(s.ctx, &LeaveGroupInput{GroupID: 7}))

	_, err = s.service.CreateGroup(s.ctx, &CreateGroupInput{})
	s.ErrorIs(err, ErrEmptyGroupName)
}

func (s *RankingServiceTestSuite) TestMyGroups() {
	s.mockClient.EXPECT().
		MyGroups(gomock.Any(), &tikkle.MyGroupsInput{}).
		Return(&tikkle.MyGroupsOutput{Groups: []*models.RankGroup{{ID: 1, Name: "Work"}}}, nil)

	output, err := s.service.MyGroups(s.ctx, &MyGroupsInput{})
	s.Require().NoError(err)
	s.Len(output.Groups, 1)
}

func TestInviteCode(t *testing.T) {
	cases := map[string]string{
		"AB12":                                 "AB12",
		"  AB12 ":                              "AB12",
		"https://tikkle.example.com/join/AB12": "AB12",
		"http://localhost:5173/join/a%20b/":    "a b",
		"":                                     "",
	}

	for in, want := range cases {
		if got := InviteCode(in); got != want {
			t.Errorf("InviteCode(%q) = %q, want %q", in, got, want)
		}
	}
}
