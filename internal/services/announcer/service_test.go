package announcer

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	tikklemocks "github.com/KirkDiggler/tikkle/internal/clients/tikkle/mocks"
	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/repositories/seen_badge"
	ledgermocks "github.com/KirkDiggler/tikkle/internal/repositories/seen_badge/mocks"
	"github.com/KirkDiggler/tikkle/internal/repositories/storage"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakePresenter struct {
	mu       sync.Mutex
	opened   []string
	closed   []string
	failOpen map[string]bool
}

func (p *fakePresenter) Open(_ context.Context, badge *models.Badge) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failOpen[badge.Code] {
		return errors.New("surface unavailable")
	}
	p.opened = append(p.opened, badge.Code)
	return nil
}

func (p *fakePresenter) Close(_ context.Context, badge *models.Badge) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = append(p.closed, badge.Code)
	return nil
}

func (p *fakePresenter) Opened() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.opened...)
}

func (p *fakePresenter) Closed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.closed...)
}

type fakeCelebrator struct {
	mu     sync.Mutex
	counts map[string]int
	total  int
	panics bool
}

func (c *fakeCelebrator) Celebrate(_ context.Context, badge *models.Badge) error {
	c.mu.Lock()
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[badge.Code]++
	c.total++
	panics := c.panics
	c.mu.Unlock()

	if panics {
		panic("confetti exploded")
	}
	return nil
}

func (c *fakeCelebrator) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

type fakeDismissSource struct {
	mu       sync.Mutex
	handlers []func()
	active   int
}

func (d *fakeDismissSource) Subscribe(onDismiss func()) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, onDismiss)
	d.active++
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.active--
	}
}

// Fire invokes the handler of the i-th subscription, live or not
func (d *fakeDismissSource) Fire(i int) {
	d.mu.Lock()
	handler := d.handlers[i]
	d.mu.Unlock()
	handler()
}

func (d *fakeDismissSource) Active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

func badge(code, earnedAt string) *models.Badge {
	b := &models.Badge{
		Code:   code,
		Title:  "Badge " + code,
		Icon:   "🏅",
		Earned: earnedAt != "",
	}
	if earnedAt != "" {
		b.EarnedAt = &earnedAt
	}
	return b
}

type AnnouncerTestSuite struct {
	suite.Suite
	ctx        context.Context
	cancel     context.CancelFunc
	ctrl       *gomock.Controller
	directory  *tikklemocks.MockClient
	store      storage.Storage
	ledger     seen_badge.Repository
	presenter  *fakePresenter
	celebrator *fakeCelebrator
	dismissals *fakeDismissSource
	service    *service
	runDone    chan error
}

func (s *AnnouncerTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.ctrl = gomock.NewController(s.T())
	s.directory = tikklemocks.NewMockClient(s.ctrl)
	s.store = storage.NewMemory()

	ledger, err := seen_badge.New(&seen_badge.Config{Storage: s.store})
	s.Require().NoError(err)
	s.ledger = ledger

	s.presenter = &fakePresenter{}
	s.celebrator = &fakeCelebrator{}
	s.dismissals = &fakeDismissSource{}

	s.service = s.newService(false)
	s.runDone = make(chan error, 1)
	go func() {
		s.runDone <- s.service.Run(s.ctx)
	}()
}

func (s *AnnouncerTestSuite) newService(serialize bool) *service {
	svc, err := New(&Config{
		Directory:      s.directory,
		Ledger:         s.ledger,
		Presenter:      s.presenter,
		Celebrator:     s.celebrator,
		DismissSource:  s.dismissals,
		SerializeScans: serialize,
	})
	s.Require().NoError(err)
	return svc
}

func (s *AnnouncerTestSuite) TearDownTest() {
	s.cancel()
	select {
	case err := <-s.runDone:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("announcer did not stop")
	}
	s.ctrl.Finish()
}

func TestAnnouncerTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncerTestSuite))
}

func (s *AnnouncerTestSuite) expectBadges(badges ...*models.Badge) *gomock.Call {
	return s.directory.EXPECT().
		ListBadges(gomock.Any(), gomock.Any()).
		Return(&tikkle.ListBadgesOutput{Badges: badges}, nil)
}

func (s *AnnouncerTestSuite) initialize(seen models.SeenBadges) {
	s.Require().NoError(s.ledger.MarkInitialized(s.ctx, &seen_badge.MarkInitializedInput{Baseline: seen}))
}

// state round-trips through the loop, so every event posted before it
// has been handled when it returns
func (s *AnnouncerTestSuite) state() *StateOutput {
	out, err := s.service.State(s.ctx)
	s.Require().NoError(err)
	return out
}

func codes(badges []*models.Badge) []string {
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.Code)
	}
	return out
}

func (s *AnnouncerTestSuite) TestBaselineIsIdempotent() {
	s.expectBadges(
		badge("A", "2024-01-01T00:00:00Z"),
		badge("L", ""),
	).Times(1)

	s.Require().NoError(s.service.InitializeBaseline(s.ctx))
	first := s.ledger.Get(s.ctx)

	s.Require().NoError(s.service.InitializeBaseline(s.ctx))

	s.True(s.ledger.IsInitialized(s.ctx))
	s.Equal(models.SeenBadges{"A": "2024-01-01T00:00:00Z"}, first)
	s.Equal(first, s.ledger.Get(s.ctx))

	state := s.state()
	s.False(state.Displaying())
	s.Empty(state.Pending)
	s.Empty(s.presenter.Opened())
}

func (s *AnnouncerTestSuite) TestFirstScanRecordsBaselineWithoutAnnouncing() {
	s.expectBadges(
		badge("A", "2024-01-01T00:00:00Z"),
		badge("B", "2024-02-01T00:00:00Z"),
	).Times(1)

	s.service.TriggerScan(s.ctx)

	s.True(s.ledger.IsInitialized(s.ctx))
	s.Len(s.ledger.Get(s.ctx), 2)
	s.False(s.state().Displaying())
	s.Empty(s.presenter.Opened())
}

func (s *AnnouncerTestSuite) TestBaselineFetchFailureLeavesLedgerUninitialized() {
	s.directory.EXPECT().
		ListBadges(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := s.service.InitializeBaseline(s.ctx)
	s.Require().Error(err)
	s.False(s.ledger.IsInitialized(s.ctx))

	s.expectBadges(badge("A", "2024-01-01T00:00:00Z"))

	s.Require().NoError(s.service.InitializeBaseline(s.ctx))
	s.True(s.ledger.IsInitialized(s.ctx))
}

func (s *AnnouncerTestSuite) TestBaselineNotRecordedWhenSignedOut() {
	s.directory.EXPECT().
		ListBadges(gomock.Any(), gomock.Any()).
		Return(nil, &tikkle.APIError{Status: http.StatusUnauthorized, Message: "login required"})

	s.service.TriggerScan(s.ctx)

	s.False(s.ledger.IsInitialized(s.ctx))
}

func (s *AnnouncerTestSuite) TestNoDuplicateAnnouncement() {
	s.initialize(models.SeenBadges{"A": "2024-01-01T00:00:00Z"})
	s.expectBadges(badge("A", "2024-01-01T00:00:00Z")).Times(2)

	s.service.TriggerScan(s.ctx)
	s.service.TriggerScan(s.ctx)

	s.False(s.state().Displaying())
	s.Empty(s.presenter.Opened())
}

func (s *AnnouncerTestSuite) TestNewEarnDetection() {
	s.initialize(models.SeenBadges{"A": "2024-01-01T00:00:00Z"})
	s.expectBadges(
		badge("A", "2024-01-01T00:00:00Z"),
		badge("B", "2024-02-01T00:00:00Z"),
	)

	s.service.TriggerScan(s.ctx)

	state := s.state()
	s.Require().True(state.Displaying())
	s.Equal("B", state.Current.Code)
	s.Empty(state.Pending)
	s.Equal([]string{"B"}, s.presenter.Opened())

	s.Equal(models.SeenBadges{
		"A": "2024-01-01T00:00:00Z",
		"B": "2024-02-01T00:00:00Z",
	}, s.ledger.Get(s.ctx))
}

func (s *AnnouncerTestSuite) TestReEarnedBadgeIsAnnouncedAgain() {
	s.initialize(models.SeenBadges{"A": "2024-01-01T00:00:00Z"})
	s.expectBadges(badge("A", "2024-06-01T00:00:00Z"))

	s.service.TriggerScan(s.ctx)

	s.True(s.state().Displaying())
	s.Equal([]string{"A"}, s.presenter.Opened())
	s.Equal("2024-06-01T00:00:00Z", s.ledger.Get(s.ctx)["A"])
}

func (s *AnnouncerTestSuite) TestFIFOPresentation() {
	s.initialize(models.SeenBadges{})
	s.expectBadges(
		badge("B", "2024-02-01T00:00:00Z"),
		badge("C", "2024-01-01T00:00:00Z"),
	)

	s.service.TriggerScan(s.ctx)

	state := s.state()
	s.Equal("B", state.Current.Code)
	s.Equal([]string{"C"}, codes(state.Pending))
	s.Equal([]string{"B"}, s.presenter.Opened())

	s.service.Dismiss()

	state = s.state()
	s.Equal("C", state.Current.Code)
	s.Empty(state.Pending)
	s.Equal([]string{"B", "C"}, s.presenter.Opened())
	s.Equal([]string{"B"}, s.presenter.Closed())

	s.service.Dismiss()

	state = s.state()
	s.False(state.Displaying())
	s.Equal([]string{"B", "C"}, s.presenter.Closed())
}

func (s *AnnouncerTestSuite) TestLaterScanQueuesBehindCurrentDisplay() {
	s.initialize(models.SeenBadges{})
	first := s.expectBadges(badge("A", "2024-01-01T00:00:00Z"))
	s.expectBadges(
		badge("A", "2024-01-01T00:00:00Z"),
		badge("B", "2024-02-01T00:00:00Z"),
	).After(first)

	s.service.TriggerScan(s.ctx)
	s.service.TriggerScan(s.ctx)

	state := s.state()
	s.Equal("A", state.Current.Code)
	s.Equal([]string{"B"}, codes(state.Pending))
}

func (s *AnnouncerTestSuite) TestSingleFireCelebration() {
	s.initialize(models.SeenBadges{})
	first := s.expectBadges(badge("A", "2024-01-01T00:00:00Z"))

	s.service.TriggerScan(s.ctx)
	s.service.Refresh()
	s.service.Refresh()
	s.service.Refresh()

	state := s.state()
	s.True(state.Celebrated)
	s.Equal(1, s.celebrator.Total())

	s.service.Dismiss()

	// the same code re-earned is a distinct display and celebrates again
	s.expectBadges(badge("A", "2024-03-01T00:00:00Z")).After(first)
	s.service.TriggerScan(s.ctx)
	s.service.Refresh()

	state = s.state()
	s.Equal(uint64(2), state.Displays)
	s.Equal(2, s.celebrator.Total())
}

func (s *AnnouncerTestSuite) TestLockedBadgesNeverAnnounced() {
	s.initialize(models.SeenBadges{})
	s.expectBadges(
		badge("L", ""),
		&models.Badge{Code: "E", Title: "Earned without timestamp", Earned: true},
	)

	s.service.TriggerScan(s.ctx)

	s.False(s.state().Displaying())
	s.Empty(s.presenter.Opened())
	s.Empty(s.ledger.Get(s.ctx))
}

func (s *AnnouncerTestSuite) TestCorruptLedgerAnnouncesAgain() {
	s.initialize(models.SeenBadges{})
	s.Require().NoError(s.store.Set(s.ctx, "seenBadges", "{not json"))
	s.expectBadges(badge("A", "2024-01-01T00:00:00Z"))

	s.service.TriggerScan(s.ctx)

	s.True(s.state().Displaying())
	s.Equal([]string{"A"}, s.presenter.Opened())
	s.Equal(models.SeenBadges{"A": "2024-01-01T00:00:00Z"}, s.ledger.Get(s.ctx))
}

func (s *AnnouncerTestSuite) TestUnauthorizedScanIsEmpty() {
	s.initialize(models.SeenBadges{"A": "2024-01-01T00:00:00Z"})
	s.directory.EXPECT().
		ListBadges(gomock.Any(), gomock.Any()).
		Return(nil, &tikkle.APIError{Status: http.StatusUnauthorized})

	s.service.TriggerScan(s.ctx)

	s.False(s.state().Displaying())
	s.Equal(models.SeenBadges{"A": "2024-01-01T00:00:00Z"}, s.ledger.Get(s.ctx))
}

func (s *AnnouncerTestSuite) TestFetchFailureAbortsScan() {
	s.initialize(models.SeenBadges{})
	s.directory.EXPECT().
		ListBadges(gomock.Any(), gomock.Any()).
		Return(nil, tikkle.ErrInvalidPayload)

	s.service.TriggerScan(s.ctx)

	s.False(s.state().Displaying())
	s.Empty(s.ledger.Get(s.ctx))
}

func (s *AnnouncerTestSuite) TestCelebrationPanicDoesNotStrandQueue() {
	s.celebrator.panics = true
	s.initialize(models.SeenBadges{})
	s.expectBadges(
		badge("A", "2024-01-01T00:00:00Z"),
		badge("B", "2024-02-01T00:00:00Z"),
	)

	s.service.TriggerScan(s.ctx)
	s.Equal("A", s.state().Current.Code)

	s.service.Dismiss()

	state := s.state()
	s.Equal("B", state.Current.Code)
	s.True(state.Celebrated)
	s.Equal(2, s.celebrator.Total())
}

func (s *AnnouncerTestSuite) TestDismissSourceIsScopedToDisplay() {
	s.initialize(models.SeenBadges{})
	s.expectBadges(
		badge("A", "2024-01-01T00:00:00Z"),
		badge("B", "2024-02-01T00:00:00Z"),
	)

	s.service.TriggerScan(s.ctx)
	s.state()
	s.Equal(1, s.dismissals.Active())

	s.dismissals.Fire(0)

	state := s.state()
	s.Equal("B", state.Current.Code)
	s.Equal(1, s.dismissals.Active())

	// a late event from the first display's subscription
	s.dismissals.Fire(0)

	state = s.state()
	s.Equal("B", state.Current.Code)

	s.dismissals.Fire(1)

	state = s.state()
	s.False(state.Displaying())
	s.Equal(0, s.dismissals.Active())
}

func (s *AnnouncerTestSuite) TestPresenterFailureSkipsBadge() {
	s.presenter.failOpen = map[string]bool{"A": true}
	s.initialize(models.SeenBadges{})
	s.expectBadges(
		badge("A", "2024-01-01T00:00:00Z"),
		badge("B", "2024-02-01T00:00:00Z"),
	)

	s.service.TriggerScan(s.ctx)

	state := s.state()
	s.Equal("B", state.Current.Code)
	s.Equal([]string{"B"}, s.presenter.Opened())
}

func (s *AnnouncerTestSuite) TestDismissWhileIdleIsIgnored() {
	s.service.Dismiss()
	s.service.Refresh()

	state := s.state()
	s.False(state.Displaying())
	s.Zero(state.Displays)
	s.Empty(s.presenter.Closed())
}

func (s *AnnouncerTestSuite) TestRunTwice() {
	// the loop started in SetupTest is live once State answers
	s.state()

	s.ErrorIs(s.service.Run(s.ctx), ErrAlreadyRunning)
}

func (s *AnnouncerTestSuite) TestStopClosesCurrentDisplay() {
	s.initialize(models.SeenBadges{})
	s.expectBadges(
		badge("A", "2024-01-01T00:00:00Z"),
		badge("B", "2024-02-01T00:00:00Z"),
	)

	s.service.TriggerScan(s.ctx)
	s.Equal("A", s.state().Current.Code)

	s.cancel()
	s.Require().NoError(<-s.runDone)
	s.runDone <- nil

	s.Equal([]string{"A"}, s.presenter.Closed())
	s.Equal([]string{"A"}, s.presenter.Opened())
	s.Equal(0, s.dismissals.Active())
}

func (s *AnnouncerTestSuite) TestScanAfterStopIsNoop() {
	s.initialize(models.SeenBadges{})
	s.cancel()
	s.Require().NoError(<-s.runDone)
	s.runDone <- nil

	s.expectBadges(badge("A", "2024-01-01T00:00:00Z"))
	s.service.TriggerScan(context.Background())
	s.service.Dismiss()

	_, err := s.service.State(context.Background())
	s.ErrorIs(err, ErrStopped)
	s.Empty(s.presenter.Opened())

	// the ledger still records the earn event
	s.Equal("2024-01-01T00:00:00Z", s.ledger.Get(s.ctx)["A"])
}

func (s *AnnouncerTestSuite) TestSerializedScansDropOverlap() {
	svc := s.newService(true)
	s.initialize(models.SeenBadges{})

	entered := make(chan struct{})
	release := make(chan struct{})
	s.directory.EXPECT().
		ListBadges(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *tikkle.ListBadgesInput) (*tikkle.ListBadgesOutput, error) {
			close(entered)
			<-release
			return &tikkle.ListBadgesOutput{}, nil
		}).
		Times(1)

	done := make(chan struct{})
	go func() {
		svc.TriggerScan(s.ctx)
		close(done)
	}()

	<-entered
	svc.TriggerScan(s.ctx)
	close(release)
	<-done
}

func TestNewlyEarned(t *testing.T) {
	seen := models.SeenBadges{
		"A": "2024-01-01T00:00:00Z",
		"B": "2024-01-01T00:00:00Z",
	}

	badges := []*models.Badge{
		badge("C", "2024-03-01T00:00:00Z"),
		badge("A", "2024-01-01T00:00:00Z"),
		badge("B", "2024-02-02T00:00:00Z"),
		badge("L", ""),
		badge("C", "2024-03-01T00:00:00Z"),
	}

	got := codes(NewlyEarned(badges, seen))
	want := []string{"C", "B"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if newly := NewlyEarned(nil, seen); len(newly) != 0 {
		t.Fatalf("expected nothing for an empty list, got %v", codes(newly))
	}
}

type AnnouncerLedgerFailureTestSuite struct {
	suite.Suite
	ctx       context.Context
	cancel    context.CancelFunc
	ctrl      *gomock.Controller
	directory *tikklemocks.MockClient
	ledger    *ledgermocks.MockRepository
	presenter *fakePresenter
	service   *service
}

func (s *AnnouncerLedgerFailureTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.ctrl = gomock.NewController(s.T())
	s.directory = tikklemocks.NewMockClient(s.ctrl)
	s.ledger = ledgermocks.NewMockRepository(s.ctrl)
	s.presenter = &fakePresenter{}

	svc, err := New(&Config{
		Directory: s.directory,
		Ledger:    s.ledger,
		Presenter: s.presenter,
	})
	s.Require().NoError(err)
	s.service = svc
	go func() { _ = s.service.Run(s.ctx) }()
}

func (s *AnnouncerLedgerFailureTestSuite) TearDownTest() {
	s.cancel()
	s.ctrl.Finish()
}

func TestAnnouncerLedgerFailureTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncerLedgerFailureTestSuite))
}

func (s *AnnouncerLedgerFailureTestSuite) TestWriteFailureStillAnnounces() {
	s.ledger.EXPECT().IsInitialized(gomock.Any()).Return(true)
	s.directory.EXPECT().
		ListBadges(gomock.Any(), gomock.Any()).
		Return(&tikkle.ListBadgesOutput{Badges: []*models.Badge{badge("A", "2024-01-01T00:00:00Z")}}, nil)
	s.ledger.EXPECT().Get(gomock.Any()).Return(models.SeenBadges{})
	s.ledger.EXPECT().
		Put(gomock.Any(), &seen_badge.PutInput{Seen: models.SeenBadges{"A": "2024-01-01T00:00:00Z"}}).
		Return(errors.New("disk full"))

	s.service.TriggerScan(s.ctx)

	state, err := s.service.State(s.ctx)
	s.Require().NoError(err)
	s.Equal("A", state.Current.Code)
}

func (s *AnnouncerLedgerFailureTestSuite) TestBaselineWriteFailureIsReturned() {
	s.ledger.EXPECT().IsInitialized(gomock.Any()).Return(false)
	s.directory.EXPECT().
		ListBadges(gomock.Any(), gomock.Any()).
		Return(&tikkle.ListBadgesOutput{Badges: []*models.Badge{badge("A", "2024-01-01T00:00:00Z")}}, nil)
	s.ledger.EXPECT().
		MarkInitialized(gomock.Any(), &seen_badge.MarkInitializedInput{Baseline: models.SeenBadges{"A": "2024-01-01T00:00:00Z"}}).
		Return(errors.New("disk full"))

	s.Error(s.service.InitializeBaseline(s.ctx))
}

func TestNewValidation(t *testing.T) {
	cases := map[AnnouncerError]*Config{
		ErrNilConfig:    nil,
		ErrNilDirectory: {},
		ErrNilLedger:    {Directory: &tikklemocks.MockClient{}},
		ErrNilPresenter: {Directory: &tikklemocks.MockClient{}, Ledger: &ledgermocks.MockRepository{}},
	}

	for want, cfg := range cases {
		if _, err := New(cfg); err != want {
			t.Errorf("expected %v, got %v", want, err)
		}
	}
}
