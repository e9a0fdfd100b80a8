package seen_badge

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/repositories/storage"
	storageMocks "github.com/KirkDiggler/tikkle/internal/repositories/storage/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerTestSuite struct {
	suite.Suite
	ctx     context.Context
	storage storage.Storage
	ledger  Repository
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = storage.NewMemory()

	l, err := New(&Config{Storage: s.storage})
	s.Require().NoError(err)
	s.ledger = l
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) TestFreshLedger() {
	s.False(s.ledger.IsInitialized(s.ctx))
	s.Empty(s.ledger.Get(s.ctx))
}

func (s *LedgerTestSuite) TestMarkInitialized() {
	baseline := models.SeenBadges{"FIRST_SAVE": "2024-01-01T00:00:00Z"}

	err := s.ledger.MarkInitialized(s.ctx, &MarkInitializedInput{Baseline: baseline})
	s.Require().NoError(err)

	s.True(s.ledger.IsInitialized(s.ctx))
	s.Equal(baseline, s.ledger.Get(s.ctx))

	flag, err := s.storage.Get(s.ctx, "seenBadgesInitialized")
	s.Require().NoError(err)
	s.NotEmpty(flag)
}

func (s *LedgerTestSuite) TestMarkInitializedIsIdempotent() {
	first := models.SeenBadges{"A": "2024-01-01T00:00:00Z"}
	s.Require().NoError(s.ledger.MarkInitialized(s.ctx, &MarkInitializedInput{Baseline: first}))

	// A badge surfaced after the baseline
	next := first.Clone()
	next["B"] = "2024-02-01T00:00:00Z"
	s.Require().NoError(s.ledger.Put(s.ctx, &PutInput{Seen: next}))

	// A duplicate first-run must not roll the map back
	s.Require().NoError(s.ledger.MarkInitialized(s.ctx, &MarkInitializedInput{
		Baseline: models.SeenBadges{"A": "2024-01-01T00:00:00Z"},
	}))

	s.Equal(next, s.ledger.Get(s.ctx))
}

func (s *LedgerTestSuite) TestMarkInitializedWithEmptyBaseline() {
	s.Require().NoError(s.ledger.MarkInitialized(s.ctx, &MarkInitializedInput{}))

	s.True(s.ledger.IsInitialized(s.ctx))
	s.Empty(s.ledger.Get(s.ctx))

	raw, err := s.storage.Get(s.ctx, "seenBadges")
	s.Require().NoError(err)
	s.Equal("{}", raw)
}

func (s *LedgerTestSuite) TestPutOverwrites() {
	s.Require().NoError(s.ledger.Put(s.ctx, &PutInput{Seen: models.SeenBadges{"A": "1"}}))
	s.Require().NoError(s.ledger.Put(s.ctx, &PutInput{Seen: models.SeenBadges{"B": "2"}}))

	s.Equal(models.SeenBadges{"B": "2"}, s.ledger.Get(s.ctx))
}

func (s *LedgerTestSuite) TestCorruptStorageReadsAsEmpty() {
	for _, raw := range []string{"{not json", "[1,2,3]", "null", `{"A":1}`} {
		s.Require().NoError(s.storage.Set(s.ctx, "seenBadges", raw))

		seen := s.ledger.Get(s.ctx)
		s.NotNil(seen, raw)
		s.Empty(seen, raw)
	}
}

func (s *LedgerTestSuite) TestEmptyFlagIsNotInitialized() {
	s.Require().NoError(s.storage.Set(s.ctx, "seenBadgesInitialized", ""))
	s.False(s.ledger.IsInitialized(s.ctx))
}

func (s *LedgerTestSuite) TestNilInputs() {
	s.ErrorIs(s.ledger.MarkInitialized(s.ctx, nil), ErrNilInput)
	s.ErrorIs(s.ledger.Put(s.ctx, nil), ErrNilInput)
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); err != ErrNilConfig {
		t.Fatalf("expected ErrNilConfig, got %v", err)
	}
	if _, err := New(&Config{}); err != ErrNilStorage {
		t.Fatalf("expected ErrNilStorage, got %v", err)
	}
}

type LedgerStorageFailureTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	mockStorage *storageMocks.MockStorage
	ledger      Repository
}

func (s *LedgerStorageFailureTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStorage = storageMocks.NewMockStorage(s.mockCtrl)

	l, err := New(&Config{Storage: s.mockStorage})
	s.Require().NoError(err)
	s.ledger = l
}

func (s *LedgerStorageFailureTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerStorageFailureTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerStorageFailureTestSuite))
}

func (s *LedgerStorageFailureTestSuite) TestGetSwallowsReadErrors() {
	s.mockStorage.EXPECT().
		Get(gomock.Any(), "seenBadges").
		Return("", errors.New("disk on fire"))

	s.Equal(models.SeenBadges{}, s.ledger.Get(s.ctx))
}

func (s *LedgerStorageFailureTestSuite) TestIsInitializedSwallowsReadErrors() {
	s.mockStorage.EXPECT().
		Get(gomock.Any(), "seenBadgesInitialized").
		Return("", errors.New("disk on fire"))

	s.False(s.ledger.IsInitialized(s.ctx))
}

func (s *LedgerStorageFailureTestSuite) TestFlagNotSetWhenBaselineWriteFails() {
	writeErr := errors.New("quota exceeded")

	s.mockStorage.EXPECT().
		Get(gomock.Any(), "seenBadgesInitialized").
		Return("", storage.ErrNotFound)
	s.mockStorage.EXPECT().
		Set(gomock.Any(), "seenBadges", `{"A":"t1"}`).
		Return(writeErr)
	// No Set on the flag key is expected

	err := s.ledger.MarkInitialized(s.ctx, &MarkInitializedInput{
		Baseline: models.SeenBadges{"A": "t1"},
	})
	s.ErrorIs(err, writeErr)
}

func (s *LedgerStorageFailureTestSuite) TestPutReturnsWriteErrors() {
	writeErr := errors.New("quota exceeded")

	s.mockStorage.EXPECT().
		Set(gomock.Any(), "seenBadges", `{"B":"t2"}`).
		Return(writeErr)

	err := s.ledger.Put(s.ctx, &PutInput{Seen: models.SeenBadges{"B": "t2"}})
	s.ErrorIs(err, writeErr)
}

func TestLedgerOverRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store, err := storage.NewRedis(&storage.Config{RedisClient: client, Profile: "p1"})
	if err != nil {
		t.Fatal(err)
	}

	l, err := New(&Config{Storage: store})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := l.MarkInitialized(ctx, &MarkInitializedInput{
		Baseline: models.SeenBadges{"A": "2024-01-01T00:00:00Z"},
	}); err != nil {
		t.Fatal(err)
	}

	// A second process on the same profile sees the same ledger
	reopened, err := New(&Config{Storage: store})
	if err != nil {
		t.Fatal(err)
	}
	if !reopened.IsInitialized(ctx) {
		t.Fatal("expected ledger to be initialized")
	}
	if got := reopened.Get(ctx)["A"]; got != "2024-01-01T00:00:00Z" {
		t.Fatalf("unexpected seen value %q", got)
	}
}
