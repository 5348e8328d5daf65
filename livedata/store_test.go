package livedata

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/hmonterrosa/scoring-dashboard/repositories"
	"github.com/stretchr/testify/suite"
)

type stubGameRepo struct {
	mu    sync.Mutex
	games []models.Game
	err   error
}

func (r *stubGameRepo) Create(context.Context, *models.Game) error { return errors.New("not implemented") }
func (r *stubGameRepo) GetByID(context.Context, string) (*models.Game, error) {
	return nil, repositories.ErrGameNotFound
}
func (r *stubGameRepo) GetAll(context.Context) ([]models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	games := make([]models.Game, len(r.games))
	copy(games, r.games)
	return games, nil
}
func (r *stubGameRepo) Delete(context.Context, string) error { return errors.New("not implemented") }
func (r *stubGameRepo) UpdateLogoKey(context.Context, string, *string) error {
	return errors.New("not implemented")
}

type stubPlayerRepo struct {
	mu      sync.Mutex
	players []models.Player
}

func (r *stubPlayerRepo) set(players []models.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
}

func (r *stubPlayerRepo) Create(context.Context, *models.Player) error {
	return errors.New("not implemented")
}
func (r *stubPlayerRepo) GetByID(context.Context, string) (*models.Player, error) {
	return nil, repositories.ErrPlayerNotFound
}
func (r *stubPlayerRepo) GetAll(context.Context) ([]models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	players := make([]models.Player, len(r.players))
	copy(players, r.players)
	return players, nil
}
func (r *stubPlayerRepo) Delete(context.Context, string) error { return errors.New("not implemented") }
func (r *stubPlayerRepo) AddPoints(context.Context, repositories.SQLExecutor, string, int) error {
	return errors.New("not implemented")
}

type stubScoreRepo struct {
	mu     sync.Mutex
	scores []models.Score
}

func (r *stubScoreRepo) Create(context.Context, repositories.SQLExecutor, *models.Score) error {
	return errors.New("not implemented")
}
func (r *stubScoreRepo) GetAll(context.Context) ([]models.Score, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scores := make([]models.Score, len(r.scores))
	copy(scores, r.scores)
	return scores, nil
}
func (r *stubScoreRepo) ListRecent(context.Context, string, int) ([]models.Score, error) {
	return nil, errors.New("not implemented")
}

type StoreTestSuite struct {
	suite.Suite
	gameRepo   *stubGameRepo
	playerRepo *stubPlayerRepo
	scoreRepo  *stubScoreRepo
	store      *Store
	ctx        context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.gameRepo = &stubGameRepo{games: []models.Game{{ID: "g1", Name: "Ping Pong"}}}
	s.playerRepo = &stubPlayerRepo{players: []models.Player{{ID: "p1", Name: "Ana", PlayerNumber: "0811"}}}
	s.scoreRepo = &stubScoreRepo{scores: []models.Score{{ID: "s1", PlayerID: "p1", GameID: "g1", Points: 3}}}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	s.store = NewStore(s.gameRepo, s.playerRepo, s.scoreRepo, logger)
	s.ctx = context.Background()
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestLoadPopulatesAllCollections() {
	s.Require().NoError(s.store.Load(s.ctx))

	s.Len(s.store.Games(), 1)
	s.Len(s.store.Players(), 1)
	s.Len(s.store.Scores(), 1)
	s.False(s.store.LastUpdate().IsZero())
}

func (s *StoreTestSuite) TestLoadPropagatesFetchErrors() {
	s.gameRepo.err = errors.New("connection refused")
	s.Error(s.store.Load(s.ctx))
}

func (s *StoreTestSuite) TestSnapshotsAreCopies() {
	s.Require().NoError(s.store.Load(s.ctx))

	games := s.store.Games()
	games[0].Name = "mutated"

	s.Equal("Ping Pong", s.store.Games()[0].Name)
}

func (s *StoreTestSuite) TestRefreshNotifiesSubscribers() {
	s.Require().NoError(s.store.Load(s.ctx))

	var gotCollection Collection
	calls := 0
	unsubscribe := s.store.Subscribe(CollectionPlayers, func(c Collection) {
		gotCollection = c
		calls++
	})
	defer unsubscribe()

	s.playerRepo.set([]models.Player{
		{ID: "p1", Name: "Ana"},
		{ID: "p2", Name: "Luis"},
	})
	s.Require().NoError(s.store.Refresh(s.ctx, CollectionPlayers))

	s.Equal(CollectionPlayers, gotCollection)
	s.Equal(1, calls)
	s.Len(s.store.Players(), 2)
}

func (s *StoreTestSuite) TestRefreshOtherCollectionDoesNotNotify() {
	s.Require().NoError(s.store.Load(s.ctx))

	calls := 0
	unsubscribe := s.store.Subscribe(CollectionGames, func(Collection) { calls++ })
	defer unsubscribe()

	s.Require().NoError(s.store.Refresh(s.ctx, CollectionScores))
	s.Equal(0, calls)
}

func (s *StoreTestSuite) TestUnsubscribeStopsNotifications() {
	s.Require().NoError(s.store.Load(s.ctx))

	calls := 0
	unsubscribe := s.store.Subscribe(CollectionScores, func(Collection) { calls++ })
	unsubscribe()

	s.Require().NoError(s.store.Refresh(s.ctx, CollectionScores))
	s.Equal(0, calls)
}

func (s *StoreTestSuite) TestRefreshUnknownCollection() {
	s.Error(s.store.Refresh(s.ctx, Collection("bogus")))
}

func (s *StoreTestSuite) TestRefreshAdvancesLastUpdate() {
	s.Require().NoError(s.store.Load(s.ctx))
	first := s.store.LastUpdate()

	s.Require().NoError(s.store.Refresh(s.ctx, CollectionGames))
	s.False(s.store.LastUpdate().Before(first))
}
