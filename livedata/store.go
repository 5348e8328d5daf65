// Package livedata keeps in-memory snapshots of the games, players and
// scores collections and notifies subscribers whenever one of them changes.
// It stands in for the push-based document store the dashboard clients used
// to subscribe to directly: writers refresh a collection after a successful
// mutation and a periodic full refresh backs up the push path.
package livedata

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/hmonterrosa/scoring-dashboard/repositories"
	"golang.org/x/sync/errgroup"
)

type Collection string

const (
	CollectionGames   Collection = "games"
	CollectionPlayers Collection = "players"
	CollectionScores  Collection = "scores"
)

// Store serves read snapshots and a subscription interface over the three
// collections. Snapshot getters return copies; mutating a returned slice
// never affects the store.
type Store struct {
	gameRepo   repositories.GameRepository
	playerRepo repositories.PlayerRepository
	scoreRepo  repositories.ScoreRepository
	logger     *slog.Logger

	mu         sync.RWMutex
	games      []models.Game
	players    []models.Player
	scores     []models.Score
	lastUpdate time.Time

	subMu     sync.Mutex
	subs      map[Collection]map[int]func(Collection)
	nextSubID int
}

func NewStore(
	gameRepo repositories.GameRepository,
	playerRepo repositories.PlayerRepository,
	scoreRepo repositories.ScoreRepository,
	logger *slog.Logger,
) *Store {
	return &Store{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		scoreRepo:  scoreRepo,
		logger:     logger,
		subs:       make(map[Collection]map[int]func(Collection)),
	}
}

// Load performs the initial bulk fetch of all three collections concurrently.
func (s *Store) Load(ctx context.Context) error {
	var (
		games   []models.Game
		players []models.Player
		scores  []models.Score
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		scores, err = s.scoreRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("initial collection load failed: %w", err)
	}

	s.mu.Lock()
	s.games = games
	s.players = players
	s.scores = scores
	s.lastUpdate = time.Now()
	s.mu.Unlock()

	s.notify(CollectionGames)
	s.notify(CollectionPlayers)
	s.notify(CollectionScores)
	return nil
}

// Refresh re-reads a single collection and notifies its subscribers.
func (s *Store) Refresh(ctx context.Context, collection Collection) error {
	switch collection {
	case CollectionGames:
		games, err := s.gameRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("refresh games: %w", err)
		}
		s.mu.Lock()
		s.games = games
		s.lastUpdate = time.Now()
		s.mu.Unlock()
	case CollectionPlayers:
		players, err := s.playerRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("refresh players: %w", err)
		}
		s.mu.Lock()
		s.players = players
		s.lastUpdate = time.Now()
		s.mu.Unlock()
	case CollectionScores:
		scores, err := s.scoreRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("refresh scores: %w", err)
		}
		s.mu.Lock()
		s.scores = scores
		s.lastUpdate = time.Now()
		s.mu.Unlock()
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}

	s.notify(collection)
	return nil
}

// RefreshAll is the polling fallback used by the background scheduler.
func (s *Store) RefreshAll(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	s.logger.Info("live data store refreshed", slog.Time("last_update", s.LastUpdate()))
	return nil
}

// Subscribe registers a change callback for one collection and returns its
// unsubscribe function. Callbacks run synchronously on the goroutine that
// triggered the refresh and must not block.
func (s *Store) Subscribe(collection Collection, fn func(Collection)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	if _, ok := s.subs[collection]; !ok {
		s.subs[collection] = make(map[int]func(Collection))
	}
	id := s.nextSubID
	s.nextSubID++
	s.subs[collection][id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs[collection], id)
	}
}

func (s *Store) notify(collection Collection) {
	s.subMu.Lock()
	fns := make([]func(Collection), 0, len(s.subs[collection]))
	for _, fn := range s.subs[collection] {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(collection)
	}
}

func (s *Store) Games() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]models.Game, len(s.games))
	copy(games, s.games)
	return games
}

func (s *Store) Players() []models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]models.Player, len(s.players))
	copy(players, s.players)
	return players
}

func (s *Store) Scores() []models.Score {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores := make([]models.Score, len(s.scores))
	copy(scores, s.scores)
	return scores
}

func (s *Store) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}
