package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmonterrosa/scoring-dashboard/livedata"
	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/hmonterrosa/scoring-dashboard/repositories"
)

var ErrScoreRecordFailed = errors.New("failed to record score")

type ScoringService interface {
	RecordScore(ctx context.Context, input RecordScoreInput) (*models.Score, error)
	RecentScores(ctx context.Context, gameID string, limit int) ([]RecentScore, error)
}

type RecordScoreInput struct {
	GameID    string           `json:"game_id"`
	PlayerID  string           `json:"player_id"`
	PointType models.PointType `json:"point_type"`
}

// RecentScore is a score joined with whatever player and game still exist.
type RecentScore struct {
	Score  models.Score   `json:"score"`
	Player *models.Player `json:"player,omitempty"`
	Game   *models.Game   `json:"game,omitempty"`
}

type scoringService struct {
	txBeginner repositories.TxBeginner
	scoreRepo  repositories.ScoreRepository
	gameRepo   repositories.GameRepository
	playerRepo repositories.PlayerRepository
	store      *livedata.Store
}

func NewScoringService(
	txBeginner repositories.TxBeginner,
	scoreRepo repositories.ScoreRepository,
	gameRepo repositories.GameRepository,
	playerRepo repositories.PlayerRepository,
	store *livedata.Store,
) ScoringService {
	return &scoringService{
		txBeginner: txBeginner,
		scoreRepo:  scoreRepo,
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		store:      store,
	}
}

// RecordScore appends a score and bumps the player's denormalized total in a
// single transaction, so the Score row and players.total_points cannot drift
// apart on a partial failure.
func (s *scoringService) RecordScore(ctx context.Context, input RecordScoreInput) (*models.Score, error) {
	if input.GameID == "" || input.PlayerID == "" {
		return nil, ErrScoreSelectionIncomplete
	}
	if !input.PointType.Valid() {
		return nil, ErrInvalidPointType
	}

	game, err := s.gameRepo.GetByID(ctx, input.GameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrScoreRecordFailed, err)
	}

	points := game.WinPoints
	if input.PointType == models.PointTypeParticipation {
		points = game.ParticipationPoints
	}

	score := &models.Score{
		PlayerID: input.PlayerID,
		GameID:   input.GameID,
		Points:   points,
	}

	tx, err := s.txBeginner.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScoreRecordFailed, err)
	}
	defer tx.Rollback()

	if err := s.scoreRepo.Create(ctx, tx, score); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScoreRecordFailed, err)
	}
	if err := s.playerRepo.AddPoints(ctx, tx, input.PlayerID, points); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrScoreRecordFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScoreRecordFailed, err)
	}

	s.refresh(ctx)
	return score, nil
}

func (s *scoringService) RecentScores(ctx context.Context, gameID string, limit int) ([]RecentScore, error) {
	scores, err := s.scoreRepo.ListRecent(ctx, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent scores: %w", err)
	}

	games := make(map[string]*models.Game)
	players := make(map[string]*models.Player)
	if s.store != nil {
		for _, g := range s.store.Games() {
			game := g
			games[game.ID] = &game
		}
		for _, p := range s.store.Players() {
			player := p
			players[player.ID] = &player
		}
	}

	recent := make([]RecentScore, 0, len(scores))
	for _, score := range scores {
		// Deleted games or players simply leave the join fields nil.
		recent = append(recent, RecentScore{
			Score:  score,
			Player: players[score.PlayerID],
			Game:   games[score.GameID],
		})
	}
	return recent, nil
}

func (s *scoringService) refresh(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Refresh(ctx, livedata.CollectionScores); err != nil {
		fmt.Printf("failed to refresh scores collection: %v\n", err)
	}
	if err := s.store.Refresh(ctx, livedata.CollectionPlayers); err != nil {
		fmt.Printf("failed to refresh players collection: %v\n", err)
	}
}
