package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/hmonterrosa/scoring-dashboard/models"
)

// ScoreRepository is append-only: scores are never updated or deleted, which
// is what keeps the players.total_points counter trustworthy.
type ScoreRepository interface {
	Create(ctx context.Context, exec SQLExecutor, score *models.Score) error
	GetAll(ctx context.Context) ([]models.Score, error)
	ListRecent(ctx context.Context, gameID string, limit int) ([]models.Score, error)
}

type postgresScoreRepository struct {
	db *sql.DB
}

func NewPostgresScoreRepository(db *sql.DB) ScoreRepository {
	return &postgresScoreRepository{db: db}
}

func (r *postgresScoreRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresScoreRepository) Create(ctx context.Context, exec SQLExecutor, score *models.Score) error {
	executor := r.getExecutor(exec)

	if score.ID == "" {
		score.ID = uuid.NewString()
	}
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now()
	}

	// player_id and game_id are plain columns, not foreign keys: a score must
	// survive the later deletion of its game or player.
	query := `
		INSERT INTO scores (id, player_id, game_id, points, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := executor.ExecContext(ctx, query,
		score.ID, score.PlayerID, score.GameID, score.Points, score.CreatedAt)
	return err
}

func (r *postgresScoreRepository) GetAll(ctx context.Context) ([]models.Score, error) {
	query := `
		SELECT id, player_id, game_id, points, created_at
		FROM scores ORDER BY created_at DESC`

	return r.queryScores(ctx, query)
}

func (r *postgresScoreRepository) ListRecent(ctx context.Context, gameID string, limit int) ([]models.Score, error) {
	if limit <= 0 {
		limit = 10
	}
	if gameID != "" {
		query := `
			SELECT id, player_id, game_id, points, created_at
			FROM scores WHERE game_id = $1 ORDER BY created_at DESC LIMIT $2`
		return r.queryScores(ctx, query, gameID, limit)
	}
	query := `
		SELECT id, player_id, game_id, points, created_at
		FROM scores ORDER BY created_at DESC LIMIT $1`
	return r.queryScores(ctx, query, limit)
}

func (r *postgresScoreRepository) queryScores(ctx context.Context, query string, args ...interface{}) ([]models.Score, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]models.Score, 0)
	for rows.Next() {
		var score models.Score
		if scanErr := rows.Scan(
			&score.ID, &score.PlayerID, &score.GameID, &score.Points, &score.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}
