package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/lib/pq"
)

var (
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerNumberConflict = errors.New("player number conflict")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id string) (*models.Player, error)
	GetAll(ctx context.Context) ([]models.Player, error)
	Delete(ctx context.Context, id string) error
	AddPoints(ctx context.Context, exec SQLExecutor, id string, points int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO players (id, name, player_number, country, color, total_points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		player.ID, player.Name, player.PlayerNumber, player.Country,
		player.Color, player.TotalPoints, player.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "players_player_number_key" {
				return ErrPlayerNumberConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	query := `
		SELECT id, name, player_number, country, color, total_points, created_at
		FROM players WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresPlayerRepository) scanOne(row *sql.Row) (*models.Player, error) {
	var player models.Player
	err := row.Scan(
		&player.ID, &player.Name, &player.PlayerNumber, &player.Country,
		&player.Color, &player.TotalPoints, &player.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *postgresPlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT id, name, player_number, country, color, total_points, created_at
		FROM players ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(
			&player.ID, &player.Name, &player.PlayerNumber, &player.Country,
			&player.Color, &player.TotalPoints, &player.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id string) error {
	// Scores are not cascade-deleted; orphaned scores are skipped by the
	// aggregator.
	query := `DELETE FROM players WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

// AddPoints applies a relative increment so concurrent writers cannot lose
// updates. It takes an executor to join the scoring transaction.
func (r *postgresPlayerRepository) AddPoints(ctx context.Context, exec SQLExecutor, id string, points int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE players SET total_points = total_points + $1 WHERE id = $2`

	result, err := executor.ExecContext(ctx, query, points, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}
