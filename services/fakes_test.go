package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/hmonterrosa/scoring-dashboard/repositories"
	"github.com/hmonterrosa/scoring-dashboard/storage"
)

// In-memory repositories used across the service tests. They keep insertion
// order so list results are deterministic.

type fakeGameRepo struct {
	mu    sync.Mutex
	games []models.Game
}

func (r *fakeGameRepo) Create(_ context.Context, game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.games {
		if g.Name == game.Name {
			return repositories.ErrGameNameConflict
		}
	}
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	game.CreatedAt = time.Now()
	r.games = append(r.games, *game)
	return nil
}

func (r *fakeGameRepo) GetByID(_ context.Context, id string) (*models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.games {
		if g.ID == id {
			game := g
			return &game, nil
		}
	}
	return nil, repositories.ErrGameNotFound
}

func (r *fakeGameRepo) GetAll(_ context.Context) ([]models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	games := make([]models.Game, len(r.games))
	copy(games, r.games)
	return games, nil
}

func (r *fakeGameRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.games {
		if g.ID == id {
			r.games = append(r.games[:i], r.games[i+1:]...)
			return nil
		}
	}
	return repositories.ErrGameNotFound
}

func (r *fakeGameRepo) UpdateLogoKey(_ context.Context, id string, logoKey *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.games {
		if r.games[i].ID == id {
			r.games[i].LogoKey = logoKey
			return nil
		}
	}
	return repositories.ErrGameNotFound
}

type fakePlayerRepo struct {
	mu      sync.Mutex
	players []models.Player
}

func (r *fakePlayerRepo) Create(_ context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.PlayerNumber == player.PlayerNumber {
			return repositories.ErrPlayerNumberConflict
		}
	}
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	player.CreatedAt = time.Now()
	r.players = append(r.players, *player)
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id string) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.ID == id {
			player := p
			return &player, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) GetAll(_ context.Context) ([]models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	players := make([]models.Player, len(r.players))
	copy(players, r.players)
	return players, nil
}

func (r *fakePlayerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) AddPoints(_ context.Context, _ repositories.SQLExecutor, id string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].ID == id {
			r.players[i].TotalPoints += points
			return nil
		}
	}
	return repositories.ErrPlayerNotFound
}

type fakeScoreRepo struct {
	mu     sync.Mutex
	scores []models.Score
}

func (r *fakeScoreRepo) Create(_ context.Context, _ repositories.SQLExecutor, score *models.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if score.ID == "" {
		score.ID = uuid.NewString()
	}
	score.CreatedAt = time.Now()
	r.scores = append(r.scores, *score)
	return nil
}

func (r *fakeScoreRepo) GetAll(_ context.Context) ([]models.Score, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scores := make([]models.Score, len(r.scores))
	copy(scores, r.scores)
	return scores, nil
}

func (r *fakeScoreRepo) ListRecent(_ context.Context, gameID string, limit int) ([]models.Score, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var scores []models.Score
	for i := len(r.scores) - 1; i >= 0; i-- {
		if gameID != "" && r.scores[i].GameID != gameID {
			continue
		}
		scores = append(scores, r.scores[i])
		if len(scores) == limit {
			break
		}
	}
	return scores, nil
}

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	if t.committed {
		return sql.ErrTxDone
	}
	t.rolledBack = true
	return nil
}

type fakeTxBeginner struct {
	err    error
	lastTx *fakeTx
}

func (b *fakeTxBeginner) BeginTx(context.Context, *sql.TxOptions) (repositories.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.lastTx = &fakeTx{}
	return b.lastTx, nil
}

type fakeUploader struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (u *fakeUploader) Upload(_ context.Context, key string, _ string, _ io.Reader) (*storage.UploadResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.uploaded = append(u.uploaded, key)
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return fmt.Sprintf("https://cdn.example.com/%s", key)
}
