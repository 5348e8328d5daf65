package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hmonterrosa/scoring-dashboard/livedata"
	"github.com/hmonterrosa/scoring-dashboard/lookup"
	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/hmonterrosa/scoring-dashboard/repositories"
	"github.com/hmonterrosa/scoring-dashboard/storage"
)

var (
	ErrGameCreationFailed = errors.New("failed to create game")
	ErrGameDeleteFailed   = errors.New("failed to delete game")
	ErrLogoUploadFailed   = errors.New("failed to upload game logo")
)

type GameService interface {
	CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error)
	GetGameByID(ctx context.Context, id string) (*models.Game, error)
	GetAllGames(ctx context.Context) ([]models.Game, error)
	DeleteGame(ctx context.Context, id string) error
	UploadGameLogo(ctx context.Context, id string, file io.Reader, contentType string) (*models.Game, error)
	IconSuggestions() []lookup.IconEntry
}

type CreateGameInput struct {
	Name                string `json:"name"`
	WinPoints           int    `json:"win_points"`
	ParticipationPoints int    `json:"participation_points"`
}

type gameService struct {
	gameRepo repositories.GameRepository
	uploader storage.FileUploader
	store    *livedata.Store
}

func NewGameService(gameRepo repositories.GameRepository, uploader storage.FileUploader, store *livedata.Store) GameService {
	return &gameService{
		gameRepo: gameRepo,
		uploader: uploader,
		store:    store,
	}
}

func (s *gameService) CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrGameNameRequired
	}
	if input.WinPoints < 0 || input.ParticipationPoints < 0 {
		return nil, ErrGamePointsNegative
	}

	game := &models.Game{
		Name:                name,
		WinPoints:           input.WinPoints,
		ParticipationPoints: input.ParticipationPoints,
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameNameConflict) {
			return nil, ErrGameNameConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrGameCreationFailed, err)
	}

	s.refreshGames(ctx)
	return s.withLogoURL(game), nil
}

func (s *gameService) GetGameByID(ctx context.Context, id string) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %s: %w", id, err)
	}
	return s.withLogoURL(game), nil
}

func (s *gameService) GetAllGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all games: %w", err)
	}
	for i := range games {
		s.withLogoURL(&games[i])
	}
	return games, nil
}

func (s *gameService) DeleteGame(ctx context.Context, id string) error {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("%w (id: %s): %w", ErrGameDeleteFailed, id, err)
	}

	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("%w (id: %s): %w", ErrGameDeleteFailed, id, err)
	}

	// Existing scores for the game stay; only the stored logo is cleaned up.
	if game.LogoKey != nil && s.uploader != nil {
		if delErr := s.uploader.Delete(ctx, *game.LogoKey); delErr != nil {
			// A stale object in the bucket is not worth failing the delete.
			fmt.Printf("failed to delete logo %s: %v\n", *game.LogoKey, delErr)
		}
	}

	s.refreshGames(ctx)
	return nil
}

func (s *gameService) UploadGameLogo(ctx context.Context, id string, file io.Reader, contentType string) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrLogoUploadFailed, err)
	}

	key := fmt.Sprintf("games/%s/logo", game.ID)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogoUploadFailed, err)
	}

	if err := s.gameRepo.UpdateLogoKey(ctx, game.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogoUploadFailed, err)
	}
	game.LogoKey = &result.Key

	s.refreshGames(ctx)
	return s.withLogoURL(game), nil
}

func (s *gameService) IconSuggestions() []lookup.IconEntry {
	return lookup.GameIconEntries()
}

func (s *gameService) withLogoURL(game *models.Game) *models.Game {
	if game.LogoKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*game.LogoKey)
		game.LogoURL = &url
	}
	return game
}

func (s *gameService) refreshGames(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Refresh(ctx, livedata.CollectionGames); err != nil {
		fmt.Printf("failed to refresh games collection: %v\n", err)
	}
}
