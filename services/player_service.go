package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hmonterrosa/scoring-dashboard/livedata"
	"github.com/hmonterrosa/scoring-dashboard/lookup"
	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/hmonterrosa/scoring-dashboard/repositories"
)

var (
	ErrPlayerCreationFailed = errors.New("failed to create player")
	ErrPlayerDeleteFailed   = errors.New("failed to delete player")
)

// Fallbacks when the player-number prefix is not in the country table and no
// manual country was supplied.
const (
	countryUnspecified = "País no especificado"
	colorUnspecified   = "GRIS"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*models.Player, error)
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

type CreatePlayerInput struct {
	Name          string `json:"name"`
	PlayerNumber  string `json:"player_number"`
	ManualCountry string `json:"manual_country,omitempty"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	store      *livedata.Store
}

func NewPlayerService(playerRepo repositories.PlayerRepository, store *livedata.Store) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		store:      store,
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}
	number := strings.TrimSpace(input.PlayerNumber)
	if number == "" {
		return nil, ErrPlayerNumberRequired
	}
	if !isDigits(number) {
		return nil, ErrPlayerNumberNotNumeric
	}

	player := &models.Player{
		Name:         name,
		PlayerNumber: number,
		TotalPoints:  0,
	}

	if country, ok := lookup.CountryFromNumber(number); ok {
		player.Country = country.Name
		player.Color = country.Color
	} else {
		player.Country = strings.TrimSpace(input.ManualCountry)
		if player.Country == "" {
			player.Country = countryUnspecified
		}
		player.Color = colorUnspecified
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNumberConflict) {
			return nil, ErrPlayerNumberConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrPlayerCreationFailed, err)
	}

	s.refreshPlayers(ctx)
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", id, err)
	}
	return player, nil
}

func (s *playerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", err)
	}
	return players, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id string) error {
	// The player's scores remain; the aggregator drops them silently.
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("%w (id: %s): %w", ErrPlayerDeleteFailed, id, err)
	}

	s.refreshPlayers(ctx)
	return nil
}

func (s *playerService) refreshPlayers(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Refresh(ctx, livedata.CollectionPlayers); err != nil {
		fmt.Printf("failed to refresh players collection: %v\n", err)
	}
}
