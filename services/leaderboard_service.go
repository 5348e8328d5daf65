package services

import (
	"context"
	"time"

	"github.com/hmonterrosa/scoring-dashboard/leaderboard"
	"github.com/hmonterrosa/scoring-dashboard/livedata"
	"github.com/hmonterrosa/scoring-dashboard/lookup"
	"github.com/hmonterrosa/scoring-dashboard/models"
)

// LeaderboardService renders ranked standings and the kiosk lookup from the
// live store's snapshots. It never touches the database directly; the store
// is the single read path, same as the views it replaces.
type LeaderboardService interface {
	Standings(ctx context.Context, gameFilter string) (*StandingsResult, error)
	CheckPlayer(ctx context.Context, playerNumber string) (*models.KioskResult, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type StandingsResult struct {
	Standings  []models.Standing `json:"standings"`
	Games      []models.Game     `json:"games"`
	GameFilter string            `json:"game_filter"`
	LastUpdate time.Time         `json:"last_update"`
}

type leaderboardService struct {
	store *livedata.Store
}

func NewLeaderboardService(store *livedata.Store) LeaderboardService {
	return &leaderboardService{store: store}
}

func countryInfo(playerNumber string) *models.CountryInfo {
	country, ok := lookup.CountryFromNumber(playerNumber)
	if !ok {
		return nil
	}
	return &models.CountryInfo{Code: country.Code, Name: country.Name, Color: country.Color}
}

func (s *leaderboardService) Standings(_ context.Context, gameFilter string) (*StandingsResult, error) {
	if gameFilter == "" {
		gameFilter = leaderboard.FilterAll
	}

	players := s.store.Players()
	scores := s.store.Scores()
	games := s.store.Games()

	stats := leaderboard.Aggregate(players, scores)
	ranked := leaderboard.Rank(stats, gameFilter)

	standings := make([]models.Standing, 0, len(ranked))
	for i, ps := range ranked {
		standings = append(standings, models.Standing{
			Rank:       i + 1,
			Player:     ps.Player,
			GameScores: ps.GameScores,
			Total:      ps.Total(),
			Country:    countryInfo(ps.Player.PlayerNumber),
		})
	}

	return &StandingsResult{
		Standings:  standings,
		Games:      games,
		GameFilter: gameFilter,
		LastUpdate: s.store.LastUpdate(),
	}, nil
}

// CheckPlayer is the public kiosk lookup: exact player-number match, per-game
// lines for games that still exist. Points recorded against a since-deleted
// game are not listed and do not count toward the kiosk total, matching how
// the kiosk always presented it.
func (s *leaderboardService) CheckPlayer(_ context.Context, playerNumber string) (*models.KioskResult, error) {
	var player *models.Player
	for _, p := range s.store.Players() {
		if p.PlayerNumber == playerNumber {
			found := p
			player = &found
			break
		}
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	games := make(map[string]models.Game)
	gameOrder := make([]string, 0)
	for _, g := range s.store.Games() {
		games[g.ID] = g
		gameOrder = append(gameOrder, g.ID)
	}

	perGame := make(map[string]int)
	for _, score := range s.store.Scores() {
		if score.PlayerID != player.ID {
			continue
		}
		if _, ok := games[score.GameID]; !ok {
			continue
		}
		perGame[score.GameID] += score.Points
	}

	lines := make([]models.KioskLine, 0, len(perGame))
	total := 0
	for _, gameID := range gameOrder {
		points, ok := perGame[gameID]
		if !ok {
			continue
		}
		game := games[gameID]
		lines = append(lines, models.KioskLine{
			Game:   game,
			Icon:   string(lookup.IconForGame(game.Name)),
			Points: points,
		})
		total += points
	}

	return &models.KioskResult{
		Player:      *player,
		Lines:       lines,
		TotalPoints: total,
		Country:     countryInfo(player.PlayerNumber),
	}, nil
}

func (s *leaderboardService) DashboardStats(_ context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{
		GamesTotal:   len(s.store.Games()),
		PlayersTotal: len(s.store.Players()),
		ScoresTotal:  len(s.store.Scores()),
		LastUpdate:   s.store.LastUpdate(),
	}, nil
}
