package leaderboard

import "github.com/hmonterrosa/scoring-dashboard/models"

// PlayerStats holds one player's summed points per game.
type PlayerStats struct {
	Player     models.Player
	GameScores map[string]int
}

// Aggregate folds the score list into per-player, per-game sums. The result
// has exactly one entry per input player; a player with no scores keeps an
// empty (not nil) map. Scores referencing an unknown player are dropped, so
// deleting a player never breaks aggregation of the remaining scores.
func Aggregate(players []models.Player, scores []models.Score) map[string]*PlayerStats {
	stats := make(map[string]*PlayerStats, len(players))
	for _, player := range players {
		stats[player.ID] = &PlayerStats{
			Player:     player,
			GameScores: make(map[string]int),
		}
	}

	for _, score := range scores {
		ps, ok := stats[score.PlayerID]
		if !ok {
			continue
		}
		ps.GameScores[score.GameID] += score.Points
	}

	return stats
}

// Total sums every game bucket, including buckets for games that have since
// been deleted. Orphaned points still count toward the all-games total.
func (s *PlayerStats) Total() int {
	total := 0
	for _, points := range s.GameScores {
		total += points
	}
	return total
}
