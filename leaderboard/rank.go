package leaderboard

import "sort"

// FilterAll ranks by the sum over every game instead of a single game bucket.
const FilterAll = "all"

// Rank orders the aggregated stats descending by points. With FilterAll the
// sort key is the all-games total; with a game ID it is that game's bucket
// (0 when the player never scored in it). Ties are broken by ascending player
// ID so the order is deterministic across calls.
func Rank(stats map[string]*PlayerStats, gameFilter string) []*PlayerStats {
	ranked := make([]*PlayerStats, 0, len(stats))
	for _, ps := range stats {
		ranked = append(ranked, ps)
	}

	keyFor := func(ps *PlayerStats) int {
		if gameFilter == FilterAll {
			return ps.Total()
		}
		return ps.GameScores[gameFilter]
	}

	sort.Slice(ranked, func(i, j int) bool {
		ki, kj := keyFor(ranked[i]), keyFor(ranked[j])
		if ki != kj {
			return ki > kj
		}
		return ranked[i].Player.ID < ranked[j].Player.ID
	})

	return ranked
}
