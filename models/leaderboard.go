package models

import "time"

// Standing is one leaderboard row as served to clients.
type Standing struct {
	Rank       int            `json:"rank"`
	Player     Player         `json:"player"`
	GameScores map[string]int `json:"game_scores"`
	Total      int            `json:"total"`
	Country    *CountryInfo   `json:"country,omitempty"`
}

// CountryInfo mirrors the prefix lookup table entry; nil when the player's
// number prefix is unknown.
type CountryInfo struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// KioskResult is the public "check my points" response.
type KioskResult struct {
	Player      Player       `json:"player"`
	Lines       []KioskLine  `json:"lines"`
	TotalPoints int          `json:"total_points"`
	Country     *CountryInfo `json:"country,omitempty"`
}

// KioskLine is the per-game summary for a single player. Only games that
// still exist produce a line; points from deleted games are not listed.
type KioskLine struct {
	Game   Game   `json:"game"`
	Icon   string `json:"icon"`
	Points int    `json:"points"`
}

type DashboardStats struct {
	GamesTotal   int       `json:"games_total"`
	PlayersTotal int       `json:"players_total"`
	ScoresTotal  int       `json:"scores_total"`
	LastUpdate   time.Time `json:"last_update"`
}
