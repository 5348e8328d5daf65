package models

import "time"

// Score is append-only: recorded once, never updated or deleted.
type Score struct {
	ID        string    `json:"id" db:"id"`
	PlayerID  string    `json:"player_id" db:"player_id"`
	GameID    string    `json:"game_id" db:"game_id"`
	Points    int       `json:"points" db:"points"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type PointType string

const (
	PointTypeWin           PointType = "win"
	PointTypeParticipation PointType = "participation"
)

func (t PointType) Valid() bool {
	return t == PointTypeWin || t == PointTypeParticipation
}
