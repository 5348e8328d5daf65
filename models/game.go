package models

import "time"

type Game struct {
	ID                  string    `json:"id" db:"id"`
	Name                string    `json:"name" db:"name"`
	WinPoints           int       `json:"win_points" db:"win_points"`
	ParticipationPoints int       `json:"participation_points" db:"participation_points"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
