package models

import "time"

type Player struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PlayerNumber string    `json:"player_number" db:"player_number"`
	Country      string    `json:"country" db:"country"`
	Color        string    `json:"color" db:"color"`
	TotalPoints  int       `json:"total_points" db:"total_points"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
