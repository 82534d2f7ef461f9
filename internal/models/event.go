package models

import "time"

type Event struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Sport          string     `json:"sport"`
	Location       string     `json:"location"`
	Notes          *string    `json:"notes"`
	MaxPlayers     int        `json:"max_players"`
	CurrentPlayers int        `json:"current_players"`
	CreatedAt      *time.Time `json:"created_at"`
	EventDate      *time.Time `json:"event_date"`
}
