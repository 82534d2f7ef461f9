package models

import "time"

type Participant struct {
	ID         int        `json:"id"`
	EventID    int        `json:"event_id"`
	PlayerName string     `json:"player_name"`
	Team       *string    `json:"team"`
	JoinedAt   *time.Time `json:"joined_at"`
}
