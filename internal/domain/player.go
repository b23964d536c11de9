package domain

import "time"

// Player represents a registered player. Identity is server-generated;
// usernames are globally unique.
type Player struct {
	ID        int       `json:"player_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
