package repository

import (
	"context"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	// InsertPlayer creates a player with a server-generated id.
	// Returns domain.ErrUsernameTaken if the username already exists.
	InsertPlayer(ctx context.Context, username string) (int, error)

	// GetPlayerByID retrieves a player, or domain.ErrPlayerNotFound
	GetPlayerByID(ctx context.Context, playerID int) (*domain.Player, error)

	// PlayerExists reports whether a player row exists
	PlayerExists(ctx context.Context, playerID int) (bool, error)
}
