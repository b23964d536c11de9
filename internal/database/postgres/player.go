package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// InsertPlayer creates a player with a server-generated id
func (r *PlayerRepository) InsertPlayer(ctx context.Context, username string) (int, error) {
	query := `
		INSERT INTO player (username)
		VALUES ($1)
		RETURNING player_id
	`
	var playerID int
	if err := r.db.QueryRow(ctx, query, username).Scan(&playerID); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrUsernameTaken
		}
		return 0, fmt.Errorf("failed to insert player: %w", err)
	}

	return playerID, nil
}

// GetPlayerByID retrieves a player by ID
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID int) (*domain.Player, error) {
	query := `
		SELECT player_id, username, created_at
		FROM player
		WHERE player_id = $1
	`
	var player domain.Player
	err := r.db.QueryRow(ctx, query, playerID).Scan(&player.ID, &player.Username, &player.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &player, nil
}

// PlayerExists reports whether a player row exists
func (r *PlayerRepository) PlayerExists(ctx context.Context, playerID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM player WHERE player_id = $1)", playerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check player existence: %w", err)
	}

	return exists, nil
}
