package player

import (
	"context"
	"strings"

	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/logger"
	"github.com/meganrobin/Item-Management-API/internal/metrics"
	"github.com/meganrobin/Item-Management-API/internal/repository"
)

// Service defines the interface for player operations
type Service interface {
	CreatePlayer(ctx context.Context, username string) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID int) (*domain.Player, error)
}

// service implements the Service interface
type service struct {
	players repository.Player
}

// NewService creates a new player service
func NewService(players repository.Player) Service {
	return &service{players: players}
}

// CreatePlayer registers a player under a unique username. The username is
// trimmed before storage so " alice" and "alice" are the same player.
func (s *service) CreatePlayer(ctx context.Context, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}

	playerID, err := s.players.InsertPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	metrics.PlayersCreated.Inc()
	log.Info("Player created", "playerID", playerID, "username", username)
	return s.players.GetPlayerByID(ctx, playerID)
}

// GetPlayer returns a player by id
func (s *service) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	return s.players.GetPlayerByID(ctx, playerID)
}
