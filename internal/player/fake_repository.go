package player

import (
	"context"
	"time"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of the player
// repository for testing
type FakeRepository struct {
	players      map[int]*domain.Player
	nextPlayerID int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{players: make(map[int]*domain.Player)}
}

func (f *FakeRepository) InsertPlayer(ctx context.Context, username string) (int, error) {
	for _, p := range f.players {
		if p.Username == username {
			return 0, domain.ErrUsernameTaken
		}
	}
	f.nextPlayerID++
	f.players[f.nextPlayerID] = &domain.Player{ID: f.nextPlayerID, Username: username, CreatedAt: time.Now()}
	return f.nextPlayerID, nil
}

func (f *FakeRepository) GetPlayerByID(ctx context.Context, playerID int) (*domain.Player, error) {
	p, ok := f.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return p, nil
}

func (f *FakeRepository) PlayerExists(ctx context.Context, playerID int) (bool, error) {
	_, ok := f.players[playerID]
	return ok, nil
}
