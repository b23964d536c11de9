package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

func TestCreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("creates player with generated id", func(t *testing.T) {
		svc := NewService(NewFakeRepository())

		p, err := svc.CreatePlayer(ctx, "alice")
		require.NoError(t, err)
		assert.Greater(t, p.ID, 0)
		assert.Equal(t, "alice", p.Username)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("ids are distinct", func(t *testing.T) {
		svc := NewService(NewFakeRepository())

		a, err := svc.CreatePlayer(ctx, "alice")
		require.NoError(t, err)
		b, err := svc.CreatePlayer(ctx, "bob")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		svc := NewService(NewFakeRepository())

		_, err := svc.CreatePlayer(ctx, "alice")
		require.NoError(t, err)
		_, err = svc.CreatePlayer(ctx, "alice")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		svc := NewService(NewFakeRepository())

		_, err := svc.CreatePlayer(ctx, "alice")
		require.NoError(t, err)
		_, err = svc.CreatePlayer(ctx, "  alice  ")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		svc := NewService(NewFakeRepository())

		_, err := svc.CreatePlayer(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrInvalidUsername)
	})
}

func TestGetPlayer(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewFakeRepository())

	created, err := svc.CreatePlayer(ctx, "alice")
	require.NoError(t, err)

	p, err := svc.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)

	_, err = svc.GetPlayer(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
