package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/scoreline/scoreline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLeaderboardCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewLeaderboardCacheRepository(rdb, 2*time.Second)

	rows := []models.ScoreDB{
		{ID: 1, PlayerName: "Alice", Score: 150, CreatedAt: time.Now().UTC().Truncate(time.Second)},
		{ID: 2, PlayerName: "Bob", Score: 120, CreatedAt: time.Now().UTC().Truncate(time.Second)},
	}

	t.Run("Set and Get leaderboard", func(t *testing.T) {
		err := repo.Set(ctx, 10, rows)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("Get missing limit returns error", func(t *testing.T) {
		_, err := repo.Get(ctx, 77)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not cached")
	})

	t.Run("Invalidate drops all cached limits", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, 5, rows))
		assert.NoError(t, repo.Set(ctx, 10, rows))

		err := repo.Invalidate(ctx)
		assert.NoError(t, err)

		_, err = repo.Get(ctx, 5)
		assert.Error(t, err)
		_, err = repo.Get(ctx, 10)
		assert.Error(t, err)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.Set(ctx, 3, rows)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, 3)
		assert.Error(t, err)
	})
}
