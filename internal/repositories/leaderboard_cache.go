package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/scoreline/scoreline/internal/logger"
	"github.com/scoreline/scoreline/internal/models"
)

const leaderboardKeyPrefix = "leaderboard:top:"

// LeaderboardCacheRepository provides a cached top-N leaderboard using Redis
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached leaderboards
}

// NewLeaderboardCacheRepository creates a new repository instance with TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached leaderboard for the given limit
func (r *LeaderboardCacheRepository) Get(ctx context.Context, limit int) ([]models.ScoreDB, error) {
	key := fmt.Sprintf("%s%d", leaderboardKeyPrefix, limit)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("leaderboard not cached for limit %d", limit)
		}
		return nil, err
	}

	var rows []models.ScoreDB
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(rows),
		"error", nil,
	)

	return rows, nil
}

// Set caches the leaderboard for the given limit with expiration
func (r *LeaderboardCacheRepository) Set(ctx context.Context, limit int, rows []models.ScoreDB) error {
	key := fmt.Sprintf("%s%d", leaderboardKeyPrefix, limit)

	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rows", len(rows),
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops every cached leaderboard. Called after each write so
// readers never see a stale top-N longer than one round trip.
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, leaderboardKeyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Errorw("failed to scan leaderboard cache keys", "error", err)
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"keys", keys,
		"result", "deleted",
		"error", err,
	)

	return err
}
