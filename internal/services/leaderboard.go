package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/scoreline/scoreline/internal/logger"
	"github.com/scoreline/scoreline/internal/models"
	"github.com/segmentio/kafka-go"
)

// ScoreWriter defines methods for writing score rows.
type ScoreWriter interface {
	Insert(ctx context.Context, playerName string, score int64) (*models.ScoreDB, error) // Persists one score row
	Reset(ctx context.Context) (int, error)                                              // Clears the table and inserts the demonstration set
}

// ScoreReader defines methods for reading ranked scores.
type ScoreReader interface {
	TopScores(ctx context.Context, limit int) ([]models.ScoreDB, error) // Returns the ranked top-N rows
}

// LeaderboardCache caches ranked leaderboards.
type LeaderboardCache interface {
	Get(ctx context.Context, limit int) ([]models.ScoreDB, error)    // Returns a cached leaderboard
	Set(ctx context.Context, limit int, rows []models.ScoreDB) error // Caches a leaderboard
	Invalidate(ctx context.Context) error                            // Drops all cached leaderboards
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LeaderboardService handles score submission, ranked reads, and the
// administrative reset. Publishes score events to Kafka when configured.
type LeaderboardService struct {
	writeRepo   ScoreWriter
	readRepo    ScoreReader
	cacheRepo   LeaderboardCache
	kafkaWriter KafkaWriter
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	writeRepo ScoreWriter,
	readRepo ScoreReader,
	cacheRepo LeaderboardCache,
	kafkaWriter KafkaWriter,
) *LeaderboardService {
	return &LeaderboardService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishScoreEvent publishes a score event to Kafka.
func (s *LeaderboardService) publishScoreEvent(ctx context.Context, event models.ScoreEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal score event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish score event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Score event published to Kafka", "event_id", event.EventID, "score_id", event.ScoreID)
	}
}

// invalidateCache drops cached leaderboards after a write. Cache failures
// are logged and never surfaced: the store already holds the truth.
func (s *LeaderboardService) invalidateCache(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate leaderboard cache", "error", err)
	}
}

// Submit persists one score row and publishes the submission event.
func (s *LeaderboardService) Submit(ctx context.Context, playerName string, score int64) (*models.ScoreDB, error) {
	row, err := s.writeRepo.Insert(ctx, playerName, score)
	if err != nil {
		logger.Log.Errorw("failed to insert score", "playerName", playerName, "score", score, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)

	event := models.ScoreEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		ScoreID:    row.ID,
		PlayerName: row.PlayerName,
		Score:      row.Score,
		Operation:  "submit",
	}
	s.publishScoreEvent(ctx, event)

	return row, nil
}

// TopScores returns the ranked top-N rows, serving from the cache when a
// fresh entry exists.
func (s *LeaderboardService) TopScores(ctx context.Context, limit int) ([]models.ScoreDB, error) {
	if s.cacheRepo != nil {
		if rows, err := s.cacheRepo.Get(ctx, limit); err == nil {
			return rows, nil
		}
	}

	rows, err := s.readRepo.TopScores(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to read top scores", "limit", limit, "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Set(ctx, limit, rows); err != nil {
			logger.Log.Errorw("failed to cache leaderboard", "limit", limit, "error", err)
		}
	}

	return rows, nil
}

// Reset clears the table, inserts the demonstration set, and returns the
// number of inserted rows.
func (s *LeaderboardService) Reset(ctx context.Context) (int, error) {
	count, err := s.writeRepo.Reset(ctx)
	if err != nil {
		logger.Log.Errorw("failed to reset scores", "error", err)
		return 0, err
	}

	s.invalidateCache(ctx)

	return count, nil
}
