package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/scoreline/scoreline/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLeaderboardService_Submit(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockScoreWriter(ctrl)
	cache := NewMockLeaderboardCache(ctrl)
	kafka := NewMockKafkaWriter(ctrl)

	saved := &models.ScoreDB{ID: 1, PlayerName: "alice", Score: 42, CreatedAt: time.Now()}

	writer.EXPECT().Insert(ctx, "alice", int64(42)).Return(saved, nil)
	cache.EXPECT().Invalidate(ctx).Return(nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewLeaderboardService(writer, nil, cache, kafka)
	row, err := svc.Submit(ctx, "alice", 42)

	assert.NoError(t, err)
	assert.Equal(t, saved, row)
}

func TestLeaderboardService_Submit_InsertError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockScoreWriter(ctrl)
	writer.EXPECT().Insert(ctx, "bob", int64(7)).Return(nil, errors.New("database failure"))

	svc := NewLeaderboardService(writer, nil, nil, nil)
	row, err := svc.Submit(ctx, "bob", 7)

	assert.Error(t, err)
	assert.Nil(t, row)
}

func TestLeaderboardService_Submit_NoCacheNoKafka(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := &models.ScoreDB{ID: 5, PlayerName: "carol", Score: -3}

	writer := NewMockScoreWriter(ctrl)
	writer.EXPECT().Insert(ctx, "carol", int64(-3)).Return(saved, nil)

	svc := NewLeaderboardService(writer, nil, nil, nil)
	row, err := svc.Submit(ctx, "carol", -3)

	assert.NoError(t, err)
	assert.Equal(t, saved, row)
}

func TestLeaderboardService_Submit_KafkaErrorNotSurfaced(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := &models.ScoreDB{ID: 2, PlayerName: "dave", Score: 10}

	writer := NewMockScoreWriter(ctrl)
	cache := NewMockLeaderboardCache(ctrl)
	kafka := NewMockKafkaWriter(ctrl)

	writer.EXPECT().Insert(ctx, "dave", int64(10)).Return(saved, nil)
	cache.EXPECT().Invalidate(ctx).Return(nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	svc := NewLeaderboardService(writer, nil, cache, kafka)
	row, err := svc.Submit(ctx, "dave", 10)

	assert.NoError(t, err)
	assert.Equal(t, saved, row)
}

func TestLeaderboardService_TopScores_CacheHit(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := []models.ScoreDB{
		{ID: 1, PlayerName: "alice", Score: 150},
		{ID: 2, PlayerName: "bob", Score: 120},
	}

	reader := NewMockScoreReader(ctrl)
	cache := NewMockLeaderboardCache(ctrl)
	cache.EXPECT().Get(ctx, 10).Return(cached, nil)

	svc := NewLeaderboardService(nil, reader, cache, nil)
	rows, err := svc.TopScores(ctx, 10)

	assert.NoError(t, err)
	assert.Equal(t, cached, rows)
}

func TestLeaderboardService_TopScores_CacheMiss(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []models.ScoreDB{
		{ID: 1, PlayerName: "alice", Score: 150},
	}

	reader := NewMockScoreReader(ctrl)
	cache := NewMockLeaderboardCache(ctrl)

	cache.EXPECT().Get(ctx, 5).Return(nil, errors.New("leaderboard not cached for limit 5"))
	reader.EXPECT().TopScores(ctx, 5).Return(stored, nil)
	cache.EXPECT().Set(ctx, 5, stored).Return(nil)

	svc := NewLeaderboardService(nil, reader, cache, nil)
	rows, err := svc.TopScores(ctx, 5)

	assert.NoError(t, err)
	assert.Equal(t, stored, rows)
}

func TestLeaderboardService_TopScores_StoreError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockScoreReader(ctrl)
	reader.EXPECT().TopScores(ctx, 10).Return(nil, errors.New("connection refused"))

	svc := NewLeaderboardService(nil, reader, nil, nil)
	rows, err := svc.TopScores(ctx, 10)

	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestLeaderboardService_Reset(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockScoreWriter(ctrl)
	cache := NewMockLeaderboardCache(ctrl)

	writer.EXPECT().Reset(ctx).Return(3, nil)
	cache.EXPECT().Invalidate(ctx).Return(nil)

	svc := NewLeaderboardService(writer, nil, cache, nil)
	count, err := svc.Reset(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestLeaderboardService_Reset_Error(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockScoreWriter(ctrl)
	writer.EXPECT().Reset(ctx).Return(0, errors.New("database failure"))

	svc := NewLeaderboardService(writer, nil, nil, nil)
	count, err := svc.Reset(ctx)

	assert.Error(t, err)
	assert.Equal(t, 0, count)
}
