package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/scoreline/scoreline/internal/logger"
	"github.com/scoreline/scoreline/internal/models"
)

// ScoreWriteRepository handles score write operations
type ScoreWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewScoreWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ScoreWriteRepository {
	return &ScoreWriteRepository{db: db, txGetter: txGetter}
}

// Insert persists one score row and returns it with the assigned id and
// created_at. Single statement, so the write is atomic.
func (r *ScoreWriteRepository) Insert(ctx context.Context, playerName string, score int64) (*models.ScoreDB, error) {
	query := `
		INSERT INTO scores (player_name, score)
		VALUES ($1, $2)
		RETURNING id, player_name, score, created_at
	`
	args := []any{playerName, score}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var row models.ScoreDB
	err := sqlx.GetContext(ctx, executor, &row, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", row,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &row, nil
}

// Reset deletes all rows and inserts the fixed demonstration set.
// Runs on the request transaction when one is present, so the clear and
// the reseed commit together.
func (r *ScoreWriteRepository) Reset(ctx context.Context) (int, error) {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	deleteQuery := `DELETE FROM scores`
	_, err := executor.ExecContext(ctx, deleteQuery)

	logger.Log.Infow(
		"query", deleteQuery,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	insertQuery := `
		INSERT INTO scores (player_name, score)
		VALUES ($1, $2)
	`
	for _, seed := range models.SeedScores {
		args := []any{seed.PlayerName, seed.Score}
		_, err = executor.ExecContext(ctx, insertQuery, args...)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(insertQuery), " "),
			"args", args,
			"error", err,
		)

		if err != nil {
			return 0, err
		}
	}

	return len(models.SeedScores), nil
}

// ScoreReadRepository handles score read operations
type ScoreReadRepository struct {
	db *sqlx.DB
}

func NewScoreReadRepository(db *sqlx.DB) *ScoreReadRepository {
	return &ScoreReadRepository{db: db}
}

// TopScores returns at most limit rows ordered by score descending,
// ties broken by earliest created_at.
func (r *ScoreReadRepository) TopScores(ctx context.Context, limit int) ([]models.ScoreDB, error) {
	const query = `
		SELECT id, player_name, score, created_at
		FROM scores
		ORDER BY score DESC, created_at ASC
		LIMIT $1
	`

	var rows []models.ScoreDB
	err := r.db.SelectContext(ctx, &rows, query, limit)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}
