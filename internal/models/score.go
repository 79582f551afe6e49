package models

import "time"

// MaxPlayerNameLength is the column bound on scores.player_name.
const MaxPlayerNameLength = 100

// ScoreDB represents a persisted score row.
type ScoreDB struct {
	ID         int64     `db:"id" json:"id"`
	PlayerName string    `db:"player_name" json:"player_name"`
	Score      int64     `db:"score" json:"score"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
