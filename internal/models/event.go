package models

// ScoreEvent is the payload published to Kafka after a successful submission.
type ScoreEvent struct {
	EventID    string `json:"event_id"`
	Timestamp  int64  `json:"timestamp"`
	ScoreID    int64  `json:"score_id"`
	PlayerName string `json:"player_name"`
	Score      int64  `json:"score"`
	Operation  string `json:"operation"`
}
