package models

// SeedScore is one row of the fixed demonstration set.
type SeedScore struct {
	PlayerName string
	Score      int64
}

// SeedScores is the demonstration set inserted by the admin reset operation.
// Order matters: it is also the expected leaderboard ranking after a reset.
var SeedScores = []SeedScore{
	{PlayerName: "Alice", Score: 150},
	{PlayerName: "Bob", Score: 120},
	{PlayerName: "Charlie", Score: 100},
}
