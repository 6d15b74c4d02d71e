package game

import "time"

// Game is one fixture observed from the scores feed. The external provider
// owns the id; rows are upserted on every observation and never deleted.
type Game struct {
	ID              int64
	StartTime       time.Time
	HomeTeamID      int64
	AwayTeamID      int64
	HomeTeamName    string
	AwayTeamName    string
	Competition     string
	StatusText      string
	ShortStatusText string
	IsAssigned      bool
}

func (g Game) IsHomeGameFor(teamID int64) bool {
	return g.HomeTeamID == teamID
}

func (g Game) StartsAfter(now time.Time) bool {
	return g.StartTime.After(now)
}
