package usecase

import "context"

// ScheduleProvider fetches the raw fixtures feed for the tracked team.
// Implementations own caching, retries and upstream error handling.
type ScheduleProvider interface {
	FetchFixtures(ctx context.Context) ([]FeedGame, error)
}

// FeedGame is the fixed-shape projection of one game from the upstream
// payload. The start time stays a string until the window selector parses
// it, so a malformed value can be skipped instead of failing the batch.
type FeedGame struct {
	ID                     int64
	StartTime              string
	StatusText             string
	ShortStatusText        string
	CompetitionDisplayName string
	HomeCompetitor         FeedCompetitor
	AwayCompetitor         FeedCompetitor
}

type FeedCompetitor struct {
	ID   int64
	Name string
}
