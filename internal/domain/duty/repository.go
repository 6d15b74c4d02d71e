package duty

import (
	"context"
	"time"
)

// AssignOutcome reports what one transactional allocation actually wrote.
type AssignOutcome struct {
	// InsertedUserIDs holds the users whose assignment row was newly
	// created. A user already assigned to the game (a lost race) is
	// silently absent.
	InsertedUserIDs []int64
	// FinalCount is the game's assignment count after the transaction.
	FinalCount int
	// MarkedAssigned is true when the transaction flipped the game's
	// fully-staffed flag.
	MarkedAssigned bool
}

// Repository stores assignments and per-user duty stats.
type Repository interface {
	CountForGame(ctx context.Context, gameID int64) (int, error)
	// InsertIfAbsent creates the assignment unless the (user, game) pair
	// already exists. Returns whether a row was inserted; a duplicate is
	// not an error.
	InsertIfAbsent(ctx context.Context, userID, gameID int64, at time.Time) (bool, error)
	// UpsertStats bumps the user's assignment counter and records the
	// game and instant of the most recent assignment.
	UpsertStats(ctx context.Context, userID, gameID int64, at time.Time) error
	ListForGame(ctx context.Context, gameID int64) ([]AssignedUser, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]UpcomingAssignment, error)

	// AssignUsersToGame runs the whole per-game commit in one
	// transaction: re-check the live count against dutySize, insert the
	// assignment rows idempotently, bump each inserted user's stats and
	// flip the game flag once the count reaches dutySize. Either all
	// writes land or none do. Users whose slot was taken by a concurrent
	// cycle are dropped from the outcome, never double-counted.
	AssignUsersToGame(ctx context.Context, gameID int64, userIDs []int64, at time.Time, dutySize int) (AssignOutcome, error)
}
