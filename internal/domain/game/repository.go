package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	// Upsert inserts the game or refreshes its mutable feed fields
	// (start time, status text) when a row with the same id exists.
	Upsert(ctx context.Context, g Game) error
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	// SetAssigned flips the fully-staffed flag. Only the duty allocator
	// calls this, inside its per-game transaction.
	SetAssigned(ctx context.Context, gameID int64, assigned bool) error
	ListUpcoming(ctx context.Context) ([]Game, error)
}
