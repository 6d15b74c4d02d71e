package roster

import "context"

// Repository exposes user and availability reads for the allocator.
type Repository interface {
	// AvailableOn returns active users with a positive availability rule
	// for the given weekday (0=Sunday..6=Saturday), each joined to their
	// stats. Rows are ordered by user id so ranking is reproducible.
	AvailableOn(ctx context.Context, weekday int) ([]UserWithStats, error)
	// ListWithStats returns every user joined to their stats, ordered by
	// name, for the roster listing endpoint.
	ListWithStats(ctx context.Context) ([]UserWithStats, error)
}
