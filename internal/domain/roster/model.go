package roster

import (
	"fmt"
	"time"
)

// User is a duty volunteer. Accounts are managed elsewhere; this service
// only reads identity, contact info and the active flag.
type User struct {
	ID       int64
	Name     string
	Email    string
	IsActive bool
}

func (u User) Validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("user id is required")
	}
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}

	return nil
}

// AvailabilityRule marks one weekday a user volunteered for. A user with no
// rule for a weekday is unavailable on that weekday.
type AvailabilityRule struct {
	UserID    int64
	Weekday   int
	Available bool
}

// Stats tracks how often a user has served. Created lazily on first
// assignment; the counter only ever increments.
type Stats struct {
	TotalGamesAssigned int
	LastAssignedGameID int64
	LastAssignedAt     *time.Time
}

// UserWithStats is a ranking candidate: an available user joined to their
// duty history. Missing stats read as zero assignments, never assigned.
type UserWithStats struct {
	User
	Stats
}

// WeekdayOf is the single point where an instant becomes a stored weekday.
// The stored convention is 0=Sunday..6=Saturday, evaluated in UTC. Go's
// time.Weekday already numbers Sunday as 0, so no remapping is needed here.
func WeekdayOf(t time.Time) int {
	return int(t.UTC().Weekday())
}
