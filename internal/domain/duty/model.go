package duty

import "time"

// StatusAssigned is the only assignment status the allocator writes.
const StatusAssigned = "assigned"

// Assignment binds one user to one game. The (UserID, GameID) pair is
// unique; rows are created by the allocator and never updated or deleted.
type Assignment struct {
	UserID     int64
	GameID     int64
	Status     string
	AssignedAt time.Time
}

// AssignedUser is the display projection of an assignment.
type AssignedUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UpcomingAssignment joins an assignment to its game for the listing
// endpoint.
type UpcomingAssignment struct {
	UserID       int64
	UserName     string
	GameID       int64
	StartTime    time.Time
	HomeTeamName string
	AwayTeamName string
	Status       string
	AssignedAt   time.Time
}
