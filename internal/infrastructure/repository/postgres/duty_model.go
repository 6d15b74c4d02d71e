package postgres

import (
	"time"

	"github.com/omerdahan/seatduty/internal/domain/duty"
)

type assignedUserModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type upcomingAssignmentModel struct {
	UserID       int64     `db:"user_id"`
	UserName     string    `db:"user_name"`
	GameID       int64     `db:"game_id"`
	StartTime    time.Time `db:"start_time"`
	HomeTeamName string    `db:"home_team_name"`
	AwayTeamName string    `db:"away_team_name"`
	Status       string    `db:"status"`
	AssignedAt   time.Time `db:"assigned_at"`
}

func (m upcomingAssignmentModel) toDomain() duty.UpcomingAssignment {
	return duty.UpcomingAssignment{
		UserID:       m.UserID,
		UserName:     m.UserName,
		GameID:       m.GameID,
		StartTime:    m.StartTime,
		HomeTeamName: m.HomeTeamName,
		AwayTeamName: m.AwayTeamName,
		Status:       m.Status,
		AssignedAt:   m.AssignedAt,
	}
}
