package postgres

import (
	"time"

	"github.com/omerdahan/seatduty/internal/domain/game"
)

type gameTableModel struct {
	ID              int64     `db:"id"`
	StartTime       time.Time `db:"start_time"`
	HomeTeamID      int64     `db:"home_team_id"`
	AwayTeamID      int64     `db:"away_team_id"`
	HomeTeamName    string    `db:"home_team_name"`
	AwayTeamName    string    `db:"away_team_name"`
	Competition     string    `db:"competition"`
	StatusText      string    `db:"status_text"`
	ShortStatusText string    `db:"short_status_text"`
	IsAssigned      bool      `db:"is_assigned"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:              m.ID,
		StartTime:       m.StartTime,
		HomeTeamID:      m.HomeTeamID,
		AwayTeamID:      m.AwayTeamID,
		HomeTeamName:    m.HomeTeamName,
		AwayTeamName:    m.AwayTeamName,
		Competition:     m.Competition,
		StatusText:      m.StatusText,
		ShortStatusText: m.ShortStatusText,
		IsAssigned:      m.IsAssigned,
	}
}
