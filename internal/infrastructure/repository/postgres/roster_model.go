package postgres

import (
	"database/sql"
	"time"

	"github.com/omerdahan/seatduty/internal/domain/roster"
)

type userWithStatsModel struct {
	ID                 int64        `db:"id"`
	Name               string       `db:"name"`
	Email              string       `db:"email"`
	IsActive           bool         `db:"is_active"`
	TotalGamesAssigned int          `db:"total_games_assigned"`
	LastAssignedGameID int64        `db:"last_assigned_game_id"`
	LastAssignedAt     sql.NullTime `db:"last_assigned_at"`
}

func (m userWithStatsModel) toDomain() roster.UserWithStats {
	return roster.UserWithStats{
		User: roster.User{
			ID:       m.ID,
			Name:     m.Name,
			Email:    m.Email,
			IsActive: m.IsActive,
		},
		Stats: roster.Stats{
			TotalGamesAssigned: m.TotalGamesAssigned,
			LastAssignedGameID: m.LastAssignedGameID,
			LastAssignedAt:     nullTimeToPtr(m.LastAssignedAt),
		},
	}
}

func nullTimeToPtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
