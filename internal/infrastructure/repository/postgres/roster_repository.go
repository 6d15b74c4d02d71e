package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/omerdahan/seatduty/internal/domain/roster"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) AvailableOn(ctx context.Context, weekday int) ([]roster.UserWithStats, error) {
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("weekday must be between 0 and 6, got %d", weekday)
	}

	const query = `
SELECT u.id,
       u.name,
       u.email,
       u.is_active,
       COALESCE(s.total_games_assigned, 0) AS total_games_assigned,
       COALESCE(s.last_assigned_game_id, 0) AS last_assigned_game_id,
       s.last_assigned_at
FROM users u
JOIN user_availability a ON a.user_id = u.id
LEFT JOIN user_stats s ON s.user_id = u.id
WHERE u.is_active = TRUE
  AND a.day_of_week = $1
  AND a.is_available = TRUE
ORDER BY u.id`

	var rows []userWithStatsModel
	if err := r.db.SelectContext(ctx, &rows, query, weekday); err != nil {
		return nil, fmt.Errorf("select available users weekday=%d: %w", weekday, err)
	}

	out := make([]roster.UserWithStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *RosterRepository) ListWithStats(ctx context.Context) ([]roster.UserWithStats, error) {
	const query = `
SELECT u.id,
       u.name,
       u.email,
       u.is_active,
       COALESCE(s.total_games_assigned, 0) AS total_games_assigned,
       COALESCE(s.last_assigned_game_id, 0) AS last_assigned_game_id,
       s.last_assigned_at
FROM users u
LEFT JOIN user_stats s ON s.user_id = u.id
ORDER BY u.name, u.id`

	var rows []userWithStatsModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select users with stats: %w", err)
	}

	out := make([]roster.UserWithStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
