package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/omerdahan/seatduty/internal/domain/duty"
)

type DutyRepository struct {
	db *sqlx.DB
}

func NewDutyRepository(db *sqlx.DB) *DutyRepository {
	return &DutyRepository{db: db}
}

func (r *DutyRepository) CountForGame(ctx context.Context, gameID int64) (int, error) {
	const query = `
SELECT COUNT(*)
FROM seat_duty_assignments
WHERE game_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, gameID); err != nil {
		return 0, fmt.Errorf("count assignments game_id=%d: %w", gameID, err)
	}

	return count, nil
}

func (r *DutyRepository) InsertIfAbsent(ctx context.Context, userID, gameID int64, at time.Time) (bool, error) {
	const query = `
INSERT INTO seat_duty_assignments (user_id, game_id, status, assigned_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, game_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, userID, gameID, duty.StatusAssigned, at)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert assignment user_id=%d game_id=%d: %w", userID, gameID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read insert assignment result: %w", err)
	}

	return affected > 0, nil
}

func (r *DutyRepository) UpsertStats(ctx context.Context, userID, gameID int64, at time.Time) error {
	return upsertStatsExec(ctx, r.db, userID, gameID, at)
}

func (r *DutyRepository) ListForGame(ctx context.Context, gameID int64) ([]duty.AssignedUser, error) {
	const query = `
SELECT u.id, u.name
FROM seat_duty_assignments d
JOIN users u ON u.id = d.user_id
WHERE d.game_id = $1
ORDER BY u.name, u.id`

	var rows []assignedUserModel
	if err := r.db.SelectContext(ctx, &rows, query, gameID); err != nil {
		return nil, fmt.Errorf("select assignments game_id=%d: %w", gameID, err)
	}

	out := make([]duty.AssignedUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, duty.AssignedUser{ID: row.ID, Name: row.Name})
	}

	return out, nil
}

func (r *DutyRepository) ListUpcoming(ctx context.Context, now time.Time) ([]duty.UpcomingAssignment, error) {
	const query = `
SELECT d.user_id,
       u.name AS user_name,
       d.game_id,
       g.start_time,
       g.home_team_name,
       g.away_team_name,
       d.status,
       d.assigned_at
FROM seat_duty_assignments d
JOIN users u ON u.id = d.user_id
JOIN games g ON g.id = d.game_id
WHERE g.start_time > $1
ORDER BY g.start_time, g.id, u.name`

	var rows []upcomingAssignmentModel
	if err := r.db.SelectContext(ctx, &rows, query, now); err != nil {
		return nil, fmt.Errorf("select upcoming assignments: %w", err)
	}

	out := make([]duty.UpcomingAssignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// AssignUsersToGame locks the game row, re-checks the live assignment count
// and fills the remaining slots, all inside one transaction. The row lock
// serializes concurrent cycles on the same game; the unique constraint on
// (user_id, game_id) makes repeated picks no-ops rather than duplicates.
func (r *DutyRepository) AssignUsersToGame(ctx context.Context, gameID int64, userIDs []int64, at time.Time, dutySize int) (duty.AssignOutcome, error) {
	if dutySize <= 0 {
		return duty.AssignOutcome{}, fmt.Errorf("duty size must be greater than zero, got %d", dutySize)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return duty.AssignOutcome{}, fmt.Errorf("begin tx for game assignment: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const lockQuery = `
SELECT is_assigned
FROM games
WHERE id = $1
FOR UPDATE`

	var isAssigned bool
	if err := tx.GetContext(ctx, &isAssigned, lockQuery, gameID); err != nil {
		if isNotFound(err) {
			return duty.AssignOutcome{}, fmt.Errorf("game id=%d does not exist", gameID)
		}
		return duty.AssignOutcome{}, fmt.Errorf("lock game id=%d: %w", gameID, err)
	}

	const countQuery = `
SELECT COUNT(*)
FROM seat_duty_assignments
WHERE game_id = $1`

	var count int
	if err := tx.GetContext(ctx, &count, countQuery, gameID); err != nil {
		return duty.AssignOutcome{}, fmt.Errorf("recount assignments game_id=%d: %w", gameID, err)
	}

	const insertQuery = `
INSERT INTO seat_duty_assignments (user_id, game_id, status, assigned_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, game_id) DO NOTHING`

	outcome := duty.AssignOutcome{}
	for _, userID := range userIDs {
		if count >= dutySize {
			break
		}

		res, err := tx.ExecContext(ctx, insertQuery, userID, gameID, duty.StatusAssigned, at)
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return duty.AssignOutcome{}, fmt.Errorf("insert assignment user_id=%d game_id=%d: %w", userID, gameID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return duty.AssignOutcome{}, fmt.Errorf("read insert assignment result: %w", err)
		}
		if affected == 0 {
			continue
		}

		if err := upsertStatsExec(ctx, tx, userID, gameID, at); err != nil {
			return duty.AssignOutcome{}, err
		}

		outcome.InsertedUserIDs = append(outcome.InsertedUserIDs, userID)
		count++
	}
	outcome.FinalCount = count

	if count >= dutySize && !isAssigned {
		const markQuery = `
UPDATE games
SET is_assigned = TRUE,
    updated_at = NOW()
WHERE id = $1`
		if _, err := tx.ExecContext(ctx, markQuery, gameID); err != nil {
			return duty.AssignOutcome{}, fmt.Errorf("mark game id=%d assigned: %w", gameID, err)
		}
		outcome.MarkedAssigned = true
	}

	if err := tx.Commit(); err != nil {
		return duty.AssignOutcome{}, fmt.Errorf("commit game assignment tx: %w", err)
	}

	return outcome, nil
}

func upsertStatsExec(ctx context.Context, execer sqlx.ExtContext, userID, gameID int64, at time.Time) error {
	const query = `
INSERT INTO user_stats (user_id, total_games_assigned, last_assigned_game_id, last_assigned_at)
VALUES ($1, 1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET
    total_games_assigned = user_stats.total_games_assigned + 1,
    last_assigned_game_id = EXCLUDED.last_assigned_game_id,
    last_assigned_at = EXCLUDED.last_assigned_at`

	if _, err := execer.ExecContext(ctx, query, userID, gameID, at); err != nil {
		return fmt.Errorf("upsert stats user_id=%d: %w", userID, err)
	}

	return nil
}
