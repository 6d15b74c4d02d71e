package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/omerdahan/seatduty/internal/domain/game"
	qb "github.com/omerdahan/seatduty/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Upsert(ctx context.Context, g game.Game) error {
	query, args, err := qb.InsertInto("games").
		Columns(
			"id",
			"start_time",
			"home_team_id",
			"away_team_id",
			"home_team_name",
			"away_team_name",
			"competition",
			"status_text",
			"short_status_text",
		).
		Values(
			g.ID,
			g.StartTime,
			g.HomeTeamID,
			g.AwayTeamID,
			g.HomeTeamName,
			g.AwayTeamName,
			g.Competition,
			g.StatusText,
			g.ShortStatusText,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
    start_time = EXCLUDED.start_time,
    home_team_name = EXCLUDED.home_team_name,
    away_team_name = EXCLUDED.away_team_name,
    competition = EXCLUDED.competition,
    status_text = EXCLUDED.status_text,
    short_status_text = EXCLUDED.short_status_text,
    updated_at = NOW()`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert game id=%d: %w", g.ID, err)
	}

	return nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int64) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build select game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game id=%d: %w", gameID, err)
	}

	return row.toDomain(), true, nil
}

func (r *GameRepository) SetAssigned(ctx context.Context, gameID int64, assigned bool) error {
	query, args, err := qb.Update("games").
		Set("is_assigned", assigned).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game assigned query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set game id=%d assigned=%t: %w", gameID, assigned, err)
	}

	return nil
}

func (r *GameRepository) ListUpcoming(ctx context.Context) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Expr("start_time > NOW()")).
		OrderBy("start_time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select upcoming games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select upcoming games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
