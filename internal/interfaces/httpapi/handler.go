package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/omerdahan/seatduty/internal/domain/duty"
	"github.com/omerdahan/seatduty/internal/domain/game"
	"github.com/omerdahan/seatduty/internal/domain/roster"
	"github.com/omerdahan/seatduty/internal/usecase"
)

type Handler struct {
	dutyService   *usecase.DutyService
	rosterService *usecase.RosterService
	logger        *slog.Logger
	validator     *validator.Validate
	now           func() time.Time
}

func NewHandler(
	dutyService *usecase.DutyService,
	rosterService *usecase.RosterService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		dutyService:   dutyService,
		rosterService: rosterService,
		logger:        logger,
		validator:     validator.New(),
		now:           time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type gameDTO struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"start_time"`
	HomeTeamName    string    `json:"home_team_name"`
	AwayTeamName    string    `json:"away_team_name"`
	Competition     string    `json:"competition"`
	StatusText      string    `json:"status_text"`
	ShortStatusText string    `json:"short_status_text"`
	IsAssigned      bool      `json:"is_assigned"`
}

func gameToDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:              g.ID,
		StartTime:       g.StartTime,
		HomeTeamName:    g.HomeTeamName,
		AwayTeamName:    g.AwayTeamName,
		Competition:     g.Competition,
		StatusText:      g.StatusText,
		ShortStatusText: g.ShortStatusText,
		IsAssigned:      g.IsAssigned,
	}
}

// listGamesRequest carries the optional window overrides; zeros fall back to
// the configured team and limit.
type listGamesRequest struct {
	TeamID int64 `validate:"gte=0"`
	Limit  int   `validate:"gte=0,lte=50"`
}

// ListGames previews the current duty window straight from the feed.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	req, err := parseListGamesRequest(r)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	games, err := h.dutyService.PreviewWindow(ctx, req.TeamID, req.Limit, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "preview duty window failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseListGamesRequest(r *http.Request) (listGamesRequest, error) {
	req := listGamesRequest{}
	query := r.URL.Query()

	if raw := strings.TrimSpace(query.Get("team_id")); raw != "" {
		teamID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, fmt.Errorf("team_id must be an integer")
		}
		req.TeamID = teamID
	}
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("limit must be an integer")
		}
		req.Limit = limit
	}

	return req, nil
}

type userDTO struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	IsActive           bool       `json:"is_active"`
	TotalGamesAssigned int        `json:"total_games_assigned"`
	LastAssignedGameID int64      `json:"last_assigned_game_id,omitempty"`
	LastAssignedAt     *time.Time `json:"last_assigned_at,omitempty"`
}

func userToDTO(u roster.UserWithStats) userDTO {
	return userDTO{
		ID:                 u.User.ID,
		Name:               u.User.Name,
		Email:              u.User.Email,
		IsActive:           u.User.IsActive,
		TotalGamesAssigned: u.Stats.TotalGamesAssigned,
		LastAssignedGameID: u.Stats.LastAssignedGameID,
		LastAssignedAt:     u.Stats.LastAssignedAt,
	}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	users, err := h.rosterService.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list users failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]userDTO, 0, len(users))
	for _, u := range users {
		items = append(items, userToDTO(u))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type assignmentDTO struct {
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name"`
	GameID       int64     `json:"game_id"`
	GameTime     time.Time `json:"game_time"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamName string    `json:"away_team_name"`
	Status       string    `json:"status"`
	AssignedAt   time.Time `json:"assigned_at"`
}

func assignmentToDTO(a duty.UpcomingAssignment) assignmentDTO {
	return assignmentDTO{
		UserID:       a.UserID,
		UserName:     a.UserName,
		GameID:       a.GameID,
		GameTime:     a.StartTime,
		HomeTeamName: a.HomeTeamName,
		AwayTeamName: a.AwayTeamName,
		Status:       a.Status,
		AssignedAt:   a.AssignedAt,
	}
}

func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAssignments")
	defer span.End()

	assignments, err := h.rosterService.ListUpcomingAssignments(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "list upcoming assignments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]assignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, assignmentToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
