package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/omerdahan/seatduty/internal/domain/duty"
	"github.com/omerdahan/seatduty/internal/domain/game"
	"github.com/omerdahan/seatduty/internal/domain/roster"
	"github.com/omerdahan/seatduty/internal/platform/logging"
)

const (
	DefaultDutySize    = 2
	DefaultWindowLimit = 6

	upsertPoolSize = 4
)

// Per-game cycle outcomes.
const (
	GameOutcomeAssigned               = "assigned"
	GameOutcomeAlreadyStaffed         = "already_staffed"
	GameOutcomeInsufficientCandidates = "insufficient_candidates"
	GameOutcomeRepositoryError        = "repository_error"
	GameOutcomeNotAttempted           = "not_attempted"
)

type DutyConfig struct {
	TeamID      int64
	DutySize    int
	WindowLimit int
}

func (c DutyConfig) withDefaults() DutyConfig {
	if c.DutySize <= 0 {
		c.DutySize = DefaultDutySize
	}
	if c.WindowLimit <= 0 {
		c.WindowLimit = DefaultWindowLimit
	}
	return c
}

// DutyService owns the allocation cycle: pull the feed, select the game
// window, and fill each game's duty slots fairest-first.
type DutyService struct {
	provider   ScheduleProvider
	gameRepo   game.Repository
	rosterRepo roster.Repository
	dutyRepo   duty.Repository
	cfg        DutyConfig
	logger     *logging.Logger
}

func NewDutyService(
	provider ScheduleProvider,
	gameRepo game.Repository,
	rosterRepo roster.Repository,
	dutyRepo duty.Repository,
	cfg DutyConfig,
	logger *logging.Logger,
) *DutyService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DutyService{
		provider:   provider,
		gameRepo:   gameRepo,
		rosterRepo: rosterRepo,
		dutyRepo:   dutyRepo,
		cfg:        cfg.withDefaults(),
		logger:     logger,
	}
}

// CycleReport is the full result of one allocation cycle, shaped for the
// webhook response.
type CycleReport struct {
	Games           []CycleGameReport `json:"games"`
	AssignmentsMade []CycleAssignment `json:"assignments_made"`
	TotalGames      int               `json:"total_games"`
	Timestamp       time.Time         `json:"timestamp"`
}

type CycleGameReport struct {
	GameID           int64               `json:"game_id"`
	StartTime        time.Time           `json:"start_time"`
	HomeTeamName     string              `json:"home_team_name"`
	AwayTeamName     string              `json:"away_team_name"`
	Outcome          string              `json:"outcome"`
	NewlyStaffed     bool                `json:"newly_staffed"`
	NewlyAssigned    []duty.AssignedUser `json:"newly_assigned"`
	AllAssignedNames []string            `json:"all_assigned_names"`
	AllAssignedIDs   []int64             `json:"all_assigned_ids"`
	Error            string              `json:"error,omitempty"`
}

type CycleAssignment struct {
	GameID        int64               `json:"game_id"`
	GameTime      time.Time           `json:"game_time"`
	AssignedUsers []duty.AssignedUser `json:"assigned_users"`
}

// GameAllocation reports what one AllocateForGame call did.
type GameAllocation struct {
	NewlyAssigned []duty.AssignedUser
	NewlyStaffed  bool
	Outcome       string
}

// RunCycle executes one allocation pass over the current duty window. Games
// are processed strictly in window order; each game commits independently,
// so a repository failure on one game is reported and the cycle moves on.
// When the context deadline hits mid-cycle, committed games stay committed
// and the rest are reported as not attempted.
func (s *DutyService) RunCycle(ctx context.Context, now time.Time) (CycleReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DutyService.RunCycle")
	defer span.End()

	report := CycleReport{Timestamp: now.UTC()}

	feed, err := s.provider.FetchFixtures(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: fetch fixtures feed: %v", ErrDependencyUnavailable, err)
	}

	window := SelectWindow(feed, s.cfg.TeamID, s.cfg.WindowLimit, now, s.logger)
	report.TotalGames = len(window)
	report.Games = make([]CycleGameReport, 0, len(window))
	if len(window) == 0 {
		return report, nil
	}

	s.persistWindow(ctx, window)

	for idx, g := range window {
		if ctx.Err() != nil {
			s.logger.WarnContext(ctx, "cycle deadline exceeded",
				"remaining_games", len(window)-idx,
				"error", ctx.Err(),
			)
			for _, rest := range window[idx:] {
				report.Games = append(report.Games, CycleGameReport{
					GameID:       rest.ID,
					StartTime:    rest.StartTime,
					HomeTeamName: rest.HomeTeamName,
					AwayTeamName: rest.AwayTeamName,
					Outcome:      GameOutcomeNotAttempted,
				})
			}
			break
		}

		entry := CycleGameReport{
			GameID:       g.ID,
			StartTime:    g.StartTime,
			HomeTeamName: g.HomeTeamName,
			AwayTeamName: g.AwayTeamName,
		}

		alloc, allocErr := s.AllocateForGame(ctx, g, now)
		if allocErr != nil {
			s.logger.ErrorContext(ctx, "allocate duty for game failed", "game_id", g.ID, "error", allocErr)
			entry.Outcome = GameOutcomeRepositoryError
			entry.Error = allocErr.Error()
		} else {
			entry.Outcome = alloc.Outcome
			entry.NewlyStaffed = alloc.NewlyStaffed
			entry.NewlyAssigned = alloc.NewlyAssigned
			if len(alloc.NewlyAssigned) > 0 {
				report.AssignmentsMade = append(report.AssignmentsMade, CycleAssignment{
					GameID:        g.ID,
					GameTime:      g.StartTime,
					AssignedUsers: alloc.NewlyAssigned,
				})
			}
		}

		assigned, listErr := s.dutyRepo.ListForGame(ctx, g.ID)
		if listErr != nil {
			s.logger.WarnContext(ctx, "list game roster failed", "game_id", g.ID, "error", listErr)
		}
		for _, u := range assigned {
			entry.AllAssignedIDs = append(entry.AllAssignedIDs, u.ID)
			entry.AllAssignedNames = append(entry.AllAssignedNames, u.Name)
		}

		report.Games = append(report.Games, entry)
	}

	return report, nil
}

// AllocateForGame fills the game's remaining duty slots in one transaction.
// The fill is all-or-nothing: when fewer ranked candidates exist than open
// slots, nothing is assigned this pass and a later cycle retries.
func (s *DutyService) AllocateForGame(ctx context.Context, g game.Game, now time.Time) (GameAllocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DutyService.AllocateForGame")
	defer span.End()

	current, err := s.dutyRepo.CountForGame(ctx, g.ID)
	if err != nil {
		return GameAllocation{}, fmt.Errorf("count assignments for game id=%d: %w", g.ID, err)
	}

	needed := s.cfg.DutySize - current
	if needed <= 0 {
		return GameAllocation{Outcome: GameOutcomeAlreadyStaffed}, nil
	}

	weekday := roster.WeekdayOf(g.StartTime)
	candidates, err := s.rosterRepo.AvailableOn(ctx, weekday)
	if err != nil {
		return GameAllocation{}, fmt.Errorf("load available users for weekday=%d: %w", weekday, err)
	}

	if current > 0 {
		assigned, listErr := s.dutyRepo.ListForGame(ctx, g.ID)
		if listErr != nil {
			return GameAllocation{}, fmt.Errorf("list assignees for game id=%d: %w", g.ID, listErr)
		}
		candidates = withoutAssigned(candidates, assigned)
	}

	ranked := RankCandidates(candidates)
	if len(ranked) < needed {
		s.logger.InfoContext(ctx, "not enough available candidates, leaving game unassigned this cycle",
			"game_id", g.ID,
			"needed", needed,
			"available", len(ranked),
		)
		return GameAllocation{Outcome: GameOutcomeInsufficientCandidates}, nil
	}

	picks := ranked[:needed]
	userIDs := make([]int64, 0, len(picks))
	nameByID := make(map[int64]string, len(picks))
	for _, candidate := range picks {
		userIDs = append(userIDs, candidate.User.ID)
		nameByID[candidate.User.ID] = candidate.User.Name
	}

	outcome, err := s.dutyRepo.AssignUsersToGame(ctx, g.ID, userIDs, now, s.cfg.DutySize)
	if err != nil {
		return GameAllocation{}, fmt.Errorf("assign users to game id=%d: %w", g.ID, err)
	}

	newly := make([]duty.AssignedUser, 0, len(outcome.InsertedUserIDs))
	for _, userID := range outcome.InsertedUserIDs {
		newly = append(newly, duty.AssignedUser{ID: userID, Name: nameByID[userID]})
	}

	alloc := GameAllocation{
		NewlyAssigned: newly,
		NewlyStaffed:  outcome.MarkedAssigned,
		Outcome:       GameOutcomeAssigned,
	}
	if len(newly) == 0 {
		// A concurrent cycle won every slot between our count and the
		// transaction; the unique constraint made our inserts no-ops.
		alloc.Outcome = GameOutcomeAlreadyStaffed
	}

	return alloc, nil
}

// withoutAssigned removes users already holding a slot on the game from the
// candidate pool. Open slots must only be offered to users without one, or
// a top-up pick would no-op on the unique constraint and leave the slot empty.
func withoutAssigned(candidates []roster.UserWithStats, assigned []duty.AssignedUser) []roster.UserWithStats {
	if len(assigned) == 0 {
		return candidates
	}

	taken := make(map[int64]struct{}, len(assigned))
	for _, u := range assigned {
		taken[u.ID] = struct{}{}
	}

	out := make([]roster.UserWithStats, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := taken[candidate.User.ID]; ok {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

// PreviewWindow fetches the feed and applies window selection without
// touching assignments. Zero overrides fall back to the configured values.
func (s *DutyService) PreviewWindow(ctx context.Context, teamID int64, limit int, now time.Time) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DutyService.PreviewWindow")
	defer span.End()

	if teamID <= 0 {
		teamID = s.cfg.TeamID
	}
	if limit <= 0 {
		limit = s.cfg.WindowLimit
	}

	feed, err := s.provider.FetchFixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch fixtures feed: %v", ErrDependencyUnavailable, err)
	}

	return SelectWindow(feed, teamID, limit, now, s.logger), nil
}

// persistWindow upserts every observed window game. Upserts are independent
// of each other and of the allocation pass, so they fan out on a small pool;
// a failed upsert is logged and allocation still proceeds.
func (s *DutyService) persistWindow(ctx context.Context, window []game.Game) {
	poolSize := len(window)
	if poolSize > upsertPoolSize {
		poolSize = upsertPoolSize
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		s.logger.WarnContext(ctx, "create upsert pool failed, falling back to sequential upserts", "error", err)
		for _, g := range window {
			s.upsertGame(ctx, g)
		}
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, g := range window {
		g := g
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			s.upsertGame(ctx, g)
		}); submitErr != nil {
			wg.Done()
			s.upsertGame(ctx, g)
		}
	}
	wg.Wait()
}

func (s *DutyService) upsertGame(ctx context.Context, g game.Game) {
	if err := s.gameRepo.Upsert(ctx, g); err != nil {
		s.logger.WarnContext(ctx, "upsert observed game failed", "game_id", g.ID, "error", err)
	}
}
