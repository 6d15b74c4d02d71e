package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/omerdahan/seatduty/internal/domain/duty"
	"github.com/omerdahan/seatduty/internal/domain/roster"
	"github.com/omerdahan/seatduty/internal/platform/logging"
)

// RosterService serves the read-side listing endpoints.
type RosterService struct {
	rosterRepo roster.Repository
	dutyRepo   duty.Repository
	logger     *logging.Logger
}

func NewRosterService(rosterRepo roster.Repository, dutyRepo duty.Repository, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		rosterRepo: rosterRepo,
		dutyRepo:   dutyRepo,
		logger:     logger,
	}
}

// ListUsers returns every user joined to their duty stats, ordered by name.
func (s *RosterService) ListUsers(ctx context.Context) ([]roster.UserWithStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListUsers")
	defer span.End()

	users, err := s.rosterRepo.ListWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users with stats: %w", err)
	}

	return users, nil
}

// ListUpcomingAssignments returns every assignment for a game that has not
// started yet, ordered by game time.
func (s *RosterService) ListUpcomingAssignments(ctx context.Context, now time.Time) ([]duty.UpcomingAssignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListUpcomingAssignments")
	defer span.End()

	assignments, err := s.dutyRepo.ListUpcoming(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list upcoming assignments: %w", err)
	}

	return assignments, nil
}
