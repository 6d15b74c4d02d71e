package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/omerdahan/seatduty/internal/domain/duty"
	"github.com/omerdahan/seatduty/internal/domain/roster"
	dutymock "github.com/omerdahan/seatduty/internal/mocks/domain/duty"
	rostermock "github.com/omerdahan/seatduty/internal/mocks/domain/roster"
	"github.com/omerdahan/seatduty/internal/platform/logging"
)

func TestRosterService_ListUsers_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	rosterRepo := rostermock.NewRepository(t)
	dutyRepo := dutymock.NewRepository(t)
	service := NewRosterService(rosterRepo, dutyRepo, logging.NewNop())

	expected := []roster.UserWithStats{
		{
			User:  roster.User{ID: 2, Name: "Noa Levi", IsActive: true},
			Stats: roster.Stats{TotalGamesAssigned: 1},
		},
		{
			User: roster.User{ID: 1, Name: "Omer Dahan", IsActive: true},
		},
	}

	rosterRepo.
		On("ListWithStats", mock.Anything).
		Return(expected, nil).
		Once()

	got, err := service.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected user count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].User.Name != "Noa Levi" {
		t.Fatalf("unexpected first user: %s", got[0].User.Name)
	}
}

func TestRosterService_ListUsers_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	rosterRepo := rostermock.NewRepository(t)
	dutyRepo := dutymock.NewRepository(t)
	service := NewRosterService(rosterRepo, dutyRepo, logging.NewNop())

	repoErr := errors.New("connection refused")
	rosterRepo.
		On("ListWithStats", mock.Anything).
		Return(nil, repoErr).
		Once()

	_, err := service.ListUsers(context.Background())
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestRosterService_ListUpcomingAssignmentsUsingMockery(t *testing.T) {
	t.Parallel()

	rosterRepo := rostermock.NewRepository(t)
	dutyRepo := dutymock.NewRepository(t)
	service := NewRosterService(rosterRepo, dutyRepo, logging.NewNop())

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	expected := []duty.UpcomingAssignment{
		{
			UserID:       1,
			UserName:     "Omer Dahan",
			GameID:       4419001,
			StartTime:    time.Date(2026, 9, 12, 20, 30, 0, 0, time.UTC),
			HomeTeamName: "Hapoel Beer Sheva",
			AwayTeamName: "Maccabi Haifa",
			Status:       duty.StatusAssigned,
		},
	}

	dutyRepo.
		On("ListUpcoming", mock.Anything, now).
		Return(expected, nil).
		Once()

	got, err := service.ListUpcomingAssignments(context.Background(), now)
	if err != nil {
		t.Fatalf("list upcoming assignments: %v", err)
	}
	if len(got) != 1 || got[0].GameID != 4419001 {
		t.Fatalf("unexpected assignments: %+v", got)
	}
}
