package usecase

import (
	"testing"
	"time"

	"github.com/omerdahan/seatduty/internal/domain/roster"
)

func candidate(id int64, name string, total int, lastAssigned *time.Time) roster.UserWithStats {
	return roster.UserWithStats{
		User: roster.User{ID: id, Name: name, IsActive: true},
		Stats: roster.Stats{
			TotalGamesAssigned: total,
			LastAssignedAt:     lastAssigned,
		},
	}
}

func TestRankCandidates_FewestAssignmentsFirst(t *testing.T) {
	t.Parallel()

	lastWeek := time.Date(2026, 8, 23, 20, 0, 0, 0, time.UTC)
	ranked := RankCandidates([]roster.UserWithStats{
		candidate(1, "Omer Dahan", 3, &lastWeek),
		candidate(2, "Noa Levi", 1, &lastWeek),
		candidate(3, "Amit Peretz", 0, nil),
	})

	wantOrder := []int64{3, 2, 1}
	for i, want := range wantOrder {
		if ranked[i].User.ID != want {
			t.Fatalf("expected user %d at position %d, got %d", want, i, ranked[i].User.ID)
		}
	}
}

func TestRankCandidates_BreaksTieByOldestLastAssignment(t *testing.T) {
	t.Parallel()

	older := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 15, 20, 0, 0, 0, time.UTC)
	ranked := RankCandidates([]roster.UserWithStats{
		candidate(1, "Omer Dahan", 2, &newer),
		candidate(2, "Noa Levi", 2, &older),
		candidate(3, "Amit Peretz", 2, nil),
	})

	// Equal totals: never-assigned first, then longest since last duty.
	wantOrder := []int64{3, 2, 1}
	for i, want := range wantOrder {
		if ranked[i].User.ID != want {
			t.Fatalf("expected user %d at position %d, got %d", want, i, ranked[i].User.ID)
		}
	}
}

func TestRankCandidates_StableOnFullTie(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 1, 20, 0, 0, 0, time.UTC)
	ranked := RankCandidates([]roster.UserWithStats{
		candidate(4, "Yael Mizrahi", 1, &at),
		candidate(2, "Noa Levi", 1, &at),
	})

	// Fully tied candidates keep the repository ordering.
	if ranked[0].User.ID != 4 || ranked[1].User.ID != 2 {
		t.Fatalf("expected stable order [4 2], got [%d %d]", ranked[0].User.ID, ranked[1].User.ID)
	}
}

func TestRankCandidates_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []roster.UserWithStats{
		candidate(1, "Omer Dahan", 5, nil),
		candidate(2, "Noa Levi", 0, nil),
	}

	RankCandidates(input)
	if input[0].User.ID != 1 || input[1].User.ID != 2 {
		t.Fatalf("expected input slice untouched, got [%d %d]", input[0].User.ID, input[1].User.ID)
	}
}
