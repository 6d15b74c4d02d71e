package memory

import (
	"testing"
	"time"
)

func newDutyFixture() (*DutyRepository, *GameRepository, *RosterRepository) {
	games := NewGameRepository(SeedGames())
	roster := NewRosterRepository(SeedUsers(), SeedAvailability())
	return NewDutyRepository(games, roster), games, roster
}

func TestDutyRepository_AssignUsersToGame_CapsAtDutySize(t *testing.T) {
	repo, games, _ := newDutyFixture()
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	outcome, err := repo.AssignUsersToGame(t.Context(), 4419001, []int64{1, 2, 3}, at, 2)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	if len(outcome.InsertedUserIDs) != 2 {
		t.Fatalf("expected 2 inserted users, got %v", outcome.InsertedUserIDs)
	}
	if outcome.FinalCount != 2 {
		t.Fatalf("expected final count 2, got %d", outcome.FinalCount)
	}
	if !outcome.MarkedAssigned {
		t.Fatalf("expected the game to be marked assigned")
	}

	g, ok, getErr := games.GetByID(t.Context(), 4419001)
	if getErr != nil || !ok {
		t.Fatalf("load game: ok=%t err=%v", ok, getErr)
	}
	if !g.IsAssigned {
		t.Fatalf("expected persisted game flagged assigned")
	}
}

func TestDutyRepository_AssignUsersToGame_IdempotentForSameUser(t *testing.T) {
	repo, _, roster := newDutyFixture()
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	first, err := repo.AssignUsersToGame(t.Context(), 4419001, []int64{1}, at, 2)
	if err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	if len(first.InsertedUserIDs) != 1 {
		t.Fatalf("expected 1 inserted user, got %v", first.InsertedUserIDs)
	}

	second, err := repo.AssignUsersToGame(t.Context(), 4419001, []int64{1, 2}, at, 2)
	if err != nil {
		t.Fatalf("second assign failed: %v", err)
	}
	// User 1 already holds a slot: only user 2 is inserted and counted.
	if len(second.InsertedUserIDs) != 1 || second.InsertedUserIDs[0] != 2 {
		t.Fatalf("expected only user 2 inserted, got %v", second.InsertedUserIDs)
	}
	if second.FinalCount != 2 {
		t.Fatalf("expected final count 2, got %d", second.FinalCount)
	}

	users, err := roster.ListWithStats(t.Context())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	for _, u := range users {
		if u.User.ID == 1 && u.Stats.TotalGamesAssigned != 1 {
			t.Fatalf("expected user 1 counted once, got %d", u.Stats.TotalGamesAssigned)
		}
	}
}

func TestDutyRepository_AssignUsersToGame_UnknownGame(t *testing.T) {
	repo, _, _ := newDutyFixture()

	_, err := repo.AssignUsersToGame(t.Context(), 999, []int64{1}, time.Now(), 2)
	if err == nil {
		t.Fatalf("expected error for unknown game")
	}
}

func TestDutyRepository_ListUpcoming_SkipsStartedGames(t *testing.T) {
	repo, _, _ := newDutyFixture()
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	if _, err := repo.AssignUsersToGame(t.Context(), 4419001, []int64{1, 2}, at, 2); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	// Before kickoff both assignments are listed.
	upcoming, err := repo.ListUpcoming(t.Context(), at)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming assignments, got %d", len(upcoming))
	}

	// After kickoff the game drops out of the listing.
	afterKickoff := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	upcoming, err = repo.ListUpcoming(t.Context(), afterKickoff)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 0 {
		t.Fatalf("expected no upcoming assignments after kickoff, got %d", len(upcoming))
	}
}
