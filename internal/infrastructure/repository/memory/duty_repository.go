package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/omerdahan/seatduty/internal/domain/duty"
)

type assignmentKey struct {
	userID int64
	gameID int64
}

type DutyRepository struct {
	mu          sync.Mutex
	assignments map[assignmentKey]duty.Assignment
	games       *GameRepository
	roster      *RosterRepository
}

func NewDutyRepository(games *GameRepository, roster *RosterRepository) *DutyRepository {
	return &DutyRepository{
		assignments: make(map[assignmentKey]duty.Assignment),
		games:       games,
		roster:      roster,
	}
}

func (r *DutyRepository) CountForGame(_ context.Context, gameID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.countLocked(gameID), nil
}

func (r *DutyRepository) InsertIfAbsent(_ context.Context, userID, gameID int64, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(userID, gameID, at), nil
}

func (r *DutyRepository) UpsertStats(_ context.Context, userID, gameID int64, at time.Time) error {
	r.roster.BumpStats(userID, gameID, at)
	return nil
}

func (r *DutyRepository) ListForGame(_ context.Context, gameID int64) ([]duty.AssignedUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]duty.AssignedUser, 0, 2)
	for key := range r.assignments {
		if key.gameID != gameID {
			continue
		}
		out = append(out, duty.AssignedUser{ID: key.userID, Name: r.roster.UserName(key.userID)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *DutyRepository) ListUpcoming(ctx context.Context, now time.Time) ([]duty.UpcomingAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]duty.UpcomingAssignment, 0, len(r.assignments))
	for key, item := range r.assignments {
		g, ok, err := r.games.GetByID(ctx, key.gameID)
		if err != nil {
			return nil, err
		}
		if !ok || !g.StartsAfter(now) {
			continue
		}
		out = append(out, duty.UpcomingAssignment{
			UserID:       key.userID,
			UserName:     r.roster.UserName(key.userID),
			GameID:       key.gameID,
			StartTime:    g.StartTime,
			HomeTeamName: g.HomeTeamName,
			AwayTeamName: g.AwayTeamName,
			Status:       item.Status,
			AssignedAt:   item.AssignedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		if out[i].GameID != out[j].GameID {
			return out[i].GameID < out[j].GameID
		}
		return out[i].UserName < out[j].UserName
	})
	return out, nil
}

func (r *DutyRepository) AssignUsersToGame(ctx context.Context, gameID int64, userIDs []int64, at time.Time, dutySize int) (duty.AssignOutcome, error) {
	if dutySize <= 0 {
		return duty.AssignOutcome{}, fmt.Errorf("duty size must be greater than zero, got %d", dutySize)
	}

	if _, ok, err := r.games.GetByID(ctx, gameID); err != nil {
		return duty.AssignOutcome{}, err
	} else if !ok {
		return duty.AssignOutcome{}, fmt.Errorf("game id=%d does not exist", gameID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	outcome := duty.AssignOutcome{}
	count := r.countLocked(gameID)
	for _, userID := range userIDs {
		if count >= dutySize {
			break
		}
		if !r.insertLocked(userID, gameID, at) {
			continue
		}
		r.roster.BumpStats(userID, gameID, at)
		outcome.InsertedUserIDs = append(outcome.InsertedUserIDs, userID)
		count++
	}
	outcome.FinalCount = count

	if count >= dutySize {
		g, ok, err := r.games.GetByID(ctx, gameID)
		if err != nil {
			return duty.AssignOutcome{}, err
		}
		if ok && !g.IsAssigned {
			if err := r.games.SetAssigned(ctx, gameID, true); err != nil {
				return duty.AssignOutcome{}, err
			}
			outcome.MarkedAssigned = true
		}
	}

	return outcome, nil
}

func (r *DutyRepository) countLocked(gameID int64) int {
	count := 0
	for key := range r.assignments {
		if key.gameID == gameID {
			count++
		}
	}
	return count
}

func (r *DutyRepository) insertLocked(userID, gameID int64, at time.Time) bool {
	key := assignmentKey{userID: userID, gameID: gameID}
	if _, exists := r.assignments[key]; exists {
		return false
	}
	r.assignments[key] = duty.Assignment{
		UserID:     userID,
		GameID:     gameID,
		Status:     duty.StatusAssigned,
		AssignedAt: at,
	}
	return true
}
