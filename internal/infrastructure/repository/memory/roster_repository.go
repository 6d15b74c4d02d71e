package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/omerdahan/seatduty/internal/domain/roster"
)

type RosterRepository struct {
	mu           sync.RWMutex
	users        map[int64]roster.User
	availability map[int64]map[int]bool
	stats        map[int64]roster.Stats
}

func NewRosterRepository(users []roster.User, rules []roster.AvailabilityRule) *RosterRepository {
	byID := make(map[int64]roster.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	availability := make(map[int64]map[int]bool)
	for _, rule := range rules {
		days, ok := availability[rule.UserID]
		if !ok {
			days = make(map[int]bool, 7)
			availability[rule.UserID] = days
		}
		days[rule.Weekday] = rule.Available
	}

	return &RosterRepository{
		users:        byID,
		availability: availability,
		stats:        make(map[int64]roster.Stats),
	}
}

func (r *RosterRepository) AvailableOn(_ context.Context, weekday int) ([]roster.UserWithStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.UserWithStats, 0, len(r.users))
	for _, u := range r.users {
		if !u.IsActive {
			continue
		}
		if !r.availability[u.ID][weekday] {
			continue
		}
		out = append(out, roster.UserWithStats{User: u, Stats: r.stats[u.ID]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].User.ID < out[j].User.ID })
	return out, nil
}

func (r *RosterRepository) ListWithStats(_ context.Context) ([]roster.UserWithStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.UserWithStats, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, roster.UserWithStats{User: u, Stats: r.stats[u.ID]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].User.Name != out[j].User.Name {
			return out[i].User.Name < out[j].User.Name
		}
		return out[i].User.ID < out[j].User.ID
	})
	return out, nil
}

// BumpStats mirrors the duty repository's stats upsert so the memory duty
// repository can keep both stores consistent inside its lock.
func (r *RosterRepository) BumpStats(userID, gameID int64, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stats[userID]
	s.TotalGamesAssigned++
	s.LastAssignedGameID = gameID
	assignedAt := at
	s.LastAssignedAt = &assignedAt
	r.stats[userID] = s
}

// UserName resolves a user's display name, empty when unknown.
func (r *RosterRepository) UserName(userID int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users[userID].Name
}
