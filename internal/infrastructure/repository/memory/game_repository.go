package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/omerdahan/seatduty/internal/domain/game"
)

type GameRepository struct {
	mu    sync.RWMutex
	games map[int64]game.Game
	now   func() time.Time
}

func NewGameRepository(games []game.Game) *GameRepository {
	byID := make(map[int64]game.Game, len(games))
	for _, item := range games {
		byID[item.ID] = item
	}

	return &GameRepository{games: byID, now: time.Now}
}

func (r *GameRepository) Upsert(_ context.Context, g game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.games[g.ID]; ok {
		g.IsAssigned = existing.IsAssigned
	}
	r.games[g.ID] = g
	return nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.games[gameID]
	return g, ok, nil
}

func (r *GameRepository) SetAssigned(_ context.Context, gameID int64, assigned bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.games[gameID]
	if !ok {
		return nil
	}
	g.IsAssigned = assigned
	r.games[gameID] = g
	return nil
}

func (r *GameRepository) ListUpcoming(_ context.Context) ([]game.Game, error) {
	now := r.now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	for _, g := range r.games {
		if g.StartsAfter(now) {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
