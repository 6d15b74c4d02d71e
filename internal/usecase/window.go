package usecase

import (
	"sort"
	"time"

	"github.com/omerdahan/seatduty/internal/domain/game"
	"github.com/omerdahan/seatduty/internal/platform/logging"
)

// SelectWindow reduces the raw feed to the duty window: future home games of
// teamID, earliest first, at most limit entries. Ties on start time keep the
// feed order. Games whose start time does not parse are logged and dropped;
// they never reach the allocator.
func SelectWindow(feed []FeedGame, teamID int64, limit int, now time.Time, logger *logging.Logger) []game.Game {
	if logger == nil {
		logger = logging.Default()
	}

	selected := make([]game.Game, 0, len(feed))
	for _, item := range feed {
		if item.HomeCompetitor.ID != teamID {
			continue
		}

		parsed, err := parseFeedGame(item)
		if err != nil {
			logger.Error("skip game with malformed start time",
				"game_id", item.ID,
				"start_time", item.StartTime,
				"error", err,
			)
			continue
		}
		if !parsed.StartsAfter(now) {
			continue
		}

		selected = append(selected, parsed)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].StartTime.Before(selected[j].StartTime)
	})

	if limit > 0 && len(selected) > limit {
		selected = selected[:limit]
	}

	return selected
}

func parseFeedGame(item FeedGame) (game.Game, error) {
	startTime, err := time.Parse(time.RFC3339, item.StartTime)
	if err != nil {
		return game.Game{}, err
	}

	return game.Game{
		ID:              item.ID,
		StartTime:       startTime.UTC(),
		HomeTeamID:      item.HomeCompetitor.ID,
		AwayTeamID:      item.AwayCompetitor.ID,
		HomeTeamName:    item.HomeCompetitor.Name,
		AwayTeamName:    item.AwayCompetitor.Name,
		Competition:     item.CompetitionDisplayName,
		StatusText:      item.StatusText,
		ShortStatusText: item.ShortStatusText,
	}, nil
}
