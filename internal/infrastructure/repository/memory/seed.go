package memory

import (
	"time"

	"github.com/omerdahan/seatduty/internal/domain/game"
	"github.com/omerdahan/seatduty/internal/domain/roster"
)

const SeedTeamID int64 = 579

func SeedUsers() []roster.User {
	return []roster.User{
		{ID: 1, Name: "Omer Dahan", Email: "omer@example.com", IsActive: true},
		{ID: 2, Name: "Noa Levi", Email: "noa@example.com", IsActive: true},
		{ID: 3, Name: "Amit Peretz", Email: "amit@example.com", IsActive: true},
		{ID: 4, Name: "Yael Mizrahi", Email: "yael@example.com", IsActive: true},
		{ID: 5, Name: "Dor Azulay", Email: "dor@example.com", IsActive: false},
	}
}

func SeedAvailability() []roster.AvailabilityRule {
	rules := make([]roster.AvailabilityRule, 0, 5*7)
	for _, userID := range []int64{1, 2, 3, 4} {
		for weekday := 0; weekday < 7; weekday++ {
			rules = append(rules, roster.AvailabilityRule{UserID: userID, Weekday: weekday, Available: true})
		}
	}
	// The inactive user keeps weekend availability so activation filters
	// stay observable in local runs.
	rules = append(rules,
		roster.AvailabilityRule{UserID: 5, Weekday: 6, Available: true},
	)
	return rules
}

func SeedGames() []game.Game {
	return []game.Game{
		{
			ID:           4419001,
			StartTime:    time.Date(2026, 9, 12, 20, 30, 0, 0, time.UTC),
			HomeTeamID:   SeedTeamID,
			HomeTeamName: "Hapoel Beer Sheva",
			AwayTeamID:   588,
			AwayTeamName: "Maccabi Haifa",
			Competition:  "Ligat Ha'Al",
			StatusText:   "Scheduled",
		},
		{
			ID:           4419002,
			StartTime:    time.Date(2026, 9, 20, 19, 0, 0, 0, time.UTC),
			HomeTeamID:   SeedTeamID,
			HomeTeamName: "Hapoel Beer Sheva",
			AwayTeamID:   602,
			AwayTeamName: "Beitar Jerusalem",
			Competition:  "Ligat Ha'Al",
			StatusText:   "Scheduled",
		},
	}
}
