package usecase

import (
	"sort"

	"github.com/omerdahan/seatduty/internal/domain/roster"
)

// RankCandidates orders duty candidates fairest-first: fewest total
// assignments, then longest since last assignment with never-assigned users
// ahead of everyone. The sort is stable, so equal candidates keep the
// repository's user-id ordering. Pure function, no I/O.
func RankCandidates(candidates []roster.UserWithStats) []roster.UserWithStats {
	ranked := append([]roster.UserWithStats(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.TotalGamesAssigned != b.TotalGamesAssigned {
			return a.TotalGamesAssigned < b.TotalGamesAssigned
		}

		switch {
		case a.LastAssignedAt == nil && b.LastAssignedAt == nil:
			return false
		case a.LastAssignedAt == nil:
			return true
		case b.LastAssignedAt == nil:
			return false
		default:
			return a.LastAssignedAt.Before(*b.LastAssignedAt)
		}
	})

	return ranked
}
