package hunt

import (
	"math"
	"sort"
)

// Standing is one leaderboard row before display formatting.
type Standing struct {
	Rank  int
	Team  Team
	Score Score
}

// Rank orders rows in place — score descending, completed before
// not-completed, then elapsed ascending for completed teams — and assigns
// dense sequential ranks starting at 1. The sort is stable, so rows that
// tie on every key keep their input order (team creation order).
func Rank(rows []Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Score.Points != b.Score.Points {
			return a.Score.Points > b.Score.Points
		}
		ac, bc := a.Team.CompletedAt != nil, b.Team.CompletedAt != nil
		if ac != bc {
			return ac
		}
		return elapsedKey(a) < elapsedKey(b)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
}

// elapsedKey sorts incomplete teams after every completed team.
func elapsedKey(s Standing) float64 {
	if s.Team.CompletedAt == nil || s.Score.Elapsed == nil {
		return math.Inf(1)
	}
	return s.Score.Elapsed.Seconds()
}
