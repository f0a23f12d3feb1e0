package domain

// LeaderboardEntry is one pre-ranked row of the fundraising leaderboard.
type LeaderboardEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Rank   int    `json:"rank"`
}

// RankOf returns the rank of the first entry whose name equals name.
// Matching is by display name only, so two fundraisers sharing a name
// resolve to whichever appears first.
func RankOf(entries []LeaderboardEntry, name string) (int, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e.Rank, true
		}
	}
	return 0, false
}
