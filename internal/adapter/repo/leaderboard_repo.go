package repo

import (
	"context"

	"internportal/internal/domain"
)

// LeaderboardRepo implements domain.LeaderboardRepository over in-memory
// seed data. Entries are served in the order given, which the seed keeps
// ascending by rank.
type LeaderboardRepo struct {
	entries []domain.LeaderboardEntry
}

func NewLeaderboardRepo(entries []domain.LeaderboardEntry) *LeaderboardRepo {
	return &LeaderboardRepo{entries: append([]domain.LeaderboardEntry(nil), entries...)}
}

// List returns a copy of the leaderboard.
func (r *LeaderboardRepo) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.LeaderboardEntry(nil), r.entries...), nil
}
