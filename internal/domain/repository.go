package domain

import "context"

// ProfileRepository serves the fundraiser profile.
type ProfileRepository interface {
	Get(ctx context.Context) (Profile, error)
}

// LeaderboardRepository serves the leaderboard in ascending rank order.
type LeaderboardRepository interface {
	List(ctx context.Context) ([]LeaderboardEntry, error)
}
