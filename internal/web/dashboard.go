package web

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"internportal/internal/client"
	"internportal/internal/domain"
)

// Gateway is the slice of the API client the portal needs.
type Gateway interface {
	Login(ctx context.Context, email, password string) (client.AuthResponse, error)
	Signup(ctx context.Context, name, email, password string) (client.AuthResponse, error)
	GetInternData(ctx context.Context) (client.Response[domain.Profile], error)
	GetLeaderboard(ctx context.Context) (client.Response[[]domain.LeaderboardEntry], error)
}

// dashboardData is what the two dashboard fetches produced. Profile is nil
// when its fetch failed or returned no data.
type dashboardData struct {
	Profile     *domain.Profile
	Leaderboard []domain.LeaderboardEntry
}

// loadDashboard fetches the profile and the leaderboard concurrently and
// returns once both have settled. A failure only drops its own half.
func loadDashboard(ctx context.Context, gw Gateway, logger *zerolog.Logger) dashboardData {
	var (
		data dashboardData
		g    errgroup.Group
	)
	g.Go(func() error {
		resp, err := gw.GetInternData(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("error fetching intern data")
			return nil
		}
		if resp.Success && resp.Data != nil {
			data.Profile = resp.Data
		}
		return nil
	})
	g.Go(func() error {
		resp, err := gw.GetLeaderboard(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("error fetching leaderboard")
			return nil
		}
		if resp.Success && resp.Data != nil {
			data.Leaderboard = *resp.Data
		}
		return nil
	})
	_ = g.Wait()
	return data
}

type statCard struct {
	Label string
	Value string
	Icon  string
	Color string
}

type activityRow struct {
	Donation bool
	Text     string
	Date     string
}

type leaderboardRow struct {
	Rank   int
	Name   string
	Amount string
	Top    bool
	Viewer bool
}

// dashboardView is the render model of the dashboard body.
type dashboardView struct {
	Profile         domain.Profile
	FirstName       string
	Stats           []statCard
	Activity        []activityRow
	Achievements    []domain.Achievement
	NextAchievement *domain.Achievement
	Leaderboard     []leaderboardRow
}

func buildDashboardView(data dashboardData, f Formatter, now time.Time) dashboardView {
	p := *data.Profile

	rankText := "N/A"
	if rank, ok := domain.RankOf(data.Leaderboard, p.Name); ok && rank != 0 {
		rankText = strconv.Itoa(rank)
	}

	v := dashboardView{
		Profile:      p,
		FirstName:    p.FirstName(),
		Achievements: p.Achievements,
		Stats: []statCard{
			{Label: "Total Raised", Value: f.Currency(p.TotalDonations), Icon: "💵", Color: "text-green-600"},
			{Label: "Achievements", Value: fmt.Sprintf("%d/%d", p.UnlockedCount(), len(p.Achievements)), Icon: "🏅", Color: "text-blue-600"},
			{Label: "Leaderboard Rank", Value: "#" + rankText, Icon: "🏆", Color: "text-yellow-600"},
			{Label: "Days Active", Value: strconv.Itoa(DaysActive(p.JoinDate, now)), Icon: "📅", Color: "text-purple-600"},
		},
	}
	if next, ok := p.NextAchievement(); ok {
		v.NextAchievement = &next
	}

	for _, a := range p.RecentActivity {
		switch a := a.(type) {
		case domain.DonationActivity:
			v.Activity = append(v.Activity, activityRow{
				Donation: true,
				Text:     fmt.Sprintf("New donation of %s from %s", f.Currency(a.Amount), a.Donor),
				Date:     f.Date(a.Date),
			})
		case domain.AchievementActivity:
			v.Activity = append(v.Activity, activityRow{
				Text: "Achievement unlocked: " + a.Title,
				Date: f.Date(a.Date),
			})
		}
	}

	for _, e := range data.Leaderboard {
		v.Leaderboard = append(v.Leaderboard, leaderboardRow{
			Rank:   e.Rank,
			Name:   e.Name,
			Amount: f.Currency(e.Amount),
			Top:    e.Rank <= 3,
			Viewer: e.Name == p.Name,
		})
	}
	return v
}
