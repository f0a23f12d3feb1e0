package repo

import "internportal/internal/domain"

const avatarURL = "https://images.pexels.com/photos/3785077/pexels-photo-3785077.jpeg?auto=compress&cs=tinysrgb&w=200&h=200&fit=crop"

// SeedProfile returns the fixed fundraiser profile.
func SeedProfile() domain.Profile {
	return domain.Profile{
		ID:             1,
		Name:           "Rubina Hakim",
		Email:          "rubinahakim95@gmail.com",
		ReferralCode:   "rubina2025",
		TotalDonations: 12750,
		JoinDate:       domain.NewDate(2024, 9, 15),
		Avatar:         avatarURL,
		Achievements: []domain.Achievement{
			{ID: 1, Title: "First Donation", Description: "Made your first successful referral", Unlocked: true, Icon: "🎯"},
			{ID: 2, Title: "Rising Star", Description: "Raised over $5,000", Unlocked: true, Icon: "⭐"},
			{ID: 3, Title: "Team Player", Description: "Raised over $10,000", Unlocked: true, Icon: "🤝"},
			{ID: 4, Title: "Super Fundraiser", Description: "Raise over $25,000", Unlocked: false, Icon: "🏆"},
			{ID: 5, Title: "Legend", Description: "Raise over $50,000", Unlocked: false, Icon: "👑"},
		},
		RecentActivity: domain.ActivityFeed{
			domain.DonationActivity{ID: 1, Amount: 150, Date: domain.NewDate(2024, 12, 20), Donor: "Sarah M."},
			domain.DonationActivity{ID: 2, Amount: 75, Date: domain.NewDate(2024, 12, 19), Donor: "Mike R."},
			domain.DonationActivity{ID: 3, Amount: 200, Date: domain.NewDate(2024, 12, 18), Donor: "Emily K."},
			domain.AchievementActivity{ID: 4, Title: "Team Player", Date: domain.NewDate(2024, 12, 17)},
		},
	}
}

// SeedLeaderboard returns the fixed leaderboard, already ranked.
func SeedLeaderboard() []domain.LeaderboardEntry {
	return []domain.LeaderboardEntry{
		{ID: 1, Name: "Alex Johnson", Amount: 12750, Rank: 1},
		{ID: 2, Name: "Sarah Wilson", Amount: 11200, Rank: 2},
		{ID: 3, Name: "Mike Chen", Amount: 9800, Rank: 3},
		{ID: 4, Name: "Emma Davis", Amount: 8500, Rank: 4},
		{ID: 5, Name: "James Miller", Amount: 7300, Rank: 5},
	}
}
