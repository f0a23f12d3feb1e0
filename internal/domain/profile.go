package domain

// Profile is the fundraiser's record shown on the dashboard. Exactly one
// exists and it never changes at runtime.
type Profile struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	ReferralCode   string        `json:"referralCode"`
	TotalDonations int64         `json:"totalDonations"`
	JoinDate       Date          `json:"joinDate"`
	Avatar         string        `json:"avatar"`
	Achievements   []Achievement `json:"achievements"`
	RecentActivity ActivityFeed  `json:"recentActivity"`
}

// Identity returns the user fields exposed by login responses.
func (p Profile) Identity() User {
	return User{ID: p.ID, Name: p.Name, Email: p.Email}
}

// Clone returns a deep copy so callers cannot alter seed data.
func (p Profile) Clone() Profile {
	out := p
	out.Achievements = append([]Achievement(nil), p.Achievements...)
	out.RecentActivity = append(ActivityFeed(nil), p.RecentActivity...)
	return out
}

// Achievement is a milestone badge. Unlocked is seeded, never computed.
type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Icon        string `json:"icon"`
}

// FirstName returns the first word of the profile name.
func (p Profile) FirstName() string {
	return firstWord(p.Name)
}

// UnlockedCount returns how many achievements are unlocked.
func (p Profile) UnlockedCount() int {
	n := 0
	for _, a := range p.Achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// NextAchievement returns the first locked achievement, if any.
func (p Profile) NextAchievement() (Achievement, bool) {
	for _, a := range p.Achievements {
		if !a.Unlocked {
			return a, true
		}
	}
	return Achievement{}, false
}
