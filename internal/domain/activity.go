package domain

import (
	"encoding/json"
	"fmt"
)

// ActivityType tags the variant of an activity entry on the wire.
type ActivityType string

const (
	ActivityTypeDonation    ActivityType = "donation"
	ActivityTypeAchievement ActivityType = "achievement"
)

// Activity is a recent-activity feed entry. The only implementations are
// DonationActivity and AchievementActivity.
type Activity interface {
	ActivityID() int
	Type() ActivityType
	Day() Date
	isActivity()
}

// DonationActivity records a donation received through the referral code.
type DonationActivity struct {
	ID     int
	Date   Date
	Amount int64
	Donor  string
}

func (a DonationActivity) ActivityID() int    { return a.ID }
func (a DonationActivity) Type() ActivityType { return ActivityTypeDonation }
func (a DonationActivity) Day() Date          { return a.Date }
func (DonationActivity) isActivity()          {}

type donationWire struct {
	ID     int          `json:"id"`
	Type   ActivityType `json:"type"`
	Amount int64        `json:"amount"`
	Date   Date         `json:"date"`
	Donor  string       `json:"donor"`
}

func (a DonationActivity) MarshalJSON() ([]byte, error) {
	return json.Marshal(donationWire{ID: a.ID, Type: ActivityTypeDonation, Amount: a.Amount, Date: a.Date, Donor: a.Donor})
}

// AchievementActivity records an achievement being unlocked.
type AchievementActivity struct {
	ID    int
	Date  Date
	Title string
}

func (a AchievementActivity) ActivityID() int    { return a.ID }
func (a AchievementActivity) Type() ActivityType { return ActivityTypeAchievement }
func (a AchievementActivity) Day() Date          { return a.Date }
func (AchievementActivity) isActivity()          {}

type achievementWire struct {
	ID    int          `json:"id"`
	Type  ActivityType `json:"type"`
	Title string       `json:"title"`
	Date  Date         `json:"date"`
}

func (a AchievementActivity) MarshalJSON() ([]byte, error) {
	return json.Marshal(achievementWire{ID: a.ID, Type: ActivityTypeAchievement, Title: a.Title, Date: a.Date})
}

// ActivityFeed is an ordered list of activities that decodes the tagged
// wire form back into the matching variant.
type ActivityFeed []Activity

func (f *ActivityFeed) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(ActivityFeed, 0, len(raw))
	for i, item := range raw {
		a, err := decodeActivity(item)
		if err != nil {
			return fmt.Errorf("activity %d: %w", i, err)
		}
		out = append(out, a)
	}
	*f = out
	return nil
}

func decodeActivity(b json.RawMessage) (Activity, error) {
	var tag struct {
		Type ActivityType `json:"type"`
	}
	if err := json.Unmarshal(b, &tag); err != nil {
		return nil, err
	}
	switch tag.Type {
	case ActivityTypeDonation:
		var w donationWire
		if err := json.Unmarshal(b, &w); err != nil {
			return nil, err
		}
		return DonationActivity{ID: w.ID, Date: w.Date, Amount: w.Amount, Donor: w.Donor}, nil
	case ActivityTypeAchievement:
		var w achievementWire
		if err := json.Unmarshal(b, &w); err != nil {
			return nil, err
		}
		return AchievementActivity{ID: w.ID, Date: w.Date, Title: w.Title}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, tag.Type)
	}
}
