package badge

import (
	"github.com/fitstride-lab/backend/internal/entity"
)

var DefaultStreakTiers = []Tier{
	{Level: LevelBronze, Threshold: 7, Description: "7 day streak"},
	{Level: LevelSilver, Threshold: 30, Description: "30 day streak"},
	{Level: LevelGold, Threshold: 100, Description: "100 day streak"},
}

// streakScanner awards medals for the number of consecutive days with at
// least one completed activity. It reads the current streak, not the longest
// one, so a medal disappears from the list once the streak resets below its
// threshold.
type streakScanner struct {
	tiers []Tier
}

func NewStreakScanner(tiers []Tier) *streakScanner {
	return &streakScanner{tiers: sortTiers(tiers)}
}

func (*streakScanner) Category() string {
	return CategoryStreak
}

func (s *streakScanner) Scan(stat entity.UserStatistic) []Achievement {
	return scanTiers(s.Category(), s.tiers, stat.CurrentStreak)
}
