package badge

import (
	"github.com/fitstride-lab/backend/internal/entity"
)

var DefaultWorkoutTiers = []Tier{
	{Level: LevelBronze, Threshold: 10, Description: "10 workouts completed"},
	{Level: LevelSilver, Threshold: 50, Description: "50 workouts completed"},
	{Level: LevelGold, Threshold: 200, Description: "200 workouts completed"},
}

// workoutScanner awards medals for the total number of completed activities.
// The total only grows, so these medals never disappear once earned.
type workoutScanner struct {
	tiers []Tier
}

func NewWorkoutScanner(tiers []Tier) *workoutScanner {
	return &workoutScanner{tiers: sortTiers(tiers)}
}

func (*workoutScanner) Category() string {
	return CategoryWorkouts
}

func (s *workoutScanner) Scan(stat entity.UserStatistic) []Achievement {
	total := int(stat.TotalWorkouts)
	return scanTiers(s.Category(), s.tiers, total)
}
