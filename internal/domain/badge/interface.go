package badge

import (
	"github.com/fitstride-lab/backend/internal/entity"
)

const (
	CategoryStreak   = "streak"
	CategoryWorkouts = "workouts"
)

const (
	LevelBronze = "bronze"
	LevelSilver = "silver"
	LevelGold   = "gold"
)

// Achievement is a medal derived from an aggregate snapshot. Achievements
// are recomputed on every read and never persisted, so they can never drift
// from the counters they are derived from.
type Achievement struct {
	Category    string `json:"category"`
	Level       string `json:"level"`
	Threshold   int    `json:"threshold"`
	Description string `json:"description"`
}

type Scanner interface {
	// Category returns the name of the achievement group this scanner owns.
	Category() string

	// Scan returns every achievement of the category whose threshold the
	// snapshot has reached, in ascending threshold order.
	Scan(stat entity.UserStatistic) []Achievement
}
