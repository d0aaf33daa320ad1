package badge

import (
	"testing"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestManager_Evaluate(t *testing.T) {
	manager := NewDefaultManager()

	achievements := manager.Evaluate(entity.UserStatistic{
		UserID:        "user1",
		CurrentStreak: 30,
		TotalWorkouts: 9,
	})

	// The streak sits exactly at the silver threshold, the workout total is
	// one short of bronze.
	require.Equal(t, []Achievement{
		{Category: CategoryStreak, Level: LevelBronze, Threshold: 7, Description: "7 day streak"},
		{Category: CategoryStreak, Level: LevelSilver, Threshold: 30, Description: "30 day streak"},
	}, achievements)
}

func TestManager_EvaluateOrdering(t *testing.T) {
	manager := NewDefaultManager()

	achievements := manager.Evaluate(entity.UserStatistic{
		UserID:        "user1",
		CurrentStreak: 100,
		TotalWorkouts: 200,
	})

	require.Len(t, achievements, 6)
	for i, category := range []string{
		CategoryStreak, CategoryStreak, CategoryStreak,
		CategoryWorkouts, CategoryWorkouts, CategoryWorkouts,
	} {
		require.Equal(t, category, achievements[i].Category)
	}

	require.True(t, achievements[0].Threshold < achievements[1].Threshold)
	require.True(t, achievements[1].Threshold < achievements[2].Threshold)
	require.True(t, achievements[3].Threshold < achievements[4].Threshold)
	require.True(t, achievements[4].Threshold < achievements[5].Threshold)
}

func TestManager_EvaluateZeroSnapshot(t *testing.T) {
	manager := NewDefaultManager()
	require.Empty(t, manager.Evaluate(entity.UserStatistic{UserID: "user1"}))
}

func TestStreakScanner_MedalsAreVolatile(t *testing.T) {
	scanner := NewStreakScanner(DefaultStreakTiers)

	before := scanner.Scan(entity.UserStatistic{CurrentStreak: 8, LongestStreak: 8})
	require.Len(t, before, 1)
	require.Equal(t, LevelBronze, before[0].Level)

	// The streak reset but the longest streak kept its value. The medal is
	// derived from the current streak, so it is gone.
	after := scanner.Scan(entity.UserStatistic{CurrentStreak: 1, LongestStreak: 8})
	require.Empty(t, after)
}

func TestWorkoutScanner_UsesTotalWorkouts(t *testing.T) {
	scanner := NewWorkoutScanner(DefaultWorkoutTiers)

	achievements := scanner.Scan(entity.UserStatistic{TotalWorkouts: 50})
	require.Len(t, achievements, 2)
	require.Equal(t, LevelBronze, achievements[0].Level)
	require.Equal(t, LevelSilver, achievements[1].Level)
}

func TestScanTiers_UnsortedConfig(t *testing.T) {
	scanner := NewStreakScanner([]Tier{
		{Level: LevelGold, Threshold: 100},
		{Level: LevelBronze, Threshold: 7},
		{Level: LevelSilver, Threshold: 30},
	})

	achievements := scanner.Scan(entity.UserStatistic{CurrentStreak: 35})
	require.Len(t, achievements, 2)
	require.Equal(t, 7, achievements[0].Threshold)
	require.Equal(t, 30, achievements[1].Threshold)
}
