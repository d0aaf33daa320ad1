package repository_test

import (
	"testing"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_statisticRepository_CompareAndSet(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	require.NoError(t, statisticRepo.Create(ctx, &entity.UserStatistic{
		UserID:        testutil.User1.ID,
		TotalWorkouts: 1,
		CurrentStreak: 1,
		LongestStreak: 1,
	}))

	stat, err := statisticRepo.Get(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), stat.Version)

	stat.TotalWorkouts = 2
	stat.CurrentStreak = 2
	stat.LongestStreak = 2
	require.NoError(t, statisticRepo.CompareAndSet(ctx, stat))
	require.Equal(t, uint64(1), stat.Version)

	reloaded, err := statisticRepo.Get(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(2), reloaded.TotalWorkouts)
	require.Equal(t, uint64(1), reloaded.Version)
}

func Test_statisticRepository_CompareAndSetConflict(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	require.NoError(t, statisticRepo.Create(ctx, &entity.UserStatistic{
		UserID:        testutil.User1.ID,
		TotalWorkouts: 1,
	}))

	first, err := statisticRepo.Get(ctx, testutil.User1.ID)
	require.NoError(t, err)

	second, err := statisticRepo.Get(ctx, testutil.User1.ID)
	require.NoError(t, err)

	first.TotalWorkouts = 2
	require.NoError(t, statisticRepo.CompareAndSet(ctx, first))

	// The second writer read version 0 which no longer exists.
	second.TotalWorkouts = 5
	err = statisticRepo.CompareAndSet(ctx, second)
	require.ErrorIs(t, err, repository.ErrVersionConflict)

	reloaded, err := statisticRepo.Get(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(2), reloaded.TotalWorkouts)
}
