package statistic_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/fitstride-lab/backend/internal/domain/statistic"
	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/testutil"
	"github.com/fitstride-lab/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// fakeBoard emulates the few sorted set commands the leaderboard uses.
type fakeBoard struct {
	scores map[string]map[string]float64
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{scores: map[string]map[string]float64{}}
}

func (f *fakeBoard) client() *testutil.MockRedisClient {
	return &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return len(f.scores[key]) > 0, nil
		},
		ZAddFunc: func(ctx context.Context, key string, z redis.Z) error {
			if f.scores[key] == nil {
				f.scores[key] = map[string]float64{}
			}
			f.scores[key][z.Member.(string)] = z.Score
			return nil
		},
		ZIncrByFunc: func(ctx context.Context, key string, incr int64, member string) error {
			f.scores[key][member] += float64(incr)
			return nil
		},
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			var all []redis.Z
			for member, score := range f.scores[key] {
				all = append(all, redis.Z{Member: member, Score: score})
			}
			sort.Slice(all, func(i, j int) bool { return all[i].Score > all[j].Score })

			if offset >= len(all) {
				return nil, nil
			}

			end := offset + limit
			if limit <= 0 || end > len(all) {
				end = len(all)
			}
			return all[offset:end], nil
		},
		ZRevRankFunc: func(ctx context.Context, key string, member string) (uint64, error) {
			var all []redis.Z
			for m, score := range f.scores[key] {
				all = append(all, redis.Z{Member: m, Score: score})
			}
			sort.Slice(all, func(i, j int) bool { return all[i].Score > all[j].Score })
			for i, z := range all {
				if z.Member == member {
					return uint64(i), nil
				}
			}
			return 0, redis.Nil
		},
	}
}

func insertActivity(t *testing.T, ctx context.Context, userID string, day time.Time, calories int) {
	t.Helper()
	activityRepo := repository.NewActivityRepository()
	require.NoError(t, activityRepo.Create(ctx, &entity.Activity{
		SnowFlakeBase:   entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		UserID:          userID,
		Kind:            entity.ActivityKindWorkout,
		DurationMinutes: 30,
		CaloriesBurned:  calories,
		OccurredOn:      day,
	}))
}

func Test_leaderboard_WarmFillFromDB(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.Create(ctx, &entity.User{Base: entity.Base{ID: "user1"}, Handle: "user1"}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{Base: entity.Base{ID: "user2"}, Handle: "user2"}))

	// A fixed week keeps every day inside one period.
	wednesday := time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC)
	period := entity.NewLeaderBoardPeriodWeek(wednesday)

	insertActivity(t, ctx, "user1", wednesday, 300)
	insertActivity(t, ctx, "user1", wednesday.AddDate(0, 0, 1), 250)
	insertActivity(t, ctx, "user2", wednesday, 400)

	board := newFakeBoard()
	lb := statistic.New(repository.NewActivityRepository(), board.client())

	entries, err := lb.GetLeaderBoard(ctx, "calories", period, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "user1", entries[0].User.ID)
	require.Equal(t, 550, entries[0].Value)
	require.Equal(t, 1, entries[0].CurrentRank)
	require.Equal(t, "user2", entries[1].User.ID)
	require.Equal(t, 400, entries[1].Value)
	require.Equal(t, 2, entries[1].CurrentRank)

	// Warm-fill loaded the workout board of the same period as well.
	entries, err = lb.GetLeaderBoard(ctx, "workouts", period, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "user1", entries[0].User.ID)
	require.Equal(t, 2, entries[0].Value)

	rank, err := lb.GetRank(ctx, "user2", "calories", period)
	require.NoError(t, err)
	require.Equal(t, uint64(2), rank)
}

func Test_leaderboard_ChangeUpdatesLoadedBoards(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.Create(ctx, &entity.User{Base: entity.Base{ID: "user1"}, Handle: "user1"}))

	wednesday := time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC)
	period := entity.NewLeaderBoardPeriodWeek(wednesday)

	insertActivity(t, ctx, "user1", wednesday, 100)

	board := newFakeBoard()
	lb := statistic.New(repository.NewActivityRepository(), board.client())

	// First read warm-fills the period from database.
	entries, err := lb.GetLeaderBoard(ctx, "calories", period, 0, 10)
	require.NoError(t, err)
	require.Equal(t, 100, entries[0].Value)

	require.NoError(t, lb.ChangeCaloriesLeaderboard(ctx, 200, wednesday, "user1"))
	require.NoError(t, lb.ChangeWorkoutLeaderboard(ctx, 1, wednesday, "user1"))

	entries, err = lb.GetLeaderBoard(ctx, "calories", period, 0, 10)
	require.NoError(t, err)
	require.Equal(t, 300, entries[0].Value)

	entries, err = lb.GetLeaderBoard(ctx, "workouts", period, 0, 10)
	require.NoError(t, err)
	require.Equal(t, 2, entries[0].Value)
}

func Test_leaderboard_InvalidOrderedBy(t *testing.T) {
	ctx := testutil.MockContext()
	lb := statistic.New(repository.NewActivityRepository(), newFakeBoard().client())

	period := entity.NewLeaderBoardPeriodWeek(time.Now())
	_, err := lb.GetLeaderBoard(ctx, "steps", period, 0, 10)
	require.Error(t, err)
}
