package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitstride-lab/backend/internal/domain/badge"
	"github.com/fitstride-lab/backend/internal/domain/statistic"
	"github.com/fitstride-lab/backend/internal/model"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/errorx"
	"github.com/fitstride-lab/backend/pkg/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newStatisticDomain(redisClient *testutil.MockRedisClient) StatisticDomain {
	activityRepo := repository.NewActivityRepository()
	return NewStatisticDomain(
		activityRepo,
		repository.NewStatisticRepository(),
		repository.NewUserRepository(),
		badge.NewDefaultManager(),
		statistic.New(activityRepo, redisClient),
	)
}

func Test_statisticDomain_GetStatisticsWithoutActivity(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain(&testutil.MockRedisClient{})

	resp, err := domain.GetStatistics(ctx, &model.GetStatisticsRequest{})
	require.NoError(t, err)
	require.Equal(t, &model.GetStatisticsResponse{
		Statistic:    model.UserStatistic{UserID: testutil.User2.ID},
		Achievements: []model.Achievement{},
	}, resp)
}

func Test_statisticDomain_GetStatisticsAfterRecording(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	activityDomain := newActivityDomain()
	day := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		_, err := activityDomain.Record(ctx, &model.RecordActivityRequest{
			DurationMinutes: 30,
			CaloriesBurned:  200,
			OccurredOn:      day.AddDate(0, 0, i).Format(model.DateFormat),
		})
		require.NoError(t, err)
	}

	domain := newStatisticDomain(&testutil.MockRedisClient{})
	resp, err := domain.GetStatistics(ctx, &model.GetStatisticsRequest{})
	require.NoError(t, err)
	require.Equal(t, 7, resp.Statistic.CurrentStreak)
	require.Equal(t, uint64(7), resp.Statistic.TotalWorkouts)
	require.Equal(t, []model.Achievement{
		{Category: badge.CategoryStreak, Level: badge.LevelBronze, Threshold: 7, Description: "7 day streak"},
	}, resp.Achievements)

	achievementsResp, err := domain.GetAchievements(ctx, &model.GetAchievementsRequest{})
	require.NoError(t, err)
	require.Equal(t, resp.Achievements, achievementsResp.Achievements)
}

func Test_statisticDomain_GetAchievementsByCategory(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	// Ten consecutive days earn medals in both categories.
	activityDomain := newActivityDomain()
	day := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		_, err := activityDomain.Record(ctx, &model.RecordActivityRequest{
			DurationMinutes: 30,
			CaloriesBurned:  200,
			OccurredOn:      day.AddDate(0, 0, i).Format(model.DateFormat),
		})
		require.NoError(t, err)
	}

	domain := newStatisticDomain(&testutil.MockRedisClient{})

	resp, err := domain.GetAchievements(ctx, &model.GetAchievementsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Achievements, 2)

	resp, err = domain.GetAchievements(ctx, &model.GetAchievementsRequest{
		Category: badge.CategoryWorkouts,
	})
	require.NoError(t, err)
	require.Equal(t, []model.Achievement{
		{Category: badge.CategoryWorkouts, Level: badge.LevelBronze, Threshold: 10, Description: "10 workouts completed"},
	}, resp.Achievements)

	_, err = domain.GetAchievements(ctx, &model.GetAchievementsRequest{Category: "points"})
	require.Error(t, err)

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_statisticDomain_GetActivityCalendar(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain(&testutil.MockRedisClient{})

	today := time.Now()
	begin := today.AddDate(0, 0, -2).Format(model.DateFormat)
	end := today.Format(model.DateFormat)

	resp, err := domain.GetActivityCalendar(ctx, &model.GetActivityCalendarRequest{
		Begin: begin,
		End:   end,
	})
	require.NoError(t, err)
	require.Len(t, resp.Marks, 3)
	require.False(t, resp.Marks[0].HasActivity)
	require.True(t, resp.Marks[1].HasActivity)
	require.True(t, resp.Marks[2].HasActivity)
	require.Equal(t, begin, resp.Marks[0].Date)
	require.Equal(t, end, resp.Marks[2].Date)
}

func Test_statisticDomain_GetActivityCalendarInvalidWindow(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain(&testutil.MockRedisClient{})

	_, err := domain.GetActivityCalendar(ctx, &model.GetActivityCalendarRequest{
		Begin: "2023-05-02",
		End:   "2023-05-01",
	})
	require.Error(t, err)

	_, err = domain.GetActivityCalendar(ctx, &model.GetActivityCalendarRequest{
		Begin: "2023-05-01",
	})
	require.Error(t, err)
}

func Test_statisticDomain_GetLeaderBoard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain(&testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return true, nil
		},
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			return []redis.Z{{Member: "user1", Score: 650}, {Member: "user2", Score: 400}}, nil
		},
	})

	resp, err := domain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{
		Period:    "week",
		OrderedBy: "calories",
		Offset:    0,
		Limit:     2,
	})
	require.NoError(t, err)
	require.Equal(t, &model.GetLeaderBoardResponse{
		LeaderBoard: []model.LeaderBoardEntry{
			{
				User: model.ShortUser{
					ID:     testutil.User1.ID,
					Handle: testutil.User1.Handle,
					Name:   testutil.User1.Name,
				},
				Value:        650,
				CurrentRank:  1,
				PreviousRank: 1,
			},
			{
				User: model.ShortUser{
					ID:     testutil.User2.ID,
					Handle: testutil.User2.Handle,
					Name:   testutil.User2.Name,
				},
				Value:        400,
				CurrentRank:  2,
				PreviousRank: 2,
			},
		},
	}, resp)
}

func Test_statisticDomain_GetLeaderBoardValidation(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain(&testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return true, nil
		},
	})

	_, err := domain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{
		Period:    "year",
		OrderedBy: "calories",
		Limit:     2,
	})
	require.Error(t, err)

	_, err = domain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{
		Period:    "week",
		OrderedBy: "steps",
		Limit:     2,
	})
	require.Error(t, err)
}
