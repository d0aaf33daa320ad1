package statistic

import (
	"context"
	"time"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/internal/model"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/errorx"
	"github.com/fitstride-lab/backend/pkg/xcontext"
	"github.com/fitstride-lab/backend/pkg/xredis"
	"github.com/puzpuzpuz/xsync"
	"github.com/redis/go-redis/v9"
)

type Leaderboard interface {
	GetLeaderBoard(
		ctx context.Context,
		orderedBy string,
		period entity.LeaderBoardPeriodType,
		offset, limit int,
	) ([]model.LeaderBoardEntry, error)

	GetRank(
		ctx context.Context,
		userID, orderedBy string,
		period entity.LeaderBoardPeriodType,
	) (uint64, error)

	ChangeCaloriesLeaderboard(
		ctx context.Context,
		value int64,
		occurredOn time.Time,
		userID string,
	) error

	ChangeWorkoutLeaderboard(
		ctx context.Context,
		value int64,
		occurredOn time.Time,
		userID string,
	) error
}

type leaderboard struct {
	activityRepo repository.ActivityRepository
	redisClient  xredis.Client

	// Finished periods never change, so their rank tables are cached
	// in-process once loaded.
	prevRanks *xsync.MapOf[string, map[string]int]
}

func New(
	activityRepo repository.ActivityRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{
		activityRepo: activityRepo,
		redisClient:  redisClient,
		prevRanks:    xsync.NewMapOf[map[string]int](),
	}
}

func (l *leaderboard) GetLeaderBoard(
	ctx context.Context,
	orderedBy string,
	period entity.LeaderBoardPeriodType,
	offset, limit int,
) ([]model.LeaderBoardEntry, error) {
	key, err := redisKeyLeaderBoard(orderedBy, period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid ordered by field: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid ordered by field")
	}

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return nil, errorx.Unknown
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, period); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	prevRanks := l.previousRanks(ctx, orderedBy, period)

	leaderboard := []model.LeaderBoardEntry{}
	for i, z := range results {
		userID := z.Member.(string)
		leaderboard = append(leaderboard, model.LeaderBoardEntry{
			User:         model.ShortUser{ID: userID},
			Value:        int(z.Score),
			CurrentRank:  offset + i + 1,
			PreviousRank: prevRanks[userID],
		})
	}

	return leaderboard, nil
}

func (l *leaderboard) GetRank(
	ctx context.Context,
	userID string,
	orderedBy string,
	period entity.LeaderBoardPeriodType,
) (uint64, error) {
	key, err := redisKeyLeaderBoard(orderedBy, period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid ordered by field: %v", err)
		return 0, errorx.New(errorx.BadRequest, "Invalid ordered by field")
	}

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return 0, errorx.Unknown
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, period); err != nil {
			return 0, err
		}
	}

	rank, err := l.redisClient.ZRevRank(ctx, key, userID)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get rev rank redis: %v", err)
		return 0, nil
	}

	return rank + 1, nil
}

func (l *leaderboard) ChangeCaloriesLeaderboard(
	ctx context.Context,
	value int64,
	occurredOn time.Time,
	userID string,
) error {
	return l.changeAllPeriods(ctx, value, occurredOn, userID, "calories")
}

func (l *leaderboard) ChangeWorkoutLeaderboard(
	ctx context.Context,
	value int64,
	occurredOn time.Time,
	userID string,
) error {
	return l.changeAllPeriods(ctx, value, occurredOn, userID, "workouts")
}

func (l *leaderboard) changeAllPeriods(
	ctx context.Context,
	value int64,
	occurredOn time.Time,
	userID, orderedBy string,
) error {
	weekPeriod, err := ToPeriodWithTime("week", occurredOn)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid period: %v", err)
		return errorx.Unknown
	}

	err = l.changeLeaderboard(ctx, value, userID, orderedBy, weekPeriod)
	if err != nil {
		return err
	}

	monthPeriod, err := ToPeriodWithTime("month", occurredOn)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid period: %v", err)
		return errorx.Unknown
	}

	err = l.changeLeaderboard(ctx, value, userID, orderedBy, monthPeriod)
	if err != nil {
		return err
	}

	return nil
}

func (l *leaderboard) changeLeaderboard(
	ctx context.Context,
	value int64,
	userID string,
	orderedBy string,
	period entity.LeaderBoardPeriodType,
) error {
	key, err := redisKeyLeaderBoard(orderedBy, period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid ordered by field: %v", err)
		return errorx.New(errorx.BadRequest, "Invalid ordered by field")
	}

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	// If the key didn't exist in redis, no need to update. The next read
	// warm-fills it from database anyway.
	if !ok {
		return nil
	}

	if err := l.redisClient.ZIncrBy(ctx, key, value, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
	}

	return nil
}

// previousRanks returns the rank of every member on the previous period
// board with the same ordering. Any failure degrades to an empty table, the
// leaderboard is still served without previous ranks.
func (l *leaderboard) previousRanks(
	ctx context.Context, orderedBy string, period entity.LeaderBoardPeriodType,
) map[string]int {
	prev, err := ToLastPeriod(period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot determine previous period: %v", err)
		return nil
	}

	key, err := redisKeyLeaderBoard(orderedBy, prev)
	if err != nil {
		return nil
	}

	if ranks, ok := l.prevRanks.Load(key); ok {
		return ranks
	}

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return nil
	}

	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, prev); err != nil {
			return nil
		}
	}

	// Offset 0 with limit 0 translates to the range [0, -1], the full board.
	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, 0, 0)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil
	}

	ranks := make(map[string]int, len(results))
	for i, z := range results {
		ranks[z.Member.(string)] = i + 1
	}

	l.prevRanks.Store(key, ranks)
	return ranks
}

func (l *leaderboard) loadLeaderboardFromDB(
	ctx context.Context, period entity.LeaderBoardPeriodType,
) error {
	calories, err := l.activityRepo.SumCaloriesByUser(ctx, period.Start(), period.End())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load calories statistic from database: %v", err)
		return errorx.Unknown
	}

	workouts, err := l.activityRepo.CountByUser(ctx, period.Start(), period.End())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load workout statistic from database: %v", err)
		return errorx.Unknown
	}

	caloriesKey := redisKeyCaloriesLeaderBoard(period)
	for _, row := range calories {
		err := l.redisClient.ZAdd(ctx, caloriesKey, redis.Z{Member: row.UserID, Score: float64(row.Value)})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot zadd redis: %v", err)
			return errorx.Unknown
		}
	}

	workoutKey := redisKeyWorkoutLeaderBoard(period)
	for _, row := range workouts {
		err := l.redisClient.ZAdd(ctx, workoutKey, redis.Z{Member: row.UserID, Score: float64(row.Value)})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot zadd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
