package domain

import (
	"context"
	"errors"
	"time"

	"github.com/fitstride-lab/backend/internal/domain/badge"
	"github.com/fitstride-lab/backend/internal/domain/statistic"
	"github.com/fitstride-lab/backend/internal/domain/streak"
	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/internal/model"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/dateutil"
	"github.com/fitstride-lab/backend/pkg/errorx"
	"github.com/fitstride-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityDomain interface {
	Record(context.Context, *model.RecordActivityRequest) (*model.RecordActivityResponse, error)
	GetList(context.Context, *model.GetListActivityRequest) (*model.GetListActivityResponse, error)
}

type activityDomain struct {
	activityRepo  repository.ActivityRepository
	statisticRepo repository.StatisticRepository
	badgeManager  *badge.Manager
	leaderboard   statistic.Leaderboard
}

func NewActivityDomain(
	activityRepo repository.ActivityRepository,
	statisticRepo repository.StatisticRepository,
	badgeManager *badge.Manager,
	leaderboard statistic.Leaderboard,
) *activityDomain {
	return &activityDomain{
		activityRepo:  activityRepo,
		statisticRepo: statisticRepo,
		badgeManager:  badgeManager,
		leaderboard:   leaderboard,
	}
}

func (d *activityDomain) Record(
	ctx context.Context, req *model.RecordActivityRequest,
) (*model.RecordActivityResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	occurredOn := time.Now()
	if req.OccurredOn != "" {
		var err error
		occurredOn, err = time.Parse(model.DateFormat, req.OccurredOn)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot parse occurred on date: %v", err)
			return nil, errorx.New(errorx.BadRequest, "Invalid occurred on date")
		}
	}

	kind := req.Kind
	if kind == "" {
		kind = entity.ActivityKindWorkout
	}

	event := streak.Event{
		Kind:            kind,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		OccurredOn:      occurredOn,
	}

	if err := event.Validate(); err != nil {
		xcontext.Logger(ctx).Debugf("Invalid activity event: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Duration and calories must not be negative")
	}

	maxRetry := xcontext.Configs(ctx).Activity.MaxUpdateRetry

	var stat *entity.UserStatistic
	var activity *entity.Activity
	for attempt := 0; attempt < maxRetry; attempt++ {
		var err error
		stat, activity, err = d.recordOnce(ctx, userID, kind, event)
		if err == nil {
			break
		}

		// A version conflict proves another request committed between our
		// read and write. The next attempt opens a new transaction, so it
		// reads the committed snapshot instead of a stale read view.
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}

		return nil, err
	}

	if stat == nil {
		xcontext.Logger(ctx).Warnf("Statistic update of user %s exceeded %d attempts", userID, maxRetry)
		return nil, errorx.New(errorx.TooManyRequests, "Too many concurrent updates, please retry")
	}

	// Leaderboards live in redis and are warm-filled from database on read,
	// so a failed increment is dropped rather than failing the request.
	err := d.leaderboard.ChangeCaloriesLeaderboard(
		ctx, int64(event.CaloriesBurned), activity.OccurredOn, userID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update calories leaderboard: %v", err)
	}

	err = d.leaderboard.ChangeWorkoutLeaderboard(ctx, 1, activity.OccurredOn, userID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update workout leaderboard: %v", err)
	}

	return &model.RecordActivityResponse{
		Statistic:    model.ConvertUserStatistic(stat),
		Achievements: model.ConvertAchievements(d.badgeManager.Evaluate(*stat)),
	}, nil
}

// recordOnce runs one fold attempt in its own transaction: read the
// snapshot, fold the event, compare-and-set, insert the activity row. The
// transaction must not outlive the attempt, a repeatable-read transaction
// spanning retries would keep serving the stale snapshot that conflicted.
// Any rejection or conflict rolls back, so no activity row is left behind.
func (d *activityDomain) recordOnce(
	ctx context.Context, userID, kind string, event streak.Event,
) (*entity.UserStatistic, *entity.Activity, error) {
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	stat, err := d.statisticRepo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get statistic: %v", err)
			return nil, nil, errorx.Unknown
		}

		fresh := streak.NewSnapshot(userID)
		if err := d.statisticRepo.Create(ctx, &fresh); err != nil {
			// Lost a race creating the first snapshot. Re-read it on the
			// next attempt.
			xcontext.Logger(ctx).Debugf("Cannot create statistic: %v", err)
			return nil, nil, repository.ErrVersionConflict
		}

		stat = &fresh
	}

	next, err := streak.Apply(*stat, event)
	if err != nil {
		if errors.Is(err, streak.ErrOutOfOrderEvent) {
			return nil, nil, errorx.New(errorx.OutOfOrderActivity,
				"Activity is earlier than the last recorded day")
		}

		xcontext.Logger(ctx).Debugf("Cannot fold activity event: %v", err)
		return nil, nil, errorx.New(errorx.BadRequest, "Invalid activity event")
	}

	if err := d.statisticRepo.CompareAndSet(ctx, &next); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, nil, err
		}

		xcontext.Logger(ctx).Errorf("Cannot update statistic: %v", err)
		return nil, nil, errorx.Unknown
	}

	activity := &entity.Activity{
		SnowFlakeBase:   entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		UserID:          userID,
		Kind:            kind,
		DurationMinutes: event.DurationMinutes,
		CaloriesBurned:  event.CaloriesBurned,
		OccurredOn:      dateutil.UTCDate(event.OccurredOn),
	}

	if err := d.activityRepo.Create(ctx, activity); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create activity: %v", err)
		return nil, nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &next, activity, nil
}

func (d *activityDomain) GetList(
	ctx context.Context, req *model.GetListActivityRequest,
) (*model.GetListActivityResponse, error) {
	if req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow negative offset")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	begin, end, err := parseDateWindow(req.Begin, req.End)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot parse date window: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid begin or end date")
	}

	activities, err := d.activityRepo.GetList(ctx, repository.GetListActivityFilter{
		UserID: xcontext.RequestUserID(ctx),
		Kind:   req.Kind,
		Begin:  begin,
		End:    end,
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of activities: %v", err)
		return nil, errorx.Unknown
	}

	result := make([]model.Activity, 0, len(activities))
	for i := range activities {
		result = append(result, model.ConvertActivity(&activities[i]))
	}

	return &model.GetListActivityResponse{Activities: result}, nil
}

// parseDateWindow parses optional "2006-01-02" bounds. An empty string
// leaves the corresponding side unbounded.
func parseDateWindow(beginStr, endStr string) (begin, end time.Time, err error) {
	if beginStr != "" {
		begin, err = time.Parse(model.DateFormat, beginStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr != "" {
		end, err = time.Parse(model.DateFormat, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	return begin, end, nil
}
