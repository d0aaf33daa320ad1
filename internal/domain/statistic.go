package domain

import (
	"context"
	"errors"

	"github.com/fitstride-lab/backend/internal/domain/badge"
	"github.com/fitstride-lab/backend/internal/domain/calendar"
	"github.com/fitstride-lab/backend/internal/domain/statistic"
	"github.com/fitstride-lab/backend/internal/domain/streak"
	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/internal/model"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/errorx"
	"github.com/fitstride-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type StatisticDomain interface {
	GetStatistics(context.Context, *model.GetStatisticsRequest) (*model.GetStatisticsResponse, error)
	GetAchievements(context.Context, *model.GetAchievementsRequest) (*model.GetAchievementsResponse, error)
	GetActivityCalendar(context.Context, *model.GetActivityCalendarRequest) (*model.GetActivityCalendarResponse, error)
	GetLeaderBoard(context.Context, *model.GetLeaderBoardRequest) (*model.GetLeaderBoardResponse, error)
}

type statisticDomain struct {
	activityRepo  repository.ActivityRepository
	statisticRepo repository.StatisticRepository
	userRepo      repository.UserRepository
	badgeManager  *badge.Manager
	leaderboard   statistic.Leaderboard
}

func NewStatisticDomain(
	activityRepo repository.ActivityRepository,
	statisticRepo repository.StatisticRepository,
	userRepo repository.UserRepository,
	badgeManager *badge.Manager,
	leaderboard statistic.Leaderboard,
) *statisticDomain {
	return &statisticDomain{
		activityRepo:  activityRepo,
		statisticRepo: statisticRepo,
		userRepo:      userRepo,
		badgeManager:  badgeManager,
		leaderboard:   leaderboard,
	}
}

// getSnapshot returns the user's aggregate snapshot, or the zero snapshot if
// no activity was ever recorded. Reads never create the row.
func (d *statisticDomain) getSnapshot(ctx context.Context, userID string) (*entity.UserStatistic, error) {
	stat, err := d.statisticRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			zero := streak.NewSnapshot(userID)
			return &zero, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get statistic: %v", err)
		return nil, errorx.Unknown
	}

	return stat, nil
}

func (d *statisticDomain) GetStatistics(
	ctx context.Context, req *model.GetStatisticsRequest,
) (*model.GetStatisticsResponse, error) {
	stat, err := d.getSnapshot(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	return &model.GetStatisticsResponse{
		Statistic:    model.ConvertUserStatistic(stat),
		Achievements: model.ConvertAchievements(d.badgeManager.Evaluate(*stat)),
	}, nil
}

func (d *statisticDomain) GetAchievements(
	ctx context.Context, req *model.GetAchievementsRequest,
) (*model.GetAchievementsResponse, error) {
	stat, err := d.getSnapshot(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	achievements := d.badgeManager.Evaluate(*stat)
	if req.Category != "" {
		if !slices.Contains(d.badgeManager.GetAllCategories(), req.Category) {
			xcontext.Logger(ctx).Debugf("Unknown achievement category %s", req.Category)
			return nil, errorx.New(errorx.BadRequest, "Invalid category")
		}

		filtered := make([]badge.Achievement, 0, len(achievements))
		for _, achievement := range achievements {
			if achievement.Category == req.Category {
				filtered = append(filtered, achievement)
			}
		}

		achievements = filtered
	}

	return &model.GetAchievementsResponse{
		Achievements: model.ConvertAchievements(achievements),
	}, nil
}

func (d *statisticDomain) GetActivityCalendar(
	ctx context.Context, req *model.GetActivityCalendarRequest,
) (*model.GetActivityCalendarResponse, error) {
	if req.Begin == "" || req.End == "" {
		return nil, errorx.New(errorx.BadRequest, "Both begin and end dates are required")
	}

	begin, end, err := parseDateWindow(req.Begin, req.End)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot parse date window: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid begin or end date")
	}

	activities, err := d.activityRepo.GetList(ctx, repository.GetListActivityFilter{
		UserID: xcontext.RequestUserID(ctx),
		Begin:  begin,
		End:    end,
		Limit:  -1,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of activities: %v", err)
		return nil, errorx.Unknown
	}

	marks, err := calendar.Build(activities, begin, end)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot build calendar: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Begin date is after end date")
	}

	result := make([]model.CalendarMark, 0, len(marks))
	for _, mark := range marks {
		result = append(result, model.CalendarMark{
			Date:        mark.Date.Format(model.DateFormat),
			HasActivity: mark.HasActivity,
		})
	}

	return &model.GetActivityCalendarResponse{Marks: result}, nil
}

func (d *statisticDomain) GetLeaderBoard(
	ctx context.Context, req *model.GetLeaderBoardRequest,
) (*model.GetLeaderBoardResponse, error) {
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

	period, err := statistic.ToPeriod(req.Period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid period: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid period")
	}

	entries, err := d.leaderboard.GetLeaderBoard(ctx, req.OrderedBy, period, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		userIDs = append(userIDs, entry.User.ID)
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users of leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	usersByID := make(map[string]entity.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	for i := range entries {
		if user, ok := usersByID[entries[i].User.ID]; ok {
			entries[i].User = model.ConvertShortUser(&user)
		}
	}

	return &model.GetLeaderBoardResponse{LeaderBoard: entries}, nil
}
