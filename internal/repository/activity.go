package repository

import (
	"context"
	"time"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/pkg/xcontext"
)

type GetListActivityFilter struct {
	UserID string
	Kind   string

	// Begin and End bound occurred_on inclusively. A zero value leaves the
	// corresponding side unbounded.
	Begin time.Time
	End   time.Time

	Offset int
	Limit  int
}

// UserSum is one row of an aggregation of activities grouped by user.
type UserSum struct {
	UserID string
	Value  int64
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetList(ctx context.Context, filter GetListActivityFilter) ([]entity.Activity, error)

	// The aggregations cover the half-open range [begin, end), matching the
	// period bounds of the leaderboard.
	SumCaloriesByUser(ctx context.Context, begin, end time.Time) ([]UserSum, error)
	CountByUser(ctx context.Context, begin, end time.Time) ([]UserSum, error)
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return xcontext.DB(ctx).Create(activity).Error
}

func (r *activityRepository) GetList(
	ctx context.Context, filter GetListActivityFilter,
) ([]entity.Activity, error) {
	tx := xcontext.DB(ctx).Model(&entity.Activity{}).
		Where("user_id=?", filter.UserID).
		Order("occurred_on DESC, id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit)

	if filter.Kind != "" {
		tx = tx.Where("kind=?", filter.Kind)
	}

	if !filter.Begin.IsZero() {
		tx = tx.Where("occurred_on >= ?", filter.Begin)
	}

	if !filter.End.IsZero() {
		tx = tx.Where("occurred_on <= ?", filter.End)
	}

	var result []entity.Activity
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) SumCaloriesByUser(
	ctx context.Context, begin, end time.Time,
) ([]UserSum, error) {
	return r.sumByUser(ctx, "SUM(calories_burned)", begin, end)
}

func (r *activityRepository) CountByUser(
	ctx context.Context, begin, end time.Time,
) ([]UserSum, error) {
	return r.sumByUser(ctx, "COUNT(*)", begin, end)
}

func (r *activityRepository) sumByUser(
	ctx context.Context, aggregation string, begin, end time.Time,
) ([]UserSum, error) {
	var result []UserSum
	err := xcontext.DB(ctx).Model(&entity.Activity{}).
		Select("user_id AS user_id, "+aggregation+" AS value").
		Where("occurred_on >= ? AND occurred_on < ?", begin, end).
		Group("user_id").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
