package repository

import (
	"context"
	"errors"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// ErrVersionConflict reports that a compare-and-set write found a snapshot
// version different from the one it was computed against. The caller must
// re-read the snapshot and fold the event again.
var ErrVersionConflict = errors.New("statistic version conflict")

type StatisticRepository interface {
	Get(ctx context.Context, userID string) (*entity.UserStatistic, error)
	Create(ctx context.Context, stat *entity.UserStatistic) error
	CompareAndSet(ctx context.Context, stat *entity.UserStatistic) error
}

type statisticRepository struct{}

func NewStatisticRepository() *statisticRepository {
	return &statisticRepository{}
}

func (r *statisticRepository) Get(ctx context.Context, userID string) (*entity.UserStatistic, error) {
	var result entity.UserStatistic
	err := xcontext.DB(ctx).Take(&result, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *statisticRepository) Create(ctx context.Context, stat *entity.UserStatistic) error {
	return xcontext.DB(ctx).Create(stat).Error
}

// CompareAndSet writes the snapshot only if the stored version still equals
// stat.Version, the version the caller read before folding the event. On
// success the stored and in-memory versions are advanced by one.
func (r *statisticRepository) CompareAndSet(ctx context.Context, stat *entity.UserStatistic) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserStatistic{}).
		Where("user_id=? AND version=?", stat.UserID, stat.Version).
		Updates(map[string]any{
			"total_workouts":             stat.TotalWorkouts,
			"total_calories_burned":      stat.TotalCaloriesBurned,
			"total_workout_time_minutes": stat.TotalWorkoutTimeMinutes,
			"current_streak":             stat.CurrentStreak,
			"longest_streak":             stat.LongestStreak,
			"last_activity_date":         stat.LastActivityDate,
			"version":                    gorm.Expr("version+1"),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of rows effected is invalid")
	}

	if tx.RowsAffected == 0 {
		return ErrVersionConflict
	}

	stat.Version++
	return nil
}
