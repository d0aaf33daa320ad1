package model

import (
	"github.com/fitstride-lab/backend/internal/domain/badge"
	"github.com/fitstride-lab/backend/internal/entity"
)

func ConvertShortUser(user *entity.User) ShortUser {
	if user == nil {
		return ShortUser{}
	}

	return ShortUser{
		ID:     user.ID,
		Handle: user.Handle,
		Name:   user.Name,
	}
}

func ConvertActivity(activity *entity.Activity) Activity {
	if activity == nil {
		return Activity{}
	}

	return Activity{
		ID:              activity.ID,
		UserID:          activity.UserID,
		Kind:            activity.Kind,
		DurationMinutes: activity.DurationMinutes,
		CaloriesBurned:  activity.CaloriesBurned,
		OccurredOn:      activity.OccurredOn.Format(DateFormat),
	}
}

func ConvertUserStatistic(stat *entity.UserStatistic) UserStatistic {
	if stat == nil {
		return UserStatistic{}
	}

	lastActivityDate := ""
	if stat.LastActivityDate.Valid {
		lastActivityDate = stat.LastActivityDate.Time.Format(DateFormat)
	}

	return UserStatistic{
		UserID:                  stat.UserID,
		TotalWorkouts:           stat.TotalWorkouts,
		TotalCaloriesBurned:     stat.TotalCaloriesBurned,
		TotalWorkoutTimeMinutes: stat.TotalWorkoutTimeMinutes,
		CurrentStreak:           stat.CurrentStreak,
		LongestStreak:           stat.LongestStreak,
		LastActivityDate:        lastActivityDate,
	}
}

func ConvertAchievement(achievement *badge.Achievement) Achievement {
	if achievement == nil {
		return Achievement{}
	}

	return Achievement{
		Category:    achievement.Category,
		Level:       achievement.Level,
		Threshold:   achievement.Threshold,
		Description: achievement.Description,
	}
}

func ConvertAchievements(achievements []badge.Achievement) []Achievement {
	result := make([]Achievement, 0, len(achievements))
	for i := range achievements {
		result = append(result, ConvertAchievement(&achievements[i]))
	}

	return result
}
