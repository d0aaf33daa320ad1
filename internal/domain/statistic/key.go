package statistic

import (
	"fmt"

	"github.com/fitstride-lab/backend/internal/entity"
)

func redisKeyCaloriesLeaderBoard(period entity.LeaderBoardPeriodType) string {
	return fmt.Sprintf("leaderboard:calories:%s", period.Period())
}

func redisKeyWorkoutLeaderBoard(period entity.LeaderBoardPeriodType) string {
	return fmt.Sprintf("leaderboard:workouts:%s", period.Period())
}

func redisKeyLeaderBoard(orderedBy string, period entity.LeaderBoardPeriodType) (string, error) {
	switch orderedBy {
	case "calories":
		return redisKeyCaloriesLeaderBoard(period), nil
	case "workouts":
		return redisKeyWorkoutLeaderBoard(period), nil
	}

	return "", fmt.Errorf("expected ordered by calories or workouts, but got %s", orderedBy)
}
