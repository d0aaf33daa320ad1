package model

type UserStatistic struct {
	UserID                  string `json:"user_id"`
	TotalWorkouts           uint64 `json:"total_workouts"`
	TotalCaloriesBurned     uint64 `json:"total_calories_burned"`
	TotalWorkoutTimeMinutes uint64 `json:"total_workout_time_minutes"`
	CurrentStreak           int    `json:"current_streak"`
	LongestStreak           int    `json:"longest_streak"`

	// LastActivityDate is empty until the first activity is recorded.
	LastActivityDate string `json:"last_activity_date,omitempty"`
}

type GetStatisticsRequest struct{}

type GetStatisticsResponse struct {
	Statistic    UserStatistic `json:"statistic"`
	Achievements []Achievement `json:"achievements"`
}

type ShortUser struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

type GetLeaderBoardRequest struct {
	Period    string `json:"period"`
	OrderedBy string `json:"ordered_by"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type LeaderBoardEntry struct {
	User         ShortUser `json:"user"`
	Value        int       `json:"value"`
	CurrentRank  int       `json:"current_rank"`
	PreviousRank int       `json:"previous_rank,omitempty"`
}

type GetLeaderBoardResponse struct {
	LeaderBoard []LeaderBoardEntry `json:"leaderboard"`
}
