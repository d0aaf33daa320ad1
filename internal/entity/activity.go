package entity

import "time"

const ActivityKindWorkout = "workout"

// Activity is one immutable record of a completed workout or timed challenge.
// Kind is either ActivityKindWorkout or the name of a challenge, for example
// "Cycle Challenge". Rows are never updated or deleted.
type Activity struct {
	SnowFlakeBase

	UserID string `gorm:"index:idx_activities_user_occurred"`
	User   User   `gorm:"foreignKey:UserID"`

	Kind            string
	DurationMinutes int
	CaloriesBurned  int

	// OccurredOn is the calendar day the activity was completed on. The time
	// of day carries no meaning for streaks and is always truncated.
	OccurredOn time.Time `gorm:"index:idx_activities_user_occurred"`
}
