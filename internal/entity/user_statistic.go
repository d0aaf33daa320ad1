package entity

import (
	"database/sql"
	"time"
)

// UserStatistic is the aggregate snapshot of one user. It is the only mutable
// state owned by the statistics engine. Writers must go through
// StatisticRepository.CompareAndSet, guarded by Version, so that two
// concurrent completions can never fold into the same stale snapshot.
type UserStatistic struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	TotalWorkouts           uint64
	TotalCaloriesBurned     uint64
	TotalWorkoutTimeMinutes uint64

	CurrentStreak int
	// LongestStreak is a high-water mark of CurrentStreak. It never decreases
	// and always satisfies LongestStreak >= CurrentStreak.
	LongestStreak int

	// LastActivityDate is invalid until the first event is folded in.
	LastActivityDate sql.NullTime

	Version uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}
