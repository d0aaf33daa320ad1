package streak

import (
	"database/sql"
	"errors"
	"time"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/pkg/dateutil"
	"github.com/pkg/math"
)

var (
	// ErrInvalidEvent reports an event with a negative duration or calories,
	// or without a completion day.
	ErrInvalidEvent = errors.New("invalid activity event")

	// ErrOutOfOrderEvent reports an event completed before the day already
	// recorded in the snapshot. The day-gap transition is undefined for
	// negative gaps, so such events are rejected instead of folded.
	ErrOutOfOrderEvent = errors.New("activity event precedes the last recorded day")
)

// Event is one activity completion to fold into a snapshot.
type Event struct {
	Kind            string
	DurationMinutes int
	CaloriesBurned  int
	OccurredOn      time.Time
}

func (e Event) Validate() error {
	if e.DurationMinutes < 0 || e.CaloriesBurned < 0 || e.OccurredOn.IsZero() {
		return ErrInvalidEvent
	}

	return nil
}

// NewSnapshot returns the zero snapshot a user starts from before the first
// event: all counters zero and no last activity day.
func NewSnapshot(userID string) entity.UserStatistic {
	return entity.UserStatistic{UserID: userID}
}

// Apply folds one event into a snapshot and returns the next snapshot. It
// never mutates prev, so the day gap is always computed against the value
// captured before any update.
//
// The streak transition depends on the gap in days between the event and the
// snapshot's last activity day: the first-ever event starts a streak of 1,
// another event on the same day leaves the streak unchanged, the next
// consecutive day extends it by one, and any later day resets it to 1.
func Apply(prev entity.UserStatistic, event Event) (entity.UserStatistic, error) {
	if err := event.Validate(); err != nil {
		return entity.UserStatistic{}, err
	}

	day := dateutil.UTCDate(event.OccurredOn)

	next := prev
	next.TotalWorkouts++
	next.TotalCaloriesBurned += uint64(event.CaloriesBurned)
	next.TotalWorkoutTimeMinutes += uint64(event.DurationMinutes)

	if !prev.LastActivityDate.Valid {
		next.CurrentStreak = 1
	} else {
		switch gap := dateutil.DayDiff(prev.LastActivityDate.Time, day); {
		case gap < 0:
			return entity.UserStatistic{}, ErrOutOfOrderEvent

		case gap == 0:
			// Same-day repeat. Totals grow, the streak does not.

		case gap == 1:
			next.CurrentStreak = prev.CurrentStreak + 1

		default:
			next.CurrentStreak = 1
		}
	}

	next.LongestStreak = math.MaxInt(next.LongestStreak, next.CurrentStreak)
	next.LastActivityDate = sql.NullTime{Valid: true, Time: day}

	return next, nil
}
