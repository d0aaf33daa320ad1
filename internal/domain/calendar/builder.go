package calendar

import (
	"errors"
	"time"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/pkg/dateutil"
)

var ErrInvalidWindow = errors.New("window start is after window end")

// Mark tells whether a user completed at least one activity of any kind on a
// given day.
type Mark struct {
	Date        time.Time
	HasActivity bool
}

// Build produces the dense calendar of a window: every day between start and
// end inclusive is emitted, marked when at least one event of any kind
// occurred on it. Multiple events on the same day collapse into one mark.
// Events outside the window are ignored.
//
// Days are normalized to midnight UTC so that events and window bounds
// parsed in different locations still land on the same calendar day.
func Build(events []entity.Activity, start, end time.Time) ([]Mark, error) {
	start = dateutil.UTCDate(start)
	end = dateutil.UTCDate(end)
	if start.After(end) {
		return nil, ErrInvalidWindow
	}

	activeDays := map[time.Time]bool{}
	for _, event := range events {
		day := dateutil.UTCDate(event.OccurredOn)
		if day.Before(start) || day.After(end) {
			continue
		}

		activeDays[day] = true
	}

	var marks []Mark
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		marks = append(marks, Mark{Date: day, HasActivity: activeDays[day]})
	}

	return marks, nil
}
