package statistic

import (
	"fmt"
	"time"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/pkg/dateutil"
)

func ToPeriodWithTime(periodString string, current time.Time) (entity.LeaderBoardPeriodType, error) {
	switch periodString {
	case "week":
		return entity.NewLeaderBoardPeriodWeek(current), nil
	case "month":
		return entity.NewLeaderBoardPeriodMonth(current), nil
	}

	return nil, fmt.Errorf("invalid period, expected week or month, but got %s", periodString)
}

func ToPeriod(periodString string) (entity.LeaderBoardPeriodType, error) {
	return ToPeriodWithTime(periodString, time.Now())
}

// ToLastPeriod returns the period immediately before the given one, the
// previous ISO week or the previous calendar month.
func ToLastPeriod(period entity.LeaderBoardPeriodType) (entity.LeaderBoardPeriodType, error) {
	switch period.(type) {
	case entity.LeaderBoardPeriodWeek:
		return entity.NewLeaderBoardPeriodWeek(dateutil.LastWeek(period.Start())), nil
	case entity.LeaderBoardPeriodMonth:
		return entity.NewLeaderBoardPeriodMonth(dateutil.LastMonth(period.Start())), nil
	}

	return nil, fmt.Errorf("unknown period type %T", period)
}
