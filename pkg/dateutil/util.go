package dateutil

import "time"

// UTCDate rebuilds a timestamp as midnight UTC of its calendar day. Two
// timestamps of the same day always map to the same instant, regardless of
// the location they were parsed in.
func UTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayDiff returns the number of calendar days from the day of `from` to the
// day of `to`. The result is negative if `to` is an earlier day.
func DayDiff(from, to time.Time) int {
	return int(UTCDate(to).Sub(UTCDate(from)).Hours() / 24)
}

// CurrentWeek returns midnight of the Monday starting the ISO week of t.
func CurrentWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return UTCDate(t).AddDate(0, 0, -offset)
}

func LastWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -7)
}

func LastMonth(t time.Time) time.Time {
	return t.AddDate(0, -1, 0)
}
