package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUTCDate(t *testing.T) {
	late := time.Date(2023, 5, 1, 23, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))
	require.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), UTCDate(late))

	midnight := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, midnight, UTCDate(midnight))
}

func TestDayDiff(t *testing.T) {
	monday := time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC)

	require.Equal(t, 0, DayDiff(monday, monday.Add(10*time.Hour)))
	require.Equal(t, 1, DayDiff(monday, monday.AddDate(0, 0, 1)))
	require.Equal(t, -1, DayDiff(monday, monday.AddDate(0, 0, -1)))
	require.Equal(t, 31, DayDiff(monday, monday.AddDate(0, 1, 0)))

	// The diff counts calendar days, not 24 hour windows.
	lateMonday := time.Date(2023, 5, 1, 23, 0, 0, 0, time.UTC)
	earlyTuesday := time.Date(2023, 5, 2, 1, 0, 0, 0, time.UTC)
	require.Equal(t, 1, DayDiff(lateMonday, earlyTuesday))
}

func TestCurrentWeek(t *testing.T) {
	monday := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		require.Equal(t, monday, CurrentWeek(monday.AddDate(0, 0, i)))
	}

	require.Equal(t, monday.AddDate(0, 0, 7), CurrentWeek(monday.AddDate(0, 0, 7)))
}
