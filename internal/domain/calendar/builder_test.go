package calendar

import (
	"testing"
	"time"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func activityOn(day string, kind string) entity.Activity {
	return entity.Activity{
		UserID:     "user1",
		Kind:       kind,
		OccurredOn: date(day),
	}
}

func TestBuild_DenseWindow(t *testing.T) {
	events := []entity.Activity{
		activityOn("2023-05-01", entity.ActivityKindWorkout),
		activityOn("2023-05-03", "running"),
	}

	marks, err := Build(events, date("2023-05-01"), date("2023-05-04"))
	require.NoError(t, err)

	require.Equal(t, []Mark{
		{Date: date("2023-05-01"), HasActivity: true},
		{Date: date("2023-05-02"), HasActivity: false},
		{Date: date("2023-05-03"), HasActivity: true},
		{Date: date("2023-05-04"), HasActivity: false},
	}, marks)
}

func TestBuild_DedupAcrossKinds(t *testing.T) {
	events := []entity.Activity{
		activityOn("2023-05-03", entity.ActivityKindWorkout),
		activityOn("2023-05-03", "running"),
	}

	marks, err := Build(events, date("2023-05-03"), date("2023-05-03"))
	require.NoError(t, err)
	require.Equal(t, []Mark{{Date: date("2023-05-03"), HasActivity: true}}, marks)
}

func TestBuild_IgnoresEventsOutsideWindow(t *testing.T) {
	events := []entity.Activity{
		activityOn("2023-04-30", entity.ActivityKindWorkout),
		activityOn("2023-05-02", entity.ActivityKindWorkout),
		activityOn("2023-05-05", entity.ActivityKindWorkout),
	}

	marks, err := Build(events, date("2023-05-01"), date("2023-05-03"))
	require.NoError(t, err)
	require.Len(t, marks, 3)
	require.False(t, marks[0].HasActivity)
	require.True(t, marks[1].HasActivity)
	require.False(t, marks[2].HasActivity)
}

func TestBuild_SingleDayWindow(t *testing.T) {
	marks, err := Build(nil, date("2023-05-01"), date("2023-05-01"))
	require.NoError(t, err)
	require.Equal(t, []Mark{{Date: date("2023-05-01"), HasActivity: false}}, marks)
}

func TestBuild_InvalidWindow(t *testing.T) {
	_, err := Build(nil, date("2023-05-02"), date("2023-05-01"))
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestBuild_EventTimezonesCollapse(t *testing.T) {
	// The same calendar day recorded with different wall-clock locations
	// still lands on one mark.
	events := []entity.Activity{
		{
			UserID:     "user1",
			Kind:       entity.ActivityKindWorkout,
			OccurredOn: time.Date(2023, 5, 2, 23, 0, 0, 0, time.FixedZone("UTC+7", 7*3600)),
		},
	}

	marks, err := Build(events, date("2023-05-02"), date("2023-05-02"))
	require.NoError(t, err)
	require.True(t, marks[0].HasActivity)
}
