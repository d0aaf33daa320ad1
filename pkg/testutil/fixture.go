package testutil

import (
	"context"
	"time"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/dateutil"
	"github.com/fitstride-lab/backend/pkg/xcontext"
)

var (
	User1 = entity.User{
		Base:   entity.Base{ID: "user1"},
		Handle: "user1",
		Name:   "User 1",
	}

	User2 = entity.User{
		Base:   entity.Base{ID: "user2"},
		Handle: "user2",
		Name:   "User 2",
	}
)

// CreateFixtureDb inserts the fixture users and a short activity history of
// user1: two activities yesterday and one today.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertActivities(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	if err := userRepo.Create(ctx, &User1); err != nil {
		panic(err)
	}

	if err := userRepo.Create(ctx, &User2); err != nil {
		panic(err)
	}
}

func insertActivities(ctx context.Context) {
	activityRepo := repository.NewActivityRepository()

	today := dateutil.UTCDate(time.Now())
	activities := []entity.Activity{
		{
			SnowFlakeBase:   entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
			UserID:          User1.ID,
			Kind:            entity.ActivityKindWorkout,
			DurationMinutes: 30,
			CaloriesBurned:  250,
			OccurredOn:      today.AddDate(0, 0, -1),
		},
		{
			SnowFlakeBase:   entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
			UserID:          User1.ID,
			Kind:            "running",
			DurationMinutes: 20,
			CaloriesBurned:  180,
			OccurredOn:      today.AddDate(0, 0, -1),
		},
		{
			SnowFlakeBase:   entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
			UserID:          User1.ID,
			Kind:            entity.ActivityKindWorkout,
			DurationMinutes: 45,
			CaloriesBurned:  400,
			OccurredOn:      today,
		},
	}

	for i := range activities {
		if err := activityRepo.Create(ctx, &activities[i]); err != nil {
			panic(err)
		}
	}
}
