package testutil

import (
	"context"
	"reflect"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/google/uuid"
)

// SampleUser creates a user with randomized fields. Non-zero fields of init
// overwrite the sample before it is inserted.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	sample := &entity.User{
		Base:   entity.Base{ID: uuid.NewString()},
		Handle: uuid.NewString(),
		Name:   "Sample User",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}

	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
