package migration

import (
	"context"
	"errors"

	"github.com/fitstride-lab/backend/internal/entity"
	"github.com/fitstride-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// The index of a migrator in this slice is its version. Append only.
var migrators = []func(context.Context) error{
	migrate0000,
}

// Migrate runs every migrator after the last recorded version. A fresh
// database gets the full schema from migrate0000 and is recorded at the
// latest version.
func Migrate(ctx context.Context) error {
	if !xcontext.DB(ctx).Migrator().HasTable(&entity.Migration{}) {
		if err := migrate0000(ctx); err != nil {
			return err
		}

		return xcontext.DB(ctx).Create(&entity.Migration{Version: len(migrators) - 1}).Error
	}

	var last entity.Migration
	err := xcontext.DB(ctx).Order("version DESC").Take(&last).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		last.Version = -1
	}

	for version := last.Version + 1; version < len(migrators); version++ {
		xcontext.Logger(ctx).Infof("Run migration version %d", version)
		if err := migrators[version](ctx); err != nil {
			return err
		}

		err := xcontext.DB(ctx).Create(&entity.Migration{Version: version}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
