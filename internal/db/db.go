package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"peerswipe/internal/model"
)

// Models lists every table in drop order: rows that reference others go first.
func Models() []interface{} {
	return []interface{}{
		&model.Report{},
		&model.Message{},
		&model.Match{},
		&model.Swipe{},
		&model.ProblemPost{},
		&model.User{},
	}
}

// Config is the GORM configuration shared by every dialect.
// Unique-index violations surface as gorm.ErrDuplicatedKey.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		// Cascades are ordered explicitly by the moderation service.
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// Open returns a connected GORM DB instance for the given driver.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, Config())
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

