package infra

import (
	"errors"

	"github.com/fortizbank/fortiz/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the Postgres pool described by cnf. SQL is logged
// only in development. Driver errors are translated so repositories can
// match gorm.ErrDuplicatedKey.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	pool, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cnf.MaxOpenConns > 0 {
		pool.SetMaxOpenConns(cnf.MaxOpenConns)
	}
	if cnf.MaxIdleConns > 0 {
		pool.SetMaxIdleConns(cnf.MaxIdleConns)
	}
	if cnf.ConnMaxLifetime > 0 {
		pool.SetConnMaxLifetime(cnf.ConnMaxLifetime)
	}
	return db, nil
}
