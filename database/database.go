package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect открывает соединение с PostgreSQL.
// TranslateError включен, чтобы нарушения уникальных индексов
// приходили как gorm.ErrDuplicatedKey независимо от драйвера.
func Connect(dsn string, env string) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if env == "development" {
		logLevel = gormlogger.Warn
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
