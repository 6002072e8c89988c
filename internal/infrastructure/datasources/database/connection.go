package database

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"resolution-desk.backend/internal/config"
)

var (
	gormOpen = gorm.Open
	dbPing   = func(db *sql.DB) error { return db.Ping() }
)

// Dialector picks the gorm driver for the configured backend
func Dialector(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.IsSQLite() {
		return sqlite.Open(cfg.SQLitePath)
	}
	return postgres.New(postgres.Config{
		DSN:                  cfg.URL(),
		PreferSimpleProtocol: true,
	})
}

// NewConnection opens and pings the configured database
func NewConnection(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gormOpen(Dialector(cfg), &gorm.Config{PrepareStmt: false})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic database object: %w", err)
	}

	if cfg.IsSQLite() {
		// a shared in-memory database lives only while a connection holds it,
		// and sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err := dbPing(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
