package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"resolution-desk.backend/internal/config"
)

func sqliteConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: fmt.Sprintf("file:conn_%d?mode=memory&cache=shared", time.Now().UnixNano()),
	}
}

func TestNewConnection_SQLite(t *testing.T) {
	db, err := NewConnection(sqliteConfig())
	require.NoError(t, err)
	require.NotNil(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Close())
}

func TestNewConnection_PostgresPingFailure(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:   "postgres",
		Host:     "127.0.0.1",
		Port:     1,
		User:     "x",
		Password: "x",
		DBName:   "x",
		SSLMode:  "disable",
	}

	db, err := NewConnection(cfg)
	require.Error(t, err)
	require.Nil(t, db)
}

func TestNewConnection_OpenAndPingHooks(t *testing.T) {
	origOpen := gormOpen
	origPing := dbPing
	t.Cleanup(func() {
		gormOpen = origOpen
		dbPing = origPing
	})

	gormOpen = func(gorm.Dialector, ...gorm.Option) (*gorm.DB, error) {
		return nil, errors.New("open failed")
	}
	db, err := NewConnection(sqliteConfig())
	require.Error(t, err)
	require.Nil(t, db)
	require.Contains(t, err.Error(), "failed to open database")

	gormOpen = origOpen
	dbPing = func(*sql.DB) error { return errors.New("unreachable") }
	db, err = NewConnection(sqliteConfig())
	require.Error(t, err)
	require.Nil(t, db)
	require.Contains(t, err.Error(), "failed to ping database")
}

func TestDialector(t *testing.T) {
	require.Equal(t, "sqlite", Dialector(config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"}).Name())
	require.Equal(t, "postgres", Dialector(config.DatabaseConfig{Driver: "postgres"}).Name())
}
