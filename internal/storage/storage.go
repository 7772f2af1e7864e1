package storage

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/config"
	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the shared connection pool. The pool is the only
// shared mutable resource in the process; every repository call must
// go through WithContext so cancellation releases the handle.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()
	cfg := config.GetEnv()

	var dialector gorm.Dialector
	switch cfg.DBDialect {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		dialector = postgres.Open(cfg.DatabaseDsn)
	}

	var err error
	db, err = gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to open database connection", "dialect", cfg.DBDialect, "error", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Error("Failed to access underlying connection pool", "error", err)
		os.Exit(1)
	}

	if cfg.DBDialect == "sqlite" {
		// SQLite allows a single writer; serialize access instead of
		// fighting table locks.
		sqlDB.SetMaxOpenConns(1)
		db.Exec("PRAGMA foreign_keys = ON")
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info("Database connection established", "dialect", cfg.DBDialect)

	// The in-memory test store exists only for the lifetime of the
	// process, so its schema is created here rather than by the server
	// entry point.
	if cfg.IsTesting {
		migrate(db, log)
	}
}

// RunMigrations creates or updates the schema for every registered model.
func RunMigrations() {
	migrate(GetDb(), logger.GetLogger())
}

func migrate(db *gorm.DB, log *slog.Logger) {
	if err := db.AutoMigrate(models.AllModels...); err != nil {
		log.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed")
}

// Timeout bounds pool acquisition plus a single query round trip.
func Timeout() time.Duration {
	return time.Duration(config.GetEnv().StoreTimeoutSec) * time.Second
}
