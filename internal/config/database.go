package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the configured database and stores it in DB.
func InitDB(cfg *Config) *gorm.DB {
	var err error
	DB, err = OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		Logger.Fatal("Error connecting to the database", zap.Error(err))
	}
	Logger.Info("Database connected", zap.String("driver", cfg.DBDriver))
	return DB
}

// OpenDB opens a gorm connection for driver: mysql, postgres (pgx) or sqlite.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(Logger),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("raw db: %w", err)
	}
	if driver == "sqlite" {
		// a single writer avoids SQLITE_BUSY between pooled connections
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// newGormLogger sends gorm warnings and errors through zap. Lookups that find
// nothing are normal control flow here and are not logged.
func newGormLogger(logger *zap.Logger) gormlogger.Interface {
	var w gormlogger.Writer = log.New(os.Stderr, "", log.LstdFlags)
	if logger != nil {
		w = zap.NewStdLog(logger.Named("gorm"))
	}
	return newGormLoggerTo(w)
}

func newGormLoggerTo(w gormlogger.Writer) gormlogger.Interface {
	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
