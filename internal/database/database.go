package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookexchange/internal/entities"
)

// models lists every table managed by AutoMigrate.
var models = []any{
	&entities.Client{},
	&entities.Address{},
	&entities.Book{},
	&entities.Author{},
	&entities.BookAuthor{},
	&entities.Sale{},
}

type Database struct {
	DB *gorm.DB
}

type options struct {
	log      logrus.FieldLogger
	logLevel logger.LogLevel
}

// Option configures NewDatabase.
type Option func(*options)

// WithLogger routes gorm's query log through l at the given level
// ("silent", "error", "warn" or "info").
func WithLogger(l logrus.FieldLogger, level string) Option {
	return func(o *options) {
		o.log = l
		o.logLevel = parseLogLevel(level)
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	o := options{logLevel: logger.Silent}
	for _, opt := range opts {
		opt(&o)
	}

	gormLogger := logger.Default.LogMode(o.logLevel)
	if o.log != nil {
		gormLogger = logger.New(o.log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  o.logLevel,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows one writer at a time. A single connection also keeps
	// in-memory databases alive and serializes check-then-create
	// transactions.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database := &Database{DB: db}
	if err := database.Migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	if o.log != nil {
		o.log.WithField("path", dbPath).Info("database initialized")
	}

	return database, nil
}

// Migrate creates or updates every table.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the database connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Repositories returns repositories bound to the database connection.
func (d *Database) Repositories() *Repositories {
	return newRepositories(d.DB)
}

// Transaction runs fn inside a database transaction with repositories bound
// to it. The transaction is rolled back if fn returns an error.
func (d *Database) Transaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}
