package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"starwars-api/config"
	"starwars-api/internal/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrMissingDSN = errors.New("database DSN is not set")

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DSN)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return db, nil
}

// Dialector picks the gorm driver from the connection string scheme.
// postgres:// and postgresql:// use postgres. sqlite:// uses sqlite, see
// sqliteDSN. mysql:// and mysql+<driver>:// URLs are converted to a
// go-sql-driver DSN. A string without a scheme is handed to the mysql driver
// as-is; any other scheme is rejected.
func Dialector(dsn string) (gorm.Dialector, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}
	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		return mysql.Open(dsn), nil
	}
	switch {
	case scheme == "postgres" || scheme == "postgresql":
		return postgres.Open(dsn), nil
	case scheme == "sqlite":
		return sqlite.Open(sqliteDSN(dsn)), nil
	case scheme == "mysql" || strings.HasPrefix(scheme, "mysql+"):
		converted, err := mysqlDSN(dsn)
		if err != nil {
			return nil, err
		}
		return mysql.Open(converted), nil
	}
	return nil, fmt.Errorf("unsupported database scheme %q", scheme)
}

// sqliteDSN strips the sqlite:// prefix using SQLAlchemy path rules
// (sqlite:///app.db is relative, sqlite:////var/app.db is absolute) and turns
// on foreign key enforcement, which sqlite leaves off per connection.
func sqliteDSN(raw string) string {
	path := strings.TrimPrefix(raw, "sqlite://")
	if strings.HasPrefix(path, "/") {
		path = path[1:]
	}
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=1"
}

func mysqlDSN(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse mysql url: %w", err)
	}
	cfg := mysqldriver.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.ParseTime = true
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	if q := u.Query(); len(q) > 0 {
		cfg.Params = make(map[string]string, len(q))
		for k := range q {
			cfg.Params[k] = q.Get(k)
		}
	}
	return cfg.FormatDSN(), nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Planet{},
		&models.Character{},
		&models.Favorite{},
	)
}

// Reset drops every table owned by the API, dependents first.
func Reset(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&models.Favorite{},
		&models.Character{},
		&models.Planet{},
		&models.User{},
	)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
