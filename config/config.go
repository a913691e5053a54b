// Package config loads the service configuration from the environment and
// owns the database handle.
package config

import (
	"embed"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	_ "github.com/go-sql-driver/mysql"
)

// Config holds all environment-driven settings (BOUTIQUE_ prefix)
type Config struct {
	HTTPAddr      string        `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseDSN   string        `envconfig:"DATABASE_DSN" default:"boutique:boutique@tcp(localhost:3306)/boutique?parseTime=true"`
	JWTSecret     string        `envconfig:"JWT_SECRET" default:"your_secret_key_change_this"`
	TokenTTL      time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	MerchantPhone string        `envconfig:"MERCHANT_PHONE" default:"5562996842833"`
	SettingsPath  string        `envconfig:"SETTINGS_PATH" default:"store_settings.json"`
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("boutique", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "read environment config")
	}
	return cfg, nil
}

// DB is the shared database handle, set by InitDB
var DB *sqlx.DB

//go:embed migrations/*.sql
var migrations embed.FS

// InitDB connects to MySQL and applies pending migrations
func InitDB(dsn string) error {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return errors.Wrap(err, "apply migrations")
	}

	DB = db
	return nil
}

func migrateUp(db *sqlx.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
