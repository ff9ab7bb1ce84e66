package database

import (
	"strings"
	"testing"

	"costmanager/internal/config"
)

func TestNewConfig(t *testing.T) {
	t.Run("rejects unknown driver", func(t *testing.T) {
		if _, err := NewConfig(&config.Config{DBDriver: "mongodb"}); err == nil {
			t.Fatal("expected error for unsupported driver")
		}
	})

	t.Run("postgres", func(t *testing.T) {
		cfg, err := NewConfig(&config.Config{
			DBDriver:   DriverPostgres,
			DBHost:     "db",
			DBPort:     "5432",
			DBUser:     "cm",
			DBPassword: "p@ss word",
			DBName:     "costs",
			DBSSLMode:  "disable",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dsn := cfg.DSN()
		if !strings.Contains(dsn, "host=db") || !strings.Contains(dsn, "dbname=costs") {
			t.Errorf("unexpected DSN %q", dsn)
		}

		want := "postgres://cm:p%40ss%20word@db:5432/costs?sslmode=disable"
		if got := cfg.MigrateURL(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg, err := NewConfig(&config.Config{DBDriver: DriverSQLite, DBPath: "data/cm.db"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DSN() != "data/cm.db" {
			t.Errorf("unexpected DSN %q", cfg.DSN())
		}
		if cfg.MigrateURL() != "sqlite3://data/cm.db" {
			t.Errorf("unexpected migrate URL %q", cfg.MigrateURL())
		}
	})
}
