package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cinemabook/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"
)

// InitDB opens the durable store. The default driver is embedded SQLite,
// which needs no external server and keeps all state local to this runtime;
// a PostgreSQL backend can be selected through config for deployments that
// want a shared store.
func InitDB(config utils.DatabaseConfig) (*bun.DB, error) {
	var db *bun.DB

	switch config.Driver {
	case "postgres":
		pgxConfig, err := pgx.ParseConfig(config.DSN)
		if err != nil {
			return nil, fmt.Errorf("parse postgres dsn: %w", err)
		}
		sqldb := stdlib.OpenDB(*pgxConfig)
		db = bun.NewDB(sqldb, pgdialect.New())

	case "sqlite", "":
		path := config.Path
		if path == "" {
			path = ":memory:"
		}
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, fmt.Errorf("create store directory: %w", err)
			}
		}
		sqldb, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		// The embedded store has a single writer.
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())

	default:
		return nil, fmt.Errorf("unsupported store driver %q", config.Driver)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping store failed: %w", err)
	}

	return db, nil
}
