package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const schema = `CREATE TABLE IF NOT EXISTS generations (
	id           CHAR(36)     NOT NULL PRIMARY KEY,
	length       INT          NOT NULL,
	categories   VARCHAR(64)  NOT NULL,
	pool_size    INT          NOT NULL,
	entropy_bits DOUBLE       NOT NULL,
	strength     VARCHAR(16)  NOT NULL,
	created_at   DATETIME(6)  NOT NULL,
	INDEX idx_generations_strength (strength)
)`

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed, continuing without DB", "error", err)
	}

	return db, nil
}

// Migrate creates the tables used by the repositories if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
