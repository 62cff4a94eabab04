package infra_pg_init

import (
	"fmt"
	"log"

	"github.com/IRaudaS/games-backend/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	return db
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS games (
		id             TEXT PRIMARY KEY,
		player1        TEXT NOT NULL,
		player2        TEXT,
		current_player TEXT NOT NULL,
		status         TEXT NOT NULL,
		game_state     JSONB NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS game_moves (
		id         UUID PRIMARY KEY,
		game_id    TEXT NOT NULL REFERENCES games(id),
		player     TEXT NOT NULL,
		move_type  TEXT NOT NULL,
		move_data  JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS wheel_games (
		id             TEXT PRIMARY KEY,
		category       TEXT NOT NULL,
		current_player TEXT NOT NULL,
		status         TEXT NOT NULL,
		game_state     JSONB NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS wheel_moves (
		id         UUID PRIMARY KEY,
		game_id    TEXT NOT NULL REFERENCES wheel_games(id),
		player     TEXT NOT NULL,
		move_type  TEXT NOT NULL,
		move_data  JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// MustEnsureSchema bootstraps the game tables on startup.
func MustEnsureSchema(db *sqlx.DB) {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("failed to ensure schema: %v", err)
		}
	}
}
