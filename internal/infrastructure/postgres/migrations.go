package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes que crean el esquema mínimo. El índice único sobre
// (type, thickness, size) respalda en la DB la regla de no duplicar líneas de
// stock; el CHECK de quantity respalda que nunca sea negativa.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT,
		password_hash TEXT,
		display_name TEXT NOT NULL,
		anonymous BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_uq ON users (email) WHERE email <> ''`,
	`CREATE TABLE IF NOT EXISTS sheets (
		id UUID PRIMARY KEY,
		type TEXT NOT NULL,
		thickness NUMERIC(8,2) NOT NULL CHECK (thickness > 0),
		size TEXT NOT NULL,
		location TEXT NOT NULL,
		quantity BIGINT NOT NULL CHECK (quantity >= 0),
		last_in TIMESTAMPTZ,
		last_out TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS sheets_stock_line_uq ON sheets (type, thickness, size)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id UUID PRIMARY KEY,
		sheet_id UUID NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('INPUT', 'OUTPUT')),
		quantity BIGINT NOT NULL CHECK (quantity > 0),
		sheet_type TEXT NOT NULL,
		sheet_thickness NUMERIC(8,2) NOT NULL,
		sheet_size TEXT NOT NULL,
		sheet_location TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		actor_id TEXT NOT NULL,
		actor_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS movements_created_at_idx ON movements (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY,
		actor_id TEXT NOT NULL,
		actor_name TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS chat_messages_created_at_idx ON chat_messages (created_at DESC)`,
}

// Migrate crea el schema del despliegue (si no es public) y aplica las
// sentencias del esquema. Todas son idempotentes; se ejecuta en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool, schema string) error {
	if schema != "" && schema != "public" {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, schema)); err != nil {
			return fmt.Errorf("crear schema %s: %w", schema, err)
		}
	}
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración: %w", err)
		}
	}
	return nil
}
