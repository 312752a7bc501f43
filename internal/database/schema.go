package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	creation_date DATE,
	active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS event_categories (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL,
	creation_date DATE,
	number_events INT NOT NULL DEFAULT 0,
	active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS events (
	id BIGSERIAL PRIMARY KEY,
	event_name TEXT NOT NULL UNIQUE,
	description TEXT,
	event_date DATE,
	capacity INT NOT NULL DEFAULT 0,
	ubication TEXT NOT NULL,
	latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
	longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
	category_id BIGINT REFERENCES event_categories (id)
);

CREATE TABLE IF NOT EXISTS reservations (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	customer_name TEXT NOT NULL UNIQUE,
	email TEXT,
	reservation_date DATE NOT NULL,
	quantity INT NOT NULL,
	event_id BIGINT NOT NULL REFERENCES events (id)
);

CREATE TABLE IF NOT EXISTS payments (
	id BIGSERIAL PRIMARY KEY,
	name TEXT,
	customer_name TEXT NOT NULL,
	payment_date DATE,
	amount DOUBLE PRECISION NOT NULL,
	status TEXT,
	reservation_id BIGINT NOT NULL REFERENCES reservations (id)
);
`

// CreateSchema applies the table definitions. Statements are idempotent so
// this is safe to run on every startup.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
