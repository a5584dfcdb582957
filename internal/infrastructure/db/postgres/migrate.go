package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The unique index on email is the authority for registration uniqueness;
// the service-level check is only a fast path.
const accountsSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	id            TEXT        PRIMARY KEY,
	email         TEXT        NOT NULL,
	password_hash TEXT        NOT NULL,
	name          TEXT        NOT NULL DEFAULT '',
	role          TEXT        NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_idx ON accounts (email);
`

// EnsureSchema creates the accounts table and its unique email index if
// they do not exist yet. Called once at startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, accountsSchema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
