package db

import (
	"context"
	"fmt"
)

// Schema holds the DDL for the conversion history tables. Kept idempotent so
// EnsureSchema can run on every startup.
const Schema = `
CREATE TABLE IF NOT EXISTS conversions (
    id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    source_name  TEXT NOT NULL,
    status       TEXT NOT NULL,
    errors       TEXT[],
    warnings     TEXT[],
    formats      TEXT[],
    duration_ms  BIGINT,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS conversion_artifacts (
    conversion_id UUID NOT NULL REFERENCES conversions(id) ON DELETE CASCADE,
    kind          TEXT NOT NULL,
    content       JSONB NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (conversion_id, kind)
);

CREATE TABLE IF NOT EXISTS conversion_outputs (
    conversion_id UUID NOT NULL REFERENCES conversions(id) ON DELETE CASCADE,
    format        TEXT NOT NULL,
    content       BYTEA NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (conversion_id, format)
);
`

// EnsureSchema creates the history tables when they do not exist yet
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
