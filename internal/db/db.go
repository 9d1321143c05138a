// Package db provides PostgreSQL storage for conversion history.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-converter/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ConversionRecord is one stored conversion with its findings
type ConversionRecord struct {
	ID          uuid.UUID
	SourceName  string
	Status      string
	Errors      []string
	Warnings    []string
	Formats     []string
	DurationMS  int64
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// CreateConversion records the start of a conversion and returns its ID
func (db *DB) CreateConversion(ctx context.Context, sourceName string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO conversions (source_name, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		sourceName,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create conversion: %w", err)
	}
	return id, nil
}

// CompleteConversion marks a conversion finished with its findings and timing
func (db *DB) CompleteConversion(ctx context.Context, id uuid.UUID, status string, errors, warnings, formats []string, duration time.Duration) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE conversions
		 SET status = $1, errors = $2, warnings = $3, formats = $4,
		     duration_ms = $5, completed_at = NOW()
		 WHERE id = $6`,
		status, errors, warnings, formats, duration.Milliseconds(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete conversion: %w", err)
	}
	return nil
}

// SaveResumeData stores the parsed aggregate for a conversion
func (db *DB) SaveResumeData(ctx context.Context, id uuid.UUID, data *types.ResumeData) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal resume data: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO conversion_artifacts (conversion_id, kind, content)
		 VALUES ($1, 'resume_data', $2)
		 ON CONFLICT (conversion_id, kind) DO UPDATE SET content = $2, created_at = NOW()`,
		id, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume data: %w", err)
	}
	return nil
}

// SaveOutput stores a rendered output document for a conversion
func (db *DB) SaveOutput(ctx context.Context, id uuid.UUID, format string, content []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO conversion_outputs (conversion_id, format, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (conversion_id, format) DO UPDATE SET content = $3, created_at = NOW()`,
		id, format, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s output: %w", format, err)
	}
	return nil
}

// GetResumeData loads the stored aggregate for a conversion.
// Returns nil without error when nothing was stored.
func (db *DB) GetResumeData(ctx context.Context, id uuid.UUID) (*types.ResumeData, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM conversion_artifacts
		 WHERE conversion_id = $1 AND kind = 'resume_data'`,
		id,
	).Scan(&content)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume data: %w", err)
	}

	var data types.ResumeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
	}
	return &data, nil
}

// ListConversions returns the most recent conversions, newest first
func (db *DB) ListConversions(ctx context.Context, limit int) ([]ConversionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, source_name, status, errors, warnings, formats,
		        COALESCE(duration_ms, 0), created_at, completed_at
		 FROM conversions
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	var records []ConversionRecord
	for rows.Next() {
		var rec ConversionRecord
		if err := rows.Scan(&rec.ID, &rec.SourceName, &rec.Status, &rec.Errors,
			&rec.Warnings, &rec.Formats, &rec.DurationMS, &rec.CreatedAt, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conversion rows: %w", err)
	}
	return records, nil
}
