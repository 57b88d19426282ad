package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the documents table on first run. The data column
// is JSONB so projections can reach into authored fields, and doc_type is
// indexed because every page query filters on it.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS documents (
			id         UUID PRIMARY KEY,
			doc_type   TEXT NOT NULL,
			data       JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_documents_doc_type ON documents (doc_type, created_at);
	`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure documents schema: %w", err)
	}
	return nil
}
