package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/document"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository - Raw SQL with pgxpool, documents stored as JSONB
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) document.RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const documentColumns = "id, doc_type, data, created_at, updated_at"

func (r *postgresRepository) scanDocument(row pgx.Row) (*document.Document, error) {
	var doc document.Document
	var raw []byte

	err := row.Scan(&doc.ID, &doc.Type, &raw, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrNotFound
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}

	if err := json.Unmarshal(raw, &doc.Data); err != nil {
		return nil, fmt.Errorf("decode document data: %w", err)
	}

	return &doc, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*document.Document, error) {
	query := fmt.Sprintf("SELECT %s FROM documents WHERE id = $1", documentColumns)
	return r.scanDocument(r.pool.QueryRow(ctx, query, id))
}

// GetSingleton returns the oldest document of a singleton type. Creation
// order makes the result deterministic if duplicates ever slip in.
func (r *postgresRepository) GetSingleton(ctx context.Context, docType string) (*document.Document, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM documents
		WHERE doc_type = $1
		ORDER BY created_at ASC
		LIMIT 1
	`, documentColumns)
	return r.scanDocument(r.pool.QueryRow(ctx, query, docType))
}

func (r *postgresRepository) ListByType(ctx context.Context, docType string) ([]document.Document, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM documents
		WHERE doc_type = $1
		ORDER BY created_at ASC
	`, documentColumns)

	rows, err := r.pool.Query(ctx, query, docType)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	return r.collectRows(rows)
}

func (r *postgresRepository) ListByIDs(ctx context.Context, ids []string) ([]document.Document, error) {
	if len(ids) == 0 {
		return []document.Document{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM documents WHERE id = ANY($1)", documentColumns)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list documents by ids: %w", err)
	}
	defer rows.Close()

	return r.collectRows(rows)
}

func (r *postgresRepository) collectRows(rows pgx.Rows) ([]document.Document, error) {
	docs := make([]document.Document, 0)
	for rows.Next() {
		doc, err := r.scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return docs, nil
}

func (r *postgresRepository) CountByType(ctx context.Context, docType string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM documents WHERE doc_type = $1", docType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) Create(ctx context.Context, doc *document.Document) error {
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("encode document data: %w", err)
	}

	query := `
		INSERT INTO documents (id, doc_type, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.pool.Exec(ctx, query, doc.ID, doc.Type, raw, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, doc *document.Document) error {
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("encode document data: %w", err)
	}

	query := `
		UPDATE documents
		SET data = $2, updated_at = $3
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, doc.ID, raw, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}
