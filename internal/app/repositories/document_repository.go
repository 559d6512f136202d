package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/xid"

	"github.com/aditya/universe/internal/app/models"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// psql builds queries with Postgres-style placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// createdAtFormat is fixed-width so encoded timestamps sort lexicographically
const createdAtFormat = "2006-01-02T15:04:05.000Z07:00"

// DocumentRepository handles database operations for one post collection.
// Documents live in a single JSONB column; the identifier and creation
// timestamp are columns owned by this layer and injected into every document
// it returns.
type DocumentRepository struct {
	db   *pgxpool.Pool
	coll models.Collection
}

// NewDocumentRepository creates a new DocumentRepository for the collection
func NewDocumentRepository(db *pgxpool.Pool, coll models.Collection) *DocumentRepository {
	return &DocumentRepository{db: db, coll: coll}
}

// Collection returns the collection descriptor this repository serves
func (r *DocumentRepository) Collection() models.Collection {
	return r.coll
}

// Insert validates required fields, applies collection defaults and persists
// the document. The assigned identifier is an xid, so identifiers sort in
// creation order.
func (r *DocumentRepository) Insert(ctx context.Context, doc models.Document) (models.Document, error) {
	if err := r.coll.ValidateRequired(doc); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	r.coll.ApplyDefaults(doc)

	// Reserved keys are column-backed, never client-supplied
	delete(doc, models.KeyID)
	delete(doc, models.KeyCreatedAt)

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	id := xid.New().String()

	query, args, err := psql.Insert(r.coll.Table).
		Columns("id", "doc").
		Values(id, payload).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	doc[models.KeyID] = id
	doc[models.KeyCreatedAt] = createdAt.UTC().Format(createdAtFormat)
	return doc, nil
}

// FindAll returns all documents in the collection, newest first
func (r *DocumentRepository) FindAll(ctx context.Context) ([]models.Document, error) {
	builder := r.selectBuilder().OrderBy("created_at DESC", "id DESC")
	return r.queryDocuments(ctx, builder)
}

// FindByID returns the document with the given identifier, or
// apperrors.ErrResourceNotFound when no document has it. A structurally
// invalid identifier simply matches nothing, so it maps to the same outcome.
func (r *DocumentRepository) FindByID(ctx context.Context, id string) (models.Document, error) {
	query, args, err := r.selectBuilder().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	doc, err := r.scanDocument(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Item not found")
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return doc, nil
}

// UpdateByID performs a field-level merge of patch into the stored document:
// every key present in patch replaces the stored field, everything else is
// left untouched. Returns the post-merge document.
func (r *DocumentRepository) UpdateByID(ctx context.Context, id string, patch models.Document) (models.Document, error) {
	delete(patch, models.KeyID)
	delete(patch, models.KeyCreatedAt)

	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}

	query := fmt.Sprintf(
		`UPDATE %s SET doc = doc || $2 WHERE id = $1 RETURNING id, doc, created_at`,
		r.coll.Table,
	)

	doc, err := r.scanDocument(r.db.QueryRow(ctx, query, id, payload))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Item not found")
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

// DeleteByID removes the document with the given identifier
func (r *DocumentRepository) DeleteByID(ctx context.Context, id string) error {
	query, args, err := psql.Delete(r.coll.Table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Item not found")
	}
	return nil
}

// FindByOwner returns the documents whose owner field equals ownerID,
// newest first.
func (r *DocumentRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	builder := r.selectBuilder().
		Where(squirrel.Expr(fmt.Sprintf("doc->>'%s' = ?", r.coll.OwnerField), ownerID)).
		OrderBy("created_at DESC", "id DESC")
	return r.queryDocuments(ctx, builder)
}

// Match returns the documents where any of the collection's search fields
// matches the case-insensitive pattern. Collections without search fields
// match nothing.
func (r *DocumentRepository) Match(ctx context.Context, pattern string) ([]models.Document, error) {
	if len(r.coll.SearchFields) == 0 {
		return []models.Document{}, nil
	}

	conditions := make(squirrel.Or, 0, len(r.coll.SearchFields))
	for _, field := range r.coll.SearchFields {
		conditions = append(conditions,
			squirrel.Expr(fmt.Sprintf("doc->>'%s' ~* ?", field), pattern))
	}

	builder := r.selectBuilder().Where(conditions).OrderBy("created_at DESC", "id DESC")
	return r.queryDocuments(ctx, builder)
}

func (r *DocumentRepository) selectBuilder() squirrel.SelectBuilder {
	return psql.Select("id", "doc", "created_at").From(r.coll.Table)
}

func (r *DocumentRepository) queryDocuments(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Document, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	// Always a valid slice, even when nothing matches
	documents := []models.Document{}
	for rows.Next() {
		doc, err := r.scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return documents, nil
}

// scanDocument decodes one (id, doc, created_at) row into a document with
// the reserved keys injected.
func (r *DocumentRepository) scanDocument(row pgx.Row) (models.Document, error) {
	var (
		id        string
		payload   []byte
		createdAt time.Time
	)
	if err := row.Scan(&id, &payload, &createdAt); err != nil {
		return nil, err
	}

	doc := models.Document{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}

	doc[models.KeyID] = id
	doc[models.KeyCreatedAt] = createdAt.UTC().Format(createdAtFormat)
	return doc, nil
}
