package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya/universe/internal/app/models"
)

// DocumentStore defines the storage operations one post collection supports.
// Services and controllers depend on this interface, not on the Postgres
// implementation.
type DocumentStore interface {
	// Insert validates, defaults and persists a new document, returning it
	// with its assigned identifier and creation timestamp.
	Insert(ctx context.Context, doc models.Document) (models.Document, error)
	// FindAll returns every document, newest first.
	FindAll(ctx context.Context) ([]models.Document, error)
	// FindByID returns the document with the given identifier.
	FindByID(ctx context.Context, id string) (models.Document, error)
	// UpdateByID merges patch field-by-field into the stored document and
	// returns the post-merge document.
	UpdateByID(ctx context.Context, id string, patch models.Document) (models.Document, error)
	// DeleteByID removes the document with the given identifier.
	DeleteByID(ctx context.Context, id string) error
	// FindByOwner returns the documents whose owner field equals ownerID.
	FindByOwner(ctx context.Context, ownerID string) ([]models.Document, error)
	// Match returns the documents where any search field matches the
	// case-insensitive pattern.
	Match(ctx context.Context, pattern string) ([]models.Document, error)
}

// UserStore defines the storage operations for student accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error)
}

// Repositories combines all repositories backed by the shared connection pool
type Repositories struct {
	Users     *UserRepository
	Documents map[string]*DocumentRepository
}

// NewRepositories creates a new Repositories container with one document
// repository per post collection.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	documents := make(map[string]*DocumentRepository)
	for _, coll := range models.Collections() {
		documents[coll.Name] = NewDocumentRepository(db, coll)
	}

	return &Repositories{
		Users:     NewUserRepository(db),
		Documents: documents,
	}
}

// DocumentStores exposes the per-collection repositories behind the
// DocumentStore interface, keyed by collection name.
func (r *Repositories) DocumentStores() map[string]DocumentStore {
	stores := make(map[string]DocumentStore, len(r.Documents))
	for name, repo := range r.Documents {
		stores[name] = repo
	}
	return stores
}
