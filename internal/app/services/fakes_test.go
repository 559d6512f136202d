package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/aditya/universe/internal/app/models"
	"github.com/aditya/universe/internal/app/repositories"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// fakeDocumentStore is an in-memory DocumentStore. A fake (not a mock
// framework) keeps the tests dependency-free and easy to read.
type fakeDocumentStore struct {
	coll   models.Collection
	docs   []models.Document
	nextID int

	// set to a non-nil error to simulate a database failure
	failWith error
}

func newFakeDocumentStore(coll models.Collection) *fakeDocumentStore {
	return &fakeDocumentStore{coll: coll, nextID: 1}
}

func (f *fakeDocumentStore) Insert(ctx context.Context, doc models.Document) (models.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if err := f.coll.ValidateRequired(doc); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	f.coll.ApplyDefaults(doc)

	doc[models.KeyID] = fmt.Sprintf("%s-%04d", f.coll.Name, f.nextID)
	doc[models.KeyCreatedAt] = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(f.nextID) * time.Second).Format(time.RFC3339)
	f.nextID++
	f.docs = append(f.docs, doc)
	return doc, nil
}

func (f *fakeDocumentStore) FindAll(ctx context.Context) ([]models.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	// Newest first
	out := []models.Document{}
	for i := len(f.docs) - 1; i >= 0; i-- {
		out = append(out, f.docs[i])
	}
	return out, nil
}

func (f *fakeDocumentStore) FindByID(ctx context.Context, id string) (models.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, doc := range f.docs {
		if doc[models.KeyID] == id {
			return doc, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeDocumentStore) UpdateByID(ctx context.Context, id string, patch models.Document) (models.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	delete(patch, models.KeyID)
	delete(patch, models.KeyCreatedAt)
	for _, doc := range f.docs {
		if doc[models.KeyID] == id {
			for k, v := range patch {
				doc[k] = v
			}
			return doc, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeDocumentStore) DeleteByID(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, doc := range f.docs {
		if doc[models.KeyID] == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (f *fakeDocumentStore) FindByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Document{}
	for i := len(f.docs) - 1; i >= 0; i-- {
		if f.docs[i][f.coll.OwnerField] == ownerID {
			out = append(out, f.docs[i])
		}
	}
	return out, nil
}

func (f *fakeDocumentStore) Match(ctx context.Context, pattern string) ([]models.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	out := []models.Document{}
	for i := len(f.docs) - 1; i >= 0; i-- {
		for _, field := range f.coll.SearchFields {
			if value, ok := f.docs[i][field].(string); ok && re.MatchString(value) {
				out = append(out, f.docs[i])
				break
			}
		}
	}
	return out, nil
}

// newFakeStores builds a fake store per collection, keyed by name.
func newFakeStores() (map[string]repositories.DocumentStore, map[string]*fakeDocumentStore) {
	stores := make(map[string]repositories.DocumentStore)
	fakes := make(map[string]*fakeDocumentStore)
	for _, coll := range models.Collections() {
		fake := newFakeDocumentStore(coll)
		fakes[coll.Name] = fake
		stores[coll.Name] = fake
	}
	return stores, fakes
}

// fakeUserStore is an in-memory UserStore
type fakeUserStore struct {
	users []*models.User

	createErr error
	lookupErr error
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.StudentID == user.StudentID {
			return apperrors.ErrConflict
		}
	}
	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeUserStore) ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	for _, user := range f.users {
		if user.Email == email || user.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}
