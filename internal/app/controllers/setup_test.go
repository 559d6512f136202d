package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aditya/universe/internal/app/controllers"
	"github.com/aditya/universe/internal/app/models"
	"github.com/aditya/universe/internal/app/repositories"
	"github.com/aditya/universe/internal/app/routes"
	"github.com/aditya/universe/internal/app/services"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// memDocStore is an in-memory DocumentStore for handler tests
type memDocStore struct {
	coll   models.Collection
	docs   []models.Document
	nextID int

	failWith error
}

func newMemDocStore(coll models.Collection) *memDocStore {
	return &memDocStore{coll: coll, nextID: 1}
}

func (f *memDocStore) Insert(ctx context.Context, doc models.Document) (models.Document, error) {
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

func (f *memDocStore) FindAll(ctx context.Context) ([]models.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Document{}
	for i := len(f.docs) - 1; i >= 0; i-- {
		out = append(out, f.docs[i])
	}
	return out, nil
}

func (f *memDocStore) FindByID(ctx context.Context, id string) (models.Document, error) {
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

func (f *memDocStore) UpdateByID(ctx context.Context, id string, patch models.Document) (models.Document, error) {
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

func (f *memDocStore) DeleteByID(ctx context.Context, id string) error {
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

func (f *memDocStore) FindByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
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

func (f *memDocStore) Match(ctx context.Context, pattern string) ([]models.Document, error) {
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

// memUserStore is an in-memory UserStore for handler tests
type memUserStore struct {
	users []*models.User
}

func (f *memUserStore) Create(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.StudentID == user.StudentID {
			return apperrors.ErrConflict
		}
	}
	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *memUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *memUserStore) ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email || user.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

// okPinger reports the store as reachable
type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

// testEnv is a fully wired router over in-memory stores
type testEnv struct {
	router *gin.Engine
	stores map[string]*memDocStore
	users  *memUserStore
}

// newTestEnv wires real controllers and services over in-memory stores and
// registers the full route table.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	docStores := make(map[string]repositories.DocumentStore)
	stores := make(map[string]*memDocStore)
	crud := make(map[string]*controllers.CrudController)
	for _, coll := range models.Collections() {
		store := newMemDocStore(coll)
		stores[coll.Name] = store
		docStores[coll.Name] = store
		crud[coll.Name] = controllers.NewCrudController(store, coll, zerolog.Nop())
	}

	users := &memUserStore{}
	authController := controllers.NewAuthController(
		services.NewAuthService(users, zerolog.Nop()), zerolog.Nop())
	activityController := controllers.NewActivityController(
		services.NewActivityService(docStores, zerolog.Nop()),
		services.NewSearchService(docStores, zerolog.Nop()),
		zerolog.Nop())
	healthController := controllers.NewHealthController(okPinger{})

	router := gin.New()
	routes.SetupRouter(router, crud, authController, activityController, healthController)

	return &testEnv{router: router, stores: stores, users: users}
}

// do performs a JSON request against the test router
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into out
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
