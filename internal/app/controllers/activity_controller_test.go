package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya/universe/internal/app/models"
)

func TestUserActivity_AllCategoriesAlwaysPresent(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/user-activity/user_nobody", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var activity map[string][]models.Document
	decode(t, w, &activity)
	require.Len(t, activity, 7)
	for name, docs := range activity {
		assert.NotNil(t, docs, "category %s must be a list, not null", name)
		assert.Empty(t, docs)
	}
}

func TestUserActivity_CollectsOwnedPosts(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/beacons", validBeacon())
	require.Equal(t, http.StatusCreated, w.Code)
	w = env.do(t, http.MethodPost, "/market", models.Document{"title": "Lamp", "sellerId": "s1"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = env.do(t, http.MethodPost, "/market", models.Document{"title": "Desk", "sellerId": "s2"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/user-activity/s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var activity map[string][]models.Document
	decode(t, w, &activity)
	assert.Len(t, activity["beacons"], 1)
	require.Len(t, activity["market"], 1)
	assert.Equal(t, "Lamp", activity["market"][0]["title"])
	assert.Empty(t, activity["events"])
}

func TestUserActivity_StoreFault(t *testing.T) {
	env := newTestEnv(t)
	env.stores["resources"].failWith = assert.AnError

	w := env.do(t, http.MethodGet, "/user-activity/s1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Failed to fetch user activity", body["error"])
}

func TestSearch_MissingQuery(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/search", "/search?q="} {
		w := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)

		var body map[string]string
		decode(t, w, &body)
		assert.Equal(t, "Search query required", body["error"])
	}
}

func TestSearch_CaseInsensitiveMatch(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/clubs", models.Document{
		"name": "Coding Club", "category": "Tech",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, q := range []string{"Coding", "coding"} {
		w = env.do(t, http.MethodGet, "/search?q="+q, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var matches map[string][]models.Document
		decode(t, w, &matches)
		require.Len(t, matches, 6, "six searchable categories")
		require.Len(t, matches["clubs"], 1)
		assert.Equal(t, "Coding Club", matches["clubs"][0]["name"])
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	decode(t, w, &body)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "UniVerse API is running", body["message"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Equal(t, true, body["database"])
}
