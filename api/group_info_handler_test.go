package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sknikt/club-site-backend/models"
)

func TestGroupInfoLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := map[string]string{
		"name":        "Science Club",
		"description": "We build things",
		"contact":     "club@example.org",
	}

	// Empty datastore: public read is a 404
	recorder := doJSON(t, router, http.MethodGet, "/api/about/", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Update before create is a 404
	recorder = doJSON(t, router, http.MethodPut, "/api/admin/about/", payload, testAPIKey)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "please create it first")

	// Create requires the API key
	recorder = doJSON(t, router, http.MethodPost, "/api/admin/about/", payload, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid API Key")

	// First create succeeds
	recorder = doJSON(t, router, http.MethodPost, "/api/admin/about/", payload, testAPIKey)
	require.Equal(t, http.StatusOK, recorder.Code)
	created := decodeBody[models.GroupInfo](t, recorder)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Science Club", created.Name)

	// Any subsequent create conflicts, regardless of payload
	recorder = doJSON(t, router, http.MethodPost, "/api/admin/about/", map[string]string{
		"name": "Other", "description": "d", "contact": "c",
	}, testAPIKey)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already exists")

	// Partial update keeps omitted fields
	recorder = doJSON(t, router, http.MethodPut, "/api/admin/about/", map[string]string{
		"name": "Renamed Club",
	}, testAPIKey)
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeBody[models.GroupInfo](t, recorder)
	assert.Equal(t, "Renamed Club", updated.Name)
	assert.Equal(t, "We build things", updated.Description)

	// Public read now succeeds
	recorder = doJSON(t, router, http.MethodGet, "/api/about/", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	got := decodeBody[models.GroupInfo](t, recorder)
	assert.Equal(t, "Renamed Club", got.Name)
}

func TestGroupInfoCreateValidatesFields(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/admin/about/", map[string]string{
		"name": "No contact", "description": "d",
	}, testAPIKey)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "contact")
}
