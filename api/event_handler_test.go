package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sknikt/club-site-backend/models"
)

func TestEventCRUD(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := map[string]any{
		"name":        "Test Event",
		"description": "Test Description",
		"date":        time.Now().UTC().Format(time.RFC3339),
	}

	recorder := doJSON(t, router, http.MethodPost, "/api/admin/events/", payload, testAPIKey)
	require.Equal(t, http.StatusOK, recorder.Code)
	created := decodeBody[models.Event](t, recorder)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Test Event", created.Name)
	assert.NotNil(t, created.Images)
	assert.Empty(t, created.Images)

	recorder = doJSON(t, router, http.MethodGet, "/api/events/", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	listed := decodeBody[[]models.Event](t, recorder)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	recorder = doJSON(t, router, http.MethodPut, "/api/admin/events/1", map[string]string{
		"name": "Updated Event",
	}, testAPIKey)
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeBody[models.Event](t, recorder)
	assert.Equal(t, "Updated Event", updated.Name)
	assert.Equal(t, "Test Description", updated.Description)

	recorder = doJSON(t, router, http.MethodDelete, "/api/admin/events/1", nil, testAPIKey)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Event deleted successfully")

	recorder = doJSON(t, router, http.MethodGet, "/api/events/1", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestEventReadMissing(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/events/999", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Event not found")
}

func TestEventMutationsRequireAPIKey(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/admin/events/", map[string]string{"name": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/api/admin/events/1", nil, "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestEventCreateMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/admin/events/", map[string]string{
		"description": "no name or date",
	}, testAPIKey)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
