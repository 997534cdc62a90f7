package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sknikt/club-site-backend/config"
	"github.com/sknikt/club-site-backend/database"
	"github.com/sknikt/club-site-backend/services"
	"github.com/sknikt/club-site-backend/storage"
)

const testAPIKey = "test_api_key"

func newTestRouter(t *testing.T) (http.Handler, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	currentDB := database.New(db)
	attachments := services.NewAttachmentManager(currentDB, store)

	c := config.Config{
		Port:            "8080",
		AdminAPIKey:     testAPIKey,
		AcceptedOrigins: []string{"*"},
	}

	return NewRouter(c, currentDB, attachments), currentDB
}

// doJSON performs a request with an optional JSON body and API key.
func doJSON(t *testing.T, router http.Handler, method, path string, body any, apiKey string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// doMultipart performs a multipart upload with one file part and extra form fields.
func doMultipart(t *testing.T, router http.Handler, path, filename string, content []byte, fields map[string]string, apiKey string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}
