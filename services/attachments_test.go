package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sknikt/club-site-backend/database"
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"github.com/sknikt/club-site-backend/storage"
)

func newTestManager(t *testing.T) (*AttachmentManager, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	currentDB := database.New(db)
	return NewAttachmentManager(currentDB, store), currentDB
}

func makeProject(t *testing.T, db database.Database) *models.Project {
	t.Helper()

	project := models.Project{Name: "Super Game", Description: "A great game", Technologies: "Go, Raylib"}
	require.NoError(t, db.ProjectRepo().Add(&project))
	return &project
}

func makeEvent(t *testing.T, db database.Database) *models.Event {
	t.Helper()

	event := models.Event{Name: "Demo Day", Date: time.Now().UTC(), Description: "Showcase"}
	require.NoError(t, db.EventRepo().Add(&event))
	return &event
}

func apiStatus(t *testing.T, err error) int {
	t.Helper()

	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok, "expected *errs.ApiErr, got %T: %v", err, err)
	return apiErr.StatusCode
}

func TestAttachImageRejectsNonImageExtension(t *testing.T) {
	manager, db := newTestManager(t)
	event := makeEvent(t, db)

	_, err := manager.AttachImage(models.EventOwner(event.ID), "malicious.txt", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 400, apiStatus(t, err))
	assert.Contains(t, err.Error(), "txt")
}

func TestAttachImageMissingParent(t *testing.T) {
	manager, _ := newTestManager(t)

	_, err := manager.AttachImage(models.EventOwner(999), "team.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 404, apiStatus(t, err))
}

func TestAttachImageToEvent(t *testing.T) {
	manager, db := newTestManager(t)
	event := makeEvent(t, db)

	image, err := manager.AttachImage(models.EventOwner(event.ID), "team.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	require.NotZero(t, image.ID)
	require.NotNil(t, image.EventID)
	assert.Equal(t, event.ID, *image.EventID)
	assert.Nil(t, image.ProjectID)

	content, err := os.ReadFile(image.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(content))

	loaded, err := db.EventRepo().FindByID(event.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Images, 1)
}

func TestAttachImageToProject(t *testing.T) {
	manager, db := newTestManager(t)
	project := makeProject(t, db)

	image, err := manager.AttachImage(models.ProjectOwner(project.ID), "shot.webp", strings.NewReader("x"))
	require.NoError(t, err)
	require.NotNil(t, image.ProjectID)
	assert.Equal(t, project.ID, *image.ProjectID)
	assert.Nil(t, image.EventID)
}

func TestDetachImageRemovesRowAndBlob(t *testing.T) {
	manager, db := newTestManager(t)
	event := makeEvent(t, db)

	image, err := manager.AttachImage(models.EventOwner(event.ID), "team.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, manager.DetachImage(image.ID))

	_, err = db.ImageRepo().FindByID(image.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apiStatus(t, err))

	_, err = os.Stat(image.FilePath)
	assert.True(t, os.IsNotExist(err))
}

func TestDetachImageToleratesMissingBlob(t *testing.T) {
	manager, db := newTestManager(t)
	event := makeEvent(t, db)

	image, err := manager.AttachImage(models.EventOwner(event.ID), "team.png", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, os.Remove(image.FilePath))

	require.NoError(t, manager.DetachImage(image.ID))

	_, err = db.ImageRepo().FindByID(image.ID)
	require.Error(t, err)
}

func TestDetachImageMissingRow(t *testing.T) {
	manager, _ := newTestManager(t)

	err := manager.DetachImage(12345)
	require.Error(t, err)
	assert.Equal(t, 404, apiStatus(t, err))
}

func TestAttachProjectFileRejectsNonArchive(t *testing.T) {
	manager, db := newTestManager(t)
	project := makeProject(t, db)

	_, err := manager.AttachProjectFile(project.ID, "code.exe", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 400, apiStatus(t, err))
}

func TestAttachProjectFileAndOpen(t *testing.T) {
	manager, db := newTestManager(t)
	project := makeProject(t, db)

	file, err := manager.AttachProjectFile(project.ID, "source.zip", strings.NewReader("zip bytes"))
	require.NoError(t, err)

	blob, stat, filename, err := manager.OpenProjectFile(file.ID)
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(len("zip bytes")), stat.Size())
	assert.True(t, strings.HasSuffix(filename, "_source.zip"))
}

func TestAttachExecutableValidatesPlatform(t *testing.T) {
	manager, db := newTestManager(t)
	project := makeProject(t, db)

	_, err := manager.AttachExecutable(project.ID, "1.0.0", "Amiga", "game", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 400, apiStatus(t, err))
	assert.Contains(t, err.Error(), "Invalid platform")
}

func TestAttachExecutableMissingProject(t *testing.T) {
	manager, _ := newTestManager(t)

	_, err := manager.AttachExecutable(999, "1.0.0", models.PlatformWindows, "game.exe", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 404, apiStatus(t, err))
}

func TestOpenExecutableDistinguishesMissingBlob(t *testing.T) {
	manager, db := newTestManager(t)
	project := makeProject(t, db)

	exe, err := manager.AttachExecutable(project.ID, "1.0.0", models.PlatformWindows, "game.exe", strings.NewReader("bin"))
	require.NoError(t, err)

	// Row absent: plain 404
	_, _, _, err = manager.OpenExecutable(exe.ID + 1)
	require.Error(t, err)
	assert.Equal(t, 404, apiStatus(t, err))
	assert.Contains(t, err.Error(), "Executable not found")

	// Row present but blob gone: still 404, different message
	require.NoError(t, os.Remove(exe.FilePath))
	_, _, _, err = manager.OpenExecutable(exe.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apiStatus(t, err))
	assert.Contains(t, err.Error(), "File missing on server")
}
