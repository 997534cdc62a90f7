package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sknikt/club-site-backend/database"
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"github.com/sknikt/club-site-backend/storage"
)

var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true,
}

var archiveExtensions = map[string]bool{
	"zip": true, "rar": true, "7z": true, "tar": true, "gz": true, "bz2": true,
}

// AttachmentManager keeps file-bearing rows and their blobs consistent:
// an upload writes the blob before the row is committed, and a detach
// removes the blob before the row goes away.
type AttachmentManager struct {
	db     database.Database
	store  *storage.Store
	logger zerolog.Logger
}

func NewAttachmentManager(db database.Database, store *storage.Store) *AttachmentManager {
	logger := log.With().Str("serviceName", "attachmentManager").Logger()

	return &AttachmentManager{
		db:     db,
		store:  store,
		logger: logger,
	}
}

// AttachImage stores an uploaded picture and creates its metadata row under
// the single owner named by the caller.
func (m *AttachmentManager) AttachImage(owner models.ImageOwner, filename string, content io.Reader) (*models.Image, error) {
	if ext := extension(filename); !imageExtensions[ext] {
		return nil, errs.NewBadRequestError(fmt.Sprintf("Invalid file type %q. Only JPG, JPEG, PNG, GIF, WEBP are allowed.", ext))
	}

	image := models.Image{}
	switch owner.Kind {
	case models.OwnerEvent:
		if _, err := m.db.EventRepo().FindByID(owner.ID); err != nil {
			return nil, err
		}
		id := owner.ID
		image.EventID = &id
	case models.OwnerProject:
		if _, err := m.db.ProjectRepo().FindByID(owner.ID); err != nil {
			return nil, err
		}
		id := owner.ID
		image.ProjectID = &id
	default:
		return nil, errs.NewBadRequestError("Either event_id or project_id must be provided")
	}

	path, err := m.store.Save(storage.CategoryImages, filename, content)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to store image", err)
	}
	image.FilePath = path

	if err := m.db.ImageRepo().Add(&image); err != nil {
		m.discardBlob(path)
		return nil, err
	}

	return &image, nil
}

// AttachProjectFile stores an uploaded source archive for a project.
func (m *AttachmentManager) AttachProjectFile(projectID uint, filename string, content io.Reader) (*models.ProjectFile, error) {
	if ext := extension(filename); !archiveExtensions[ext] {
		return nil, errs.NewBadRequestError(fmt.Sprintf("Invalid file type %q. Only archive files allowed.", ext))
	}

	if _, err := m.db.ProjectRepo().FindByID(projectID); err != nil {
		return nil, err
	}

	path, err := m.store.Save(storage.CategoryProjectFiles, filename, content)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to store project file", err)
	}

	file := models.ProjectFile{FilePath: path, ProjectID: projectID}
	if err := m.db.ProjectFileRepo().Add(&file); err != nil {
		m.discardBlob(path)
		return nil, err
	}

	return &file, nil
}

// AttachExecutable stores an uploaded build for a project. There is no
// extension allow-list; the platform value constrains it instead.
func (m *AttachmentManager) AttachExecutable(projectID uint, version string, platform models.Platform, filename string, content io.Reader) (*models.ExecutableFile, error) {
	if !platform.Valid() {
		return nil, errs.NewBadRequestError(fmt.Sprintf("Invalid platform. Choose: %v", models.AllPlatforms()))
	}
	if version == "" {
		return nil, errs.NewMissingRequiredFieldError("version")
	}

	if _, err := m.db.ProjectRepo().FindByID(projectID); err != nil {
		return nil, err
	}

	path, err := m.store.Save(storage.CategoryExecutables, filename, content)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to store executable", err)
	}

	exe := models.ExecutableFile{
		FilePath:  path,
		Version:   version,
		Platform:  platform,
		ProjectID: projectID,
	}
	if err := m.db.ExecutableFileRepo().Add(&exe); err != nil {
		m.discardBlob(path)
		return nil, err
	}

	return &exe, nil
}

// DetachImage removes an image's blob and then its row. A blob that is
// already gone does not fail the detach; any other removal error aborts
// before the row delete so metadata never outlives a live blob the other
// way around.
func (m *AttachmentManager) DetachImage(id uint) error {
	image, err := m.db.ImageRepo().FindByID(id)
	if err != nil {
		return err
	}
	if err := m.store.Remove(image.FilePath); err != nil {
		return errs.NewInternalErrorWithCause("failed to remove image blob", err)
	}
	return m.db.ImageRepo().Delete(id)
}

// DetachProjectFile removes a project file's blob and then its row.
func (m *AttachmentManager) DetachProjectFile(id uint) error {
	file, err := m.db.ProjectFileRepo().FindByID(id)
	if err != nil {
		return err
	}
	if err := m.store.Remove(file.FilePath); err != nil {
		return errs.NewInternalErrorWithCause("failed to remove project file blob", err)
	}
	return m.db.ProjectFileRepo().Delete(id)
}

// DetachExecutable removes an executable's blob and then its row.
func (m *AttachmentManager) DetachExecutable(id uint) error {
	exe, err := m.db.ExecutableFileRepo().FindByID(id)
	if err != nil {
		return err
	}
	if err := m.store.Remove(exe.FilePath); err != nil {
		return errs.NewInternalErrorWithCause("failed to remove executable blob", err)
	}
	return m.db.ExecutableFileRepo().Delete(id)
}

// OpenProjectFile resolves a project file row to its blob for download.
// A row whose blob has gone missing reports 404 with a distinct message.
func (m *AttachmentManager) OpenProjectFile(id uint) (*os.File, os.FileInfo, string, error) {
	file, err := m.db.ProjectFileRepo().FindByID(id)
	if err != nil {
		return nil, nil, "", err
	}
	return m.openBlob(file.FilePath)
}

// OpenExecutable resolves an executable row to its blob for download.
func (m *AttachmentManager) OpenExecutable(id uint) (*os.File, os.FileInfo, string, error) {
	exe, err := m.db.ExecutableFileRepo().FindByID(id)
	if err != nil {
		return nil, nil, "", err
	}
	return m.openBlob(exe.FilePath)
}

func (m *AttachmentManager) openBlob(path string) (*os.File, os.FileInfo, string, error) {
	f, stat, err := m.store.Open(path)
	if err != nil {
		if err == storage.ErrBlobNotFound {
			return nil, nil, "", errs.NewNotFoundError("File missing on server")
		}
		return nil, nil, "", errs.NewInternalErrorWithCause("failed to open blob", err)
	}
	return f, stat, filepath.Base(path), nil
}

// discardBlob cleans up a blob whose metadata row failed to commit.
func (m *AttachmentManager) discardBlob(path string) {
	if err := m.store.Remove(path); err != nil {
		m.logger.Error().Err(err).Str("path", path).Msg("Failed to remove orphaned blob")
	}
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
