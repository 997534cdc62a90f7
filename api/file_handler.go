package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"github.com/sknikt/club-site-backend/services"
)

type fileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	attachments *services.AttachmentManager
}

func newFileHandler(attachments *services.AttachmentManager) fileHandler {
	logger := log.With().Str("handlerName", "fileHandler").Logger()

	return fileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		attachments: attachments,
	}
}

// uploadProjectFile attaches a source archive to a project
// @Summary Upload project archive
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Archive (zip, rar, 7z, tar, gz, bz2)"
// @Param project_id formData int true "Owning project"
// @Success 200 {object} models.ProjectFile
// @Failure 400 {object} map[string]any "Bad file type"
// @Failure 404 {object} map[string]any "Project not found"
// @Router /admin/projects/files/upload [post]
func (h fileHandler) uploadProjectFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, projectID, err := h.parseUpload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer file.Close()

		created, err := h.attachments.AttachProjectFile(projectID, header.Filename, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, created)
	}
}

// deleteProjectFile removes an archive row and its blob
// @Summary Delete project archive
// @Tags Files
// @Produce json
// @Param fileID path int true "File ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]any "File not found"
// @Router /admin/projects/files/{fileID} [delete]
func (h fileHandler) deleteProjectFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID, err := pathID(r, "fileID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.attachments.DetachProjectFile(fileID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "File deleted successfully",
		})
	}
}

// downloadProjectFile streams an archive blob to an admin
// @Summary Download project archive
// @Tags Files
// @Produce octet-stream
// @Param fileID path int true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]any "File not found or missing on server"
// @Router /admin/projects/files/{fileID}/download [get]
func (h fileHandler) downloadProjectFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID, err := pathID(r, "fileID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blob, stat, filename, err := h.attachments.OpenProjectFile(fileID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer blob.Close()

		h.streamBlob(w, blob, stat, filename)
	}
}

// uploadExecutable attaches a platform build to a project
// @Summary Upload executable
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Executable file"
// @Param project_id formData int true "Owning project"
// @Param version formData string true "Build version"
// @Param platform formData string true "One of Windows, Linux, MacOS"
// @Success 200 {object} models.ExecutableFile
// @Failure 400 {object} map[string]any "Invalid platform"
// @Failure 404 {object} map[string]any "Project not found"
// @Router /admin/projects/executables/upload [post]
func (h fileHandler) uploadExecutable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, projectID, err := h.parseUpload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer file.Close()

		version := r.FormValue("version")
		platform := models.Platform(r.FormValue("platform"))

		created, err := h.attachments.AttachExecutable(projectID, version, platform, header.Filename, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, created)
	}
}

// deleteExecutable removes an executable row and its blob
// @Summary Delete executable
// @Tags Files
// @Produce json
// @Param exeID path int true "Executable ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]any "Executable not found"
// @Router /admin/projects/executables/{exeID} [delete]
func (h fileHandler) deleteExecutable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exeID, err := pathID(r, "exeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.attachments.DetachExecutable(exeID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Executable deleted successfully",
		})
	}
}

// downloadExecutable streams an executable blob; this route is public
// @Summary Download executable
// @Tags Files
// @Produce octet-stream
// @Param exeID path int true "Executable ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]any "Executable not found or missing on server"
// @Router /download/executable/{exeID} [get]
func (h fileHandler) downloadExecutable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exeID, err := pathID(r, "exeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blob, stat, filename, err := h.attachments.OpenExecutable(exeID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer blob.Close()

		h.streamBlob(w, blob, stat, filename)
	}
}

// parseUpload reads the multipart form shared by the file and executable
// upload routes: a "file" part plus a required project_id value.
func (h fileHandler) parseUpload(r *http.Request) (multipart.File, *multipart.FileHeader, uint, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, 0, errs.NewBadRequestError("invalid file upload form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, 0, errs.NewMissingRequiredFieldError("file")
	}

	rawProjectID := r.FormValue("project_id")
	if rawProjectID == "" {
		file.Close()
		return nil, nil, 0, errs.NewMissingRequiredFieldError("project_id")
	}
	projectID, err := strconv.ParseUint(rawProjectID, 10, 64)
	if err != nil {
		file.Close()
		return nil, nil, 0, errs.NewInvalidFieldError("project_id", "must be an integer")
	}

	return file, header, uint(projectID), nil
}

func (h fileHandler) streamBlob(w http.ResponseWriter, blob *os.File, stat os.FileInfo, filename string) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.FormatInt(stat.Size(), 10))

	if _, err := io.Copy(w, blob); err != nil {
		h.logger.Error().Err(err).Msg("error streaming blob")
	}
}
