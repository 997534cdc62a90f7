package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sknikt/club-site-backend/database"
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"github.com/sknikt/club-site-backend/services"
)

// Uploads above this size are rejected before they reach the blob store.
const maxUploadSize = 50 << 20 // 50 MB

type imageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	imageRepo   *database.ImageRepo
	attachments *services.AttachmentManager
}

func newImageHandler(imageRepo *database.ImageRepo, attachments *services.AttachmentManager) imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()

	return imageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		imageRepo:   imageRepo,
		attachments: attachments,
	}
}

// uploadImage attaches a picture to exactly one event or project
// @Summary Upload image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpg, jpeg, png, gif, webp)"
// @Param event_id formData int false "Owning event"
// @Param project_id formData int false "Owning project"
// @Success 200 {object} models.Image
// @Failure 400 {object} map[string]any "Bad file type or ambiguous owner"
// @Failure 404 {object} map[string]any "Owner not found"
// @Router /admin/upload_image/ [post]
func (h imageHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid file upload form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		owner, err := ownerFromForm(r.FormValue("event_id"), r.FormValue("project_id"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		image, err := h.attachments.AttachImage(owner, header.Filename, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, image)
	}
}

// listEventImages lists the gallery of one event
// @Summary Event gallery
// @Tags Gallery
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {array} models.Image
// @Router /gallery/event/{eventID} [get]
func (h imageHandler) listEventImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := pathID(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		images, err := h.imageRepo.FindByEvent(eventID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if images == nil {
			images = []*models.Image{}
		}

		h.responder.WriteJSON(w, images)
	}
}

// listProjectImages lists the gallery of one project
// @Summary Project gallery
// @Tags Gallery
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {array} models.Image
// @Router /gallery/project/{projectID} [get]
func (h imageHandler) listProjectImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		images, err := h.imageRepo.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if images == nil {
			images = []*models.Image{}
		}

		h.responder.WriteJSON(w, images)
	}
}

// deleteImage removes an image row and its blob
// @Summary Delete image
// @Tags Gallery
// @Produce json
// @Param imageID path int true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]any "Image not found"
// @Router /admin/images/{imageID} [delete]
func (h imageHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := pathID(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.attachments.DetachImage(imageID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Image deleted successfully",
		})
	}
}

// ownerFromForm resolves the event_id/project_id form pair into a single
// owner reference. Supplying both or neither is rejected here, before any
// bytes hit the blob store.
func ownerFromForm(eventID, projectID string) (models.ImageOwner, error) {
	switch {
	case eventID != "" && projectID != "":
		return models.ImageOwner{}, errs.NewBadRequestError("Provide either event_id or project_id, not both")
	case eventID != "":
		id, err := strconv.ParseUint(eventID, 10, 64)
		if err != nil {
			return models.ImageOwner{}, errs.NewInvalidFieldError("event_id", "must be an integer")
		}
		return models.EventOwner(uint(id)), nil
	case projectID != "":
		id, err := strconv.ParseUint(projectID, 10, 64)
		if err != nil {
			return models.ImageOwner{}, errs.NewInvalidFieldError("project_id", "must be an integer")
		}
		return models.ProjectOwner(uint(id)), nil
	default:
		return models.ImageOwner{}, errs.NewBadRequestError("Either event_id or project_id must be provided")
	}
}
