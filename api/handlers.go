package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sknikt/club-site-backend/database"
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/services"
)

type routeHandlers struct {
	eventHandler     eventHandler
	projectHandler   projectHandler
	imageHandler     imageHandler
	fileHandler      fileHandler
	groupInfoHandler groupInfoHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, attachments *services.AttachmentManager) *routeHandlers {
	return &routeHandlers{
		eventHandler:     newEventHandler(database.EventRepo()),
		projectHandler:   newProjectHandler(database.ProjectRepo()),
		imageHandler:     newImageHandler(database.ImageRepo(), attachments),
		fileHandler:      newFileHandler(attachments),
		groupInfoHandler: newGroupInfoHandler(database.GroupInfoRepo()),
	}
}

// pathID parses a numeric id out of a chi URL parameter.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

// pagination reads the skip/limit query parameters, falling back to
// skip 0 / limit 100. Unparseable values keep the defaults.
func pagination(r *http.Request) (skip, limit int) {
	skip, limit = 0, 100
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	return skip, limit
}
