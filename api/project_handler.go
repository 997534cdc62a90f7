package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sknikt/club-site-backend/database"
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// listProjects returns every project with its images, files and executables
// @Summary List projects
// @Tags Projects
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows returned" default(100)
// @Success 200 {array} models.Project
// @Router /projects/ [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)

		projects, err := h.projectRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject returns a single project by id
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]any "Project not found"
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 200 {object} models.Project
// @Failure 400 {object} map[string]any "Missing or invalid fields"
// @Router /admin/projects/ [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		project.ID = 0
		project.Images = nil
		project.Files = nil
		project.Executables = nil

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, created)
	}
}

// updateProject applies a partial update to a project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param project body models.ProjectPatch true "Fields to overwrite"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]any "Project not found"
// @Router /admin/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		updated, err := h.projectRepo.ApplyPatch(projectID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject removes a project and its child rows. Blobs owned by those
// rows stay on disk.
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]any "Project not found"
// @Router /admin/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Project deleted successfully",
		})
	}
}
