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

type groupInfoHandler struct {
	responder     Responder
	logger        zerolog.Logger
	groupInfoRepo *database.GroupInfoRepo
}

func newGroupInfoHandler(groupInfoRepo *database.GroupInfoRepo) groupInfoHandler {
	logger := log.With().Str("handlerName", "groupInfoHandler").Logger()

	return groupInfoHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		groupInfoRepo: groupInfoRepo,
	}
}

// getGroupInfo returns the singleton about-us record
// @Summary Get group info
// @Tags About
// @Produce json
// @Success 200 {object} models.GroupInfo
// @Failure 404 {object} map[string]any "Group info not found"
// @Router /about/ [get]
func (h groupInfoHandler) getGroupInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.groupInfoRepo.Get()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// createGroupInfo creates the singleton record; fails once it exists
// @Summary Create group info
// @Tags About
// @Accept json
// @Produce json
// @Param info body models.GroupInfo true "Group info"
// @Success 200 {object} models.GroupInfo
// @Failure 409 {object} map[string]any "Group info already exists"
// @Router /admin/about/ [post]
func (h groupInfoHandler) createGroupInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var info models.GroupInfo
		if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode group info request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		info.ID = 0

		if err := h.groupInfoRepo.Add(&info); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// updateGroupInfo applies a partial update to the singleton record
// @Summary Update group info
// @Tags About
// @Accept json
// @Produce json
// @Param info body models.GroupInfoPatch true "Fields to overwrite"
// @Success 200 {object} models.GroupInfo
// @Failure 404 {object} map[string]any "Group info not created yet"
// @Router /admin/about/ [put]
func (h groupInfoHandler) updateGroupInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.GroupInfoPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode group info patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		updated, err := h.groupInfoRepo.ApplyPatch(patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}
