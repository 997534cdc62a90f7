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

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	eventRepo *database.EventRepo
}

func newEventHandler(eventRepo *database.EventRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()

	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		eventRepo: eventRepo,
	}
}

// listEvents returns every event with its images
// @Summary List events
// @Tags Events
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows returned" default(100)
// @Success 200 {array} models.Event
// @Router /events/ [get]
func (h eventHandler) listEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pagination(r)

		events, err := h.eventRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if events == nil {
			events = []*models.Event{}
		}

		h.responder.WriteJSON(w, events)
	}
}

// getEvent returns a single event by id
// @Summary Get event
// @Tags Events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]any "Event not found"
// @Router /events/{eventID} [get]
func (h eventHandler) getEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := pathID(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// createEvent creates a new event
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.Event true "Event data"
// @Success 200 {object} models.Event
// @Failure 400 {object} map[string]any "Missing or invalid fields"
// @Router /admin/events/ [post]
func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event models.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		event.ID = 0
		event.Images = nil

		if err := h.eventRepo.Add(&event); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.eventRepo.FindByID(event.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, created)
	}
}

// updateEvent applies a partial update to an event
// @Summary Update event
// @Tags Events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param event body models.EventPatch true "Fields to overwrite"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]any "Event not found"
// @Router /admin/events/{eventID} [put]
func (h eventHandler) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := pathID(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.EventPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		updated, err := h.eventRepo.ApplyPatch(eventID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteEvent removes an event and its image rows
// @Summary Delete event
// @Tags Events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]any "Event not found"
// @Router /admin/events/{eventID} [delete]
func (h eventHandler) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := pathID(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.eventRepo.Delete(eventID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Event deleted successfully",
		})
	}
}
