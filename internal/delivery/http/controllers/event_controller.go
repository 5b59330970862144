package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chainpass/internal/delivery/http/helpers"
	"chainpass/internal/delivery/http/middleware"
	"chainpass/internal/domain"
)

type EventController struct {
	Logger   *slog.Logger
	Registry domain.EventRegistry
	Journal  domain.JournalRepository
}

func NewEventController(logger *slog.Logger, registry domain.EventRegistry, journal domain.JournalRepository) *EventController {
	return &EventController{
		Logger:   logger,
		Registry: registry,
		Journal:  journal,
	}
}

// parseEventID reads the eventID path value. Writes a 400 and returns false
// on a malformed id; 0 is never a valid id.
func parseEventID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.PathValue("eventID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return 0, false
	}
	return id, true
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name            string    `json:"name"`
	Fee             int64     `json:"fee"`
	MaxParticipants int       `json:"max_participants"`
	Deadline        time.Time `json:"deadline"`
}

// Validate implements helpers.Validator.
func (r *CreateEventRequest) Validate() []string {
	var errs []string
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		errs = append(errs, "name is required")
	}
	if r.Fee < 0 {
		errs = append(errs, "fee must not be negative")
	}
	if r.Deadline.IsZero() {
		errs = append(errs, "deadline is required")
	}
	return errs
}

// CreateEventResponse is the success payload for POST /events.
type CreateEventResponse struct {
	EventID uint64 `json:"event_id"`
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event with the caller as organizer. Registration starts closed; the deadline must be in the future.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateEventRequest true "Event configuration"
// @Success 201 {object} helpers.APIResponse "data: controllers.CreateEventResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid_max_participants, deadline_must_be_future"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	id, err := c.Registry.CreateEvent(r.Context(), caller, req.Name, req.Fee, req.MaxParticipants, req.Deadline)
	if err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateEventResponse{EventID: id})
}

// GetEvent godoc
// @Summary Get event details
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: domain.Event"
// @Failure 404 {object} helpers.APIResponse "error.code: event_does_not_exist"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	ev, err := c.Registry.GetEventDetails(r.Context(), id)
	if err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ev)
}

// EventCounterResponse is the success payload for GET /events/counter.
type EventCounterResponse struct {
	EventCounter uint64 `json:"event_counter"`
}

// EventCounter godoc
// @Summary Get the number of events ever created
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data: controllers.EventCounterResponse"
// @Router /events/counter [get]
func (c *EventController) EventCounter(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, EventCounterResponse{
		EventCounter: c.Registry.EventCounter(r.Context()),
	})
}

// toggle dispatches the four registration gate operations; pause and reopen
// are aliases of close and open.
func (c *EventController) toggle(w http.ResponseWriter, r *http.Request, op func(caller string, eventID uint64) error) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	caller, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := op(caller, id); err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	ev, err := c.Registry.GetEventDetails(r.Context(), id)
	if err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ev)
}

// OpenRegistration godoc
// @Summary Open registration for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: domain.Event"
// @Failure 403 {object} helpers.APIResponse "error.code: only_organizer"
// @Failure 404 {object} helpers.APIResponse "error.code: event_does_not_exist"
// @Failure 409 {object} helpers.APIResponse "error.code: registration_already_open"
// @Router /events/{eventID}/registration/open [post]
func (c *EventController) OpenRegistration(w http.ResponseWriter, r *http.Request) {
	c.toggle(w, r, func(caller string, id uint64) error {
		return c.Registry.OpenRegistration(r.Context(), caller, id)
	})
}

// CloseRegistration godoc
// @Summary Close registration for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: domain.Event"
// @Failure 403 {object} helpers.APIResponse "error.code: only_organizer"
// @Failure 404 {object} helpers.APIResponse "error.code: event_does_not_exist"
// @Failure 409 {object} helpers.APIResponse "error.code: registration_already_closed"
// @Router /events/{eventID}/registration/close [post]
func (c *EventController) CloseRegistration(w http.ResponseWriter, r *http.Request) {
	c.toggle(w, r, func(caller string, id uint64) error {
		return c.Registry.CloseRegistration(r.Context(), caller, id)
	})
}

// PauseRegistration godoc
// @Summary Pause registration for an event (alias of close)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: domain.Event"
// @Router /events/{eventID}/registration/pause [post]
func (c *EventController) PauseRegistration(w http.ResponseWriter, r *http.Request) {
	c.toggle(w, r, func(caller string, id uint64) error {
		return c.Registry.PauseRegistration(r.Context(), caller, id)
	})
}

// ReopenRegistration godoc
// @Summary Reopen registration for an event (alias of open)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: domain.Event"
// @Router /events/{eventID}/registration/reopen [post]
func (c *EventController) ReopenRegistration(w http.ResponseWriter, r *http.Request) {
	c.toggle(w, r, func(caller string, id uint64) error {
		return c.Registry.ReopenRegistration(r.Context(), caller, id)
	})
}

// ListRecords godoc
// @Summary List the audit journal for an event
// @Description Returns the append-only record log for the event, oldest first.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: []domain.Record"
// @Failure 404 {object} helpers.APIResponse "error.code: event_does_not_exist"
// @Router /events/{eventID}/records [get]
func (c *EventController) ListRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	if _, err := c.Registry.GetEventDetails(r.Context(), id); err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	records, err := c.Journal.ListByEventID(r.Context(), id)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if records == nil {
		records = []*domain.Record{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, records)
}
