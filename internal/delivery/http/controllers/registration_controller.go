package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"chainpass/internal/delivery/http/helpers"
	"chainpass/internal/delivery/http/middleware"
	"chainpass/internal/domain"
)

type RegistrationController struct {
	Logger   *slog.Logger
	Registry domain.EventRegistry
	Ledger   domain.RegistrationLedger
	Metadata domain.TicketMetadata
	Email    domain.EmailService
}

func NewRegistrationController(logger *slog.Logger, registry domain.EventRegistry, ledger domain.RegistrationLedger, metadata domain.TicketMetadata, email domain.EmailService) *RegistrationController {
	return &RegistrationController{
		Logger:   logger,
		Registry: registry,
		Ledger:   ledger,
		Metadata: metadata,
		Email:    email,
	}
}

// RegisterRequest is the request body for POST /events/{eventID}/registrations.
// Email is optional; when present, a ticket confirmation is sent after a
// successful registration.
type RegisterRequest struct {
	PaidAmount int64  `json:"paid_amount"`
	Email      string `json:"email,omitempty"`
}

// Validate implements helpers.Validator.
func (r *RegisterRequest) Validate() []string {
	var errs []string
	if r.PaidAmount < 0 {
		errs = append(errs, "paid_amount must not be negative")
	}
	r.Email = strings.TrimSpace(r.Email)
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		errs = append(errs, "email is not valid")
	}
	return errs
}

// RegisterResponse is the success payload for POST /events/{eventID}/registrations.
type RegisterResponse struct {
	TicketID  uint64 `json:"ticket_id"`
	TicketURI string `json:"ticket_uri"`
}

// Register godoc
// @Summary Register the caller for an event
// @Description Registers the authenticated caller and mints their ticket. paid_amount must equal the event fee exactly.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param body body controllers.RegisterRequest true "Payment and optional confirmation email"
// @Success 201 {object} helpers.APIResponse "data: controllers.RegisterResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, incorrect_fee"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: event_does_not_exist"
// @Failure 409 {object} helpers.APIResponse "error.code: registration_closed, registration_ended, already_registered, event_full"
// @Router /events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	ticketID, err := c.Ledger.RegisterForEvent(r.Context(), caller, id, req.PaidAmount)
	if err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	uri := c.Metadata.URI(ticketID)
	if req.Email != "" && c.Email != nil {
		c.sendConfirmation(r.Context(), req.Email, id, ticketID, req.PaidAmount, uri)
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, RegisterResponse{TicketID: ticketID, TicketURI: uri})
}

// sendConfirmation dispatches the ticket confirmation email in the background.
// Email failures never affect the registration itself.
func (c *RegistrationController) sendConfirmation(ctx context.Context, to string, eventID, ticketID uint64, fee int64, uri string) {
	ev, err := c.Registry.GetEventDetails(ctx, eventID)
	if err != nil {
		c.Logger.ErrorContext(ctx, "lookup event for confirmation email failed", "event_id", eventID, "err", err)
		return
	}
	data := &domain.TicketConfirmationEmailData{
		Email:     to,
		EventName: ev.Name,
		TicketID:  ticketID,
		Fee:       fee,
		TicketURI: uri,
	}
	go func() {
		if err := c.Email.SendTicketConfirmation(context.Background(), data); err != nil {
			c.Logger.Error("ticket confirmation email failed", "event_id", eventID, "err", err)
		}
	}()
}

// CancelResponse is the success payload for DELETE /events/{eventID}/registrations.
type CancelResponse struct {
	RefundAmount int64 `json:"refund_amount"`
}

// Cancel godoc
// @Summary Cancel the caller's registration
// @Description Burns the caller's ticket and refunds the fee. Only possible before the deadline.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: controllers.CancelResponse"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: event_does_not_exist"
// @Failure 409 {object} helpers.APIResponse "error.code: not_registered, cannot_cancel_after_deadline"
// @Failure 502 {object} helpers.APIResponse "error.code: refund_failed"
// @Router /events/{eventID}/registrations [delete]
func (c *RegistrationController) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	caller, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	refund, err := c.Ledger.CancelRegistration(r.Context(), caller, id)
	if err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CancelResponse{RefundAmount: refund})
}

// ListParticipants godoc
// @Summary List an event's participants
// @Description Returns the participant identities. Cancellations use swap-remove, so order is not stable across cancellations. Empty for unknown events.
// @Tags registrations
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: []string"
// @Router /events/{eventID}/participants [get]
func (c *RegistrationController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Ledger.GetParticipants(r.Context(), id))
}

// IsRegisteredResponse is the success payload for GET /events/{eventID}/participants/{identity}.
type IsRegisteredResponse struct {
	Registered bool `json:"registered"`
}

// IsRegistered godoc
// @Summary Check whether an identity is registered for an event
// @Tags registrations
// @Produce json
// @Param eventID path int true "Event ID"
// @Param identity path string true "Participant identity"
// @Success 200 {object} helpers.APIResponse "data: controllers.IsRegisteredResponse"
// @Router /events/{eventID}/participants/{identity} [get]
func (c *RegistrationController) IsRegistered(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	identity := r.PathValue("identity")
	if identity == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing identity")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, IsRegisteredResponse{
		Registered: c.Ledger.IsRegistered(r.Context(), id, identity),
	})
}
