package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"chainpass/internal/delivery/http/helpers"
	"chainpass/internal/delivery/http/middleware"
	"chainpass/internal/domain"
)

type TicketController struct {
	Logger   *slog.Logger
	Metadata domain.TicketMetadata
	Ledger   domain.RegistrationLedger
}

func NewTicketController(logger *slog.Logger, metadata domain.TicketMetadata, ledger domain.RegistrationLedger) *TicketController {
	return &TicketController{
		Logger:   logger,
		Metadata: metadata,
		Ledger:   ledger,
	}
}

func parseTicketID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.PathValue("ticketID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid ticketID")
		return 0, false
	}
	return id, true
}

// URIResponse is the success payload for GET /tickets/{ticketID}/uri.
type URIResponse struct {
	URI string `json:"uri"`
}

// URI godoc
// @Summary Get the metadata URI for a ticket
// @Description Returns baseURI + ticketID + ".json". Deterministic; defined for any id.
// @Tags tickets
// @Produce json
// @Param ticketID path int true "Ticket ID"
// @Success 200 {object} helpers.APIResponse "data: controllers.URIResponse"
// @Router /tickets/{ticketID}/uri [get]
func (c *TicketController) URI(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTicketID(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, URIResponse{URI: c.Metadata.URI(id)})
}

// BalanceResponse is the success payload for GET /tickets/{ticketID}/balances/{identity}.
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// Balance godoc
// @Summary Get an identity's balance for a ticket
// @Description Returns 1 if the identity holds the ticket, 0 otherwise (including unknown tickets).
// @Tags tickets
// @Produce json
// @Param ticketID path int true "Ticket ID"
// @Param identity path string true "Holder identity"
// @Success 200 {object} helpers.APIResponse "data: controllers.BalanceResponse"
// @Router /tickets/{ticketID}/balances/{identity} [get]
func (c *TicketController) Balance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTicketID(w, r)
	if !ok {
		return
	}
	identity := r.PathValue("identity")
	if identity == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing identity")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BalanceResponse{
		Balance: c.Ledger.BalanceOf(r.Context(), identity, id),
	})
}

// OwnerResponse is the success payload for GET /owner.
type OwnerResponse struct {
	Owner string `json:"owner"`
}

// Owner godoc
// @Summary Get the platform owner identity
// @Tags tickets
// @Produce json
// @Success 200 {object} helpers.APIResponse "data: controllers.OwnerResponse"
// @Router /owner [get]
func (c *TicketController) Owner(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, OwnerResponse{Owner: c.Metadata.Owner()})
}

// SetURIRequest is the request body for PUT /tickets/uri.
type SetURIRequest struct {
	BaseURI string `json:"base_uri"`
}

// Validate implements helpers.Validator.
func (r *SetURIRequest) Validate() []string {
	r.BaseURI = strings.TrimSpace(r.BaseURI)
	if r.BaseURI == "" {
		return []string{"base_uri is required"}
	}
	return nil
}

// SetURI godoc
// @Summary Replace the ticket metadata base URI
// @Description Owner-only. The owner role is global and independent of any event's organizer.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.SetURIRequest true "New base URI"
// @Success 200 {object} helpers.APIResponse "data: controllers.URIResponse"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: only_owner"
// @Router /tickets/uri [put]
func (c *TicketController) SetURI(w http.ResponseWriter, r *http.Request) {
	var req SetURIRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Metadata.SetURI(r.Context(), caller, req.BaseURI); err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, URIResponse{URI: req.BaseURI})
}
