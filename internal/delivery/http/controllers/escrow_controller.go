package controllers

import (
	"log/slog"
	"net/http"

	"chainpass/internal/delivery/http/helpers"
	"chainpass/internal/delivery/http/middleware"
	"chainpass/internal/domain"
)

type EscrowController struct {
	Logger *slog.Logger
	Escrow domain.Escrow
}

func NewEscrowController(logger *slog.Logger, escrow domain.Escrow) *EscrowController {
	return &EscrowController{
		Logger: logger,
		Escrow: escrow,
	}
}

// WithdrawResponse is the success payload for POST /events/{eventID}/withdrawal.
type WithdrawResponse struct {
	Amount int64 `json:"amount"`
}

// Withdraw godoc
// @Summary Withdraw an event's collected fees
// @Description Transfers fee * participantCount to the organizer. Only the organizer, only after the deadline, only once.
// @Tags escrow
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data: controllers.WithdrawResponse"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: only_organizer"
// @Failure 404 {object} helpers.APIResponse "error.code: event_does_not_exist"
// @Failure 409 {object} helpers.APIResponse "error.code: event_not_ended, funds_already_withdrawn, no_funds_to_withdraw"
// @Failure 502 {object} helpers.APIResponse "error.code: withdrawal_failed"
// @Router /events/{eventID}/withdrawal [post]
func (c *EscrowController) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	caller, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	amount, err := c.Escrow.WithdrawFunds(r.Context(), caller, id)
	if err != nil {
		writeLedgerError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, WithdrawResponse{Amount: amount})
}
