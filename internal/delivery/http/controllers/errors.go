package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"chainpass/internal/delivery/http/helpers"
	"chainpass/internal/domain"
)

// ledgerErrorMapping maps every ledger sentinel error to an HTTP status and a
// stable error code, so clients can render a precise reason. Checked in order.
var ledgerErrorMapping = []struct {
	err    error
	status int
	code   string
}{
	// Validation
	{domain.ErrInvalidMaxParticipants, http.StatusBadRequest, "invalid_max_participants"},
	{domain.ErrDeadlineMustBeFuture, http.StatusBadRequest, "deadline_must_be_future"},
	{domain.ErrIncorrectFee, http.StatusBadRequest, "incorrect_fee"},
	// Authorization
	{domain.ErrOnlyOrganizer, http.StatusForbidden, "only_organizer"},
	{domain.ErrOnlyOwner, http.StatusForbidden, "only_owner"},
	// State conflicts
	{domain.ErrEventDoesNotExist, http.StatusNotFound, "event_does_not_exist"},
	{domain.ErrRegistrationAlreadyOpen, http.StatusConflict, "registration_already_open"},
	{domain.ErrRegistrationAlreadyClosed, http.StatusConflict, "registration_already_closed"},
	{domain.ErrRegistrationClosed, http.StatusConflict, "registration_closed"},
	{domain.ErrRegistrationEnded, http.StatusConflict, "registration_ended"},
	{domain.ErrEventFull, http.StatusConflict, "event_full"},
	{domain.ErrAlreadyRegistered, http.StatusConflict, "already_registered"},
	{domain.ErrNotRegistered, http.StatusConflict, "not_registered"},
	{domain.ErrCannotCancelAfterDeadline, http.StatusConflict, "cannot_cancel_after_deadline"},
	{domain.ErrEventNotEnded, http.StatusConflict, "event_not_ended"},
	{domain.ErrFundsAlreadyWithdrawn, http.StatusConflict, "funds_already_withdrawn"},
	{domain.ErrNoFundsToWithdraw, http.StatusConflict, "no_funds_to_withdraw"},
	// External-call failures
	{domain.ErrRefundFailed, http.StatusBadGateway, "refund_failed"},
	{domain.ErrWithdrawalFailed, http.StatusBadGateway, "withdrawal_failed"},
}

// writeLedgerError translates a ledger error into the API envelope. Unmapped
// errors are internal and get logged.
func writeLedgerError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, m := range ledgerErrorMapping {
		if errors.Is(err, m.err) {
			helpers.WriteJSONError(w, m.status, m.code, err.Error())
			return
		}
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
