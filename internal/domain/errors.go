package domain

import "errors"

// Sentinel errors for ledger operations. Every operation fails with exactly
// one of these (or a wrapped internal error) so callers can render a precise
// reason; they are never collapsed into a generic failure.

// Validation errors: the caller's input is malformed.
var (
	ErrInvalidMaxParticipants = errors.New("max participants must be greater than zero")
	ErrDeadlineMustBeFuture   = errors.New("deadline must be in the future")
	ErrIncorrectFee           = errors.New("paid amount does not match the event fee")
)

// Authorization errors: wrong caller role.
var (
	ErrOnlyOrganizer = errors.New("only the event organizer may perform this operation")
	ErrOnlyOwner     = errors.New("only the owner may perform this operation")
)

// State-conflict errors: the operation is not valid in the event's current
// lifecycle state.
var (
	ErrEventDoesNotExist         = errors.New("event does not exist")
	ErrRegistrationAlreadyOpen   = errors.New("registration is already open")
	ErrRegistrationAlreadyClosed = errors.New("registration is already closed")
	ErrRegistrationClosed        = errors.New("registration is closed")
	ErrRegistrationEnded         = errors.New("registration deadline has passed")
	ErrEventFull                 = errors.New("event is full")
	ErrAlreadyRegistered         = errors.New("already registered for this event")
	ErrNotRegistered             = errors.New("not registered for this event")
	ErrCannotCancelAfterDeadline = errors.New("cannot cancel after the deadline")
	ErrEventNotEnded             = errors.New("event has not ended yet")
	ErrFundsAlreadyWithdrawn     = errors.New("funds already withdrawn")
	ErrNoFundsToWithdraw         = errors.New("no funds to withdraw")
)

// External-call failures: the value transfer reported an error. The operation
// is rolled back atomically before one of these is returned.
var (
	ErrRefundFailed     = errors.New("refund transfer failed")
	ErrWithdrawalFailed = errors.New("withdrawal transfer failed")
)
