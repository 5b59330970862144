package domain

import (
	"context"
	"time"
)

// Event is an organizer-created registration campaign with a fixed fee, a
// capacity, and a deadline. Events are identified by a monotonically
// increasing id starting at 1; 0 is never a valid id.
// swagger:model Event
type Event struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	Fee              int64     `json:"fee"`
	MaxParticipants  int       `json:"max_participants"`
	Deadline         time.Time `json:"deadline"`
	Organizer        string    `json:"organizer"`
	IsOpen           bool      `json:"is_open"`
	ParticipantCount int       `json:"participant_count"`
	FundsWithdrawn   bool      `json:"funds_withdrawn"`
}

// EscrowBalance is the pooled fee amount currently owed to the organizer.
// It is derived state: fee * participantCount until withdrawal, 0 after.
func (e *Event) EscrowBalance() int64 {
	if e.FundsWithdrawn {
		return 0
	}
	return e.Fee * int64(e.ParticipantCount)
}

// EventRegistry owns the catalogue of events, their configuration, and their
// lifecycle flags. Write operations are serialized and atomic: either every
// effect of an operation is visible or none is.
type EventRegistry interface {
	// CreateEvent stores a new event with the caller as organizer and
	// registration closed, and returns its id. Ids are monotonic and gapless.
	CreateEvent(ctx context.Context, caller, name string, fee int64, maxParticipants int, deadline time.Time) (uint64, error)
	// OpenRegistration opens registration for the event. Organizer-only.
	OpenRegistration(ctx context.Context, caller string, eventID uint64) error
	// CloseRegistration closes registration for the event. Organizer-only.
	CloseRegistration(ctx context.Context, caller string, eventID uint64) error
	// PauseRegistration is an alias of CloseRegistration.
	PauseRegistration(ctx context.Context, caller string, eventID uint64) error
	// ReopenRegistration is an alias of OpenRegistration.
	ReopenRegistration(ctx context.Context, caller string, eventID uint64) error
	// GetEventDetails returns a copy of the event record.
	GetEventDetails(ctx context.Context, eventID uint64) (*Event, error)
	// EventCounter returns the id of the most recently created event, which
	// equals the total number of events ever created.
	EventCounter(ctx context.Context) uint64
}

// RegistrationLedger owns per-(event, participant) registration state and the
// ticket balance table. One ticket exists per registered pair; the ticket id
// equals the event id.
type RegistrationLedger interface {
	// RegisterForEvent registers the caller, mints their ticket, and returns
	// the ticket id. paidAmount must equal the event fee exactly.
	RegisterForEvent(ctx context.Context, caller string, eventID uint64, paidAmount int64) (uint64, error)
	// CancelRegistration burns the caller's ticket and refunds the fee. The
	// state mutation happens before the refund transfer; a failed transfer
	// rolls the whole operation back.
	CancelRegistration(ctx context.Context, caller string, eventID uint64) (refund int64, err error)
	// IsRegistered reports whether identity holds a registration for the
	// event. False for unknown events.
	IsRegistered(ctx context.Context, eventID uint64, identity string) bool
	// GetParticipants returns the event's participants. Cancellation uses
	// swap-remove, so order is not preserved across cancellations. Empty for
	// unknown events.
	GetParticipants(ctx context.Context, eventID uint64) []string
	// BalanceOf returns 1 if identity holds the ticket, 0 otherwise.
	BalanceOf(ctx context.Context, identity string, ticketID uint64) int
}

// Escrow releases an event's pooled fees to its organizer.
type Escrow interface {
	// WithdrawFunds transfers fee * participantCount to the organizer after
	// the deadline. The withdrawn flag is set before the transfer and rolled
	// back if the transfer fails. A second call fails with
	// ErrFundsAlreadyWithdrawn.
	WithdrawFunds(ctx context.Context, caller string, eventID uint64) (amount int64, err error)
}

// TicketMetadata controls the metadata URI for tickets. Owner-only writes.
type TicketMetadata interface {
	// SetURI replaces the base URI. Owner-only.
	SetURI(ctx context.Context, caller, baseURI string) error
	// URI returns baseURI + ticketID + ".json".
	URI(ticketID uint64) string
	// Owner returns the identity that controls ticket metadata.
	Owner() string
}
