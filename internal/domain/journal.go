package domain

import (
	"context"
	"time"
)

// RecordType identifies the kind of a journal record.
type RecordType string

// Record types emitted by the ledger, one per successful write operation
// (registration emits two: the registration itself and the ticket mint).
const (
	RecordEventCreated          RecordType = "event_created"
	RecordRegistrationToggled   RecordType = "registration_toggled"
	RecordRegistered            RecordType = "registered"
	RecordTicketMinted          RecordType = "ticket_minted"
	RecordRegistrationCancelled RecordType = "registration_cancelled"
	RecordFundsWithdrawn        RecordType = "funds_withdrawn"
)

// Record is one entry in the append-only audit journal. Optional fields are
// nil when they do not apply to the record type.
// swagger:model Record
type Record struct {
	ID              string     `json:"id"`
	Type            RecordType `json:"type"`
	EventID         uint64     `json:"event_id"`
	Actor           string     `json:"actor"`
	Name            *string    `json:"name,omitempty"`
	Amount          *int64     `json:"amount,omitempty"`
	MaxParticipants *int       `json:"max_participants,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	TicketID        *uint64    `json:"ticket_id,omitempty"`
	IsOpen          *bool      `json:"is_open,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// JournalRepository defines storage for the audit journal.
type JournalRepository interface {
	Append(ctx context.Context, rec *Record) error
	ListByEventID(ctx context.Context, eventID uint64) ([]*Record, error)
}
