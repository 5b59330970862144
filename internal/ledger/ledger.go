// Package ledger implements the event/registration/escrow state machine: it
// enforces who may do what and when, and keeps fees in, tickets out, and fees
// out balanced at all times.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"chainpass/internal/domain"
)

// Ledger holds the event catalogue, the registration/ticket tables, and the
// per-event escrow state behind a single mutex. Every write operation is one
// atomic transaction: validations first, then the state mutation, then at most
// one external value transfer as the last step. A failed transfer restores the
// pre-operation state before the error is returned.
type Ledger struct {
	mu sync.Mutex

	clock    domain.Clock
	transfer domain.ValueTransfer
	journal  domain.JournalRepository
	logger   *slog.Logger

	owner   string
	baseURI string

	counter      uint64
	events       map[uint64]*domain.Event
	registered   map[uint64]map[string]bool
	participants map[uint64][]string
}

// New constructs an empty ledger. owner is the global identity controlling
// ticket metadata; it is fixed for the lifetime of the ledger.
func New(owner, baseURI string, clock domain.Clock, transfer domain.ValueTransfer, journal domain.JournalRepository, logger *slog.Logger) *Ledger {
	return &Ledger{
		clock:        clock,
		transfer:     transfer,
		journal:      journal,
		logger:       logger,
		owner:        owner,
		baseURI:      baseURI,
		events:       make(map[uint64]*domain.Event),
		registered:   make(map[uint64]map[string]bool),
		participants: make(map[uint64][]string),
	}
}

// record assigns id and timestamp and appends to the journal. Journal failures
// are logged, not surfaced: the ledger state is the source of truth and has
// already committed by the time the record is written.
func (l *Ledger) record(ctx context.Context, rec *domain.Record) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = l.clock.Now()
	if err := l.journal.Append(ctx, rec); err != nil {
		l.logger.ErrorContext(ctx, "journal append failed",
			"type", rec.Type, "event_id", rec.EventID, "err", err)
	}
}

// CreateEvent implements domain.EventRegistry.
func (l *Ledger) CreateEvent(ctx context.Context, caller, name string, fee int64, maxParticipants int, deadline time.Time) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if maxParticipants <= 0 {
		return 0, domain.ErrInvalidMaxParticipants
	}
	if !deadline.After(l.clock.Now()) {
		return 0, domain.ErrDeadlineMustBeFuture
	}

	l.counter++
	id := l.counter
	l.events[id] = &domain.Event{
		ID:              id,
		Name:            name,
		Fee:             fee,
		MaxParticipants: maxParticipants,
		Deadline:        deadline,
		Organizer:       caller,
	}
	l.registered[id] = make(map[string]bool)

	l.record(ctx, &domain.Record{
		Type:            domain.RecordEventCreated,
		EventID:         id,
		Actor:           caller,
		Name:            &name,
		Amount:          &fee,
		MaxParticipants: &maxParticipants,
		Deadline:        &deadline,
	})
	return id, nil
}

// OpenRegistration implements domain.EventRegistry.
func (l *Ledger) OpenRegistration(ctx context.Context, caller string, eventID uint64) error {
	return l.toggleRegistration(ctx, caller, eventID, true)
}

// CloseRegistration implements domain.EventRegistry.
func (l *Ledger) CloseRegistration(ctx context.Context, caller string, eventID uint64) error {
	return l.toggleRegistration(ctx, caller, eventID, false)
}

// PauseRegistration is an alias of CloseRegistration, kept for interface
// parity with the public operation surface.
func (l *Ledger) PauseRegistration(ctx context.Context, caller string, eventID uint64) error {
	return l.CloseRegistration(ctx, caller, eventID)
}

// ReopenRegistration is an alias of OpenRegistration.
func (l *Ledger) ReopenRegistration(ctx context.Context, caller string, eventID uint64) error {
	return l.OpenRegistration(ctx, caller, eventID)
}

func (l *Ledger) toggleRegistration(ctx context.Context, caller string, eventID uint64, open bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev, ok := l.events[eventID]
	if !ok {
		return domain.ErrEventDoesNotExist
	}
	if ev.Organizer != caller {
		return domain.ErrOnlyOrganizer
	}
	if ev.IsOpen == open {
		if open {
			return domain.ErrRegistrationAlreadyOpen
		}
		return domain.ErrRegistrationAlreadyClosed
	}
	ev.IsOpen = open

	l.record(ctx, &domain.Record{
		Type:    domain.RecordRegistrationToggled,
		EventID: eventID,
		Actor:   caller,
		IsOpen:  &open,
	})
	return nil
}

// RegisterForEvent implements domain.RegistrationLedger. Preconditions are
// checked in a fixed order; the first failing one wins.
func (l *Ledger) RegisterForEvent(ctx context.Context, caller string, eventID uint64, paidAmount int64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev, ok := l.events[eventID]
	if !ok {
		return 0, domain.ErrEventDoesNotExist
	}
	if !ev.IsOpen {
		return 0, domain.ErrRegistrationClosed
	}
	if !l.clock.Now().Before(ev.Deadline) {
		return 0, domain.ErrRegistrationEnded
	}
	if l.registered[eventID][caller] {
		return 0, domain.ErrAlreadyRegistered
	}
	if paidAmount != ev.Fee {
		return 0, domain.ErrIncorrectFee
	}
	if ev.ParticipantCount >= ev.MaxParticipants {
		return 0, domain.ErrEventFull
	}

	l.registered[eventID][caller] = true
	l.participants[eventID] = append(l.participants[eventID], caller)
	ev.ParticipantCount++

	// One ticket type per event: the ticket id is the event id.
	ticketID := eventID
	l.record(ctx, &domain.Record{
		Type:     domain.RecordRegistered,
		EventID:  eventID,
		Actor:    caller,
		TicketID: &ticketID,
	})
	l.record(ctx, &domain.Record{
		Type:     domain.RecordTicketMinted,
		EventID:  eventID,
		Actor:    caller,
		TicketID: &ticketID,
	})
	return ticketID, nil
}

// CancelRegistration implements domain.RegistrationLedger. State is mutated
// before the refund transfer so a re-entering or failing transfer can never
// observe a still-registered caller; a failed transfer restores everything.
func (l *Ledger) CancelRegistration(ctx context.Context, caller string, eventID uint64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev, ok := l.events[eventID]
	if !ok {
		return 0, domain.ErrEventDoesNotExist
	}
	if !l.registered[eventID][caller] {
		return 0, domain.ErrNotRegistered
	}
	if !l.clock.Now().Before(ev.Deadline) {
		return 0, domain.ErrCannotCancelAfterDeadline
	}

	idx := -1
	for i, p := range l.participants[eventID] {
		if p == caller {
			idx = i
			break
		}
	}

	delete(l.registered[eventID], caller)
	l.removeParticipant(eventID, idx)
	ev.ParticipantCount--

	if err := l.transfer.Transfer(ctx, caller, ev.Fee); err != nil {
		// Roll back: re-register the caller. The participant list order may
		// differ from before the call, which GetParticipants does not promise
		// to preserve anyway.
		l.registered[eventID][caller] = true
		l.participants[eventID] = append(l.participants[eventID], caller)
		ev.ParticipantCount++
		return 0, fmt.Errorf("%w: %v", domain.ErrRefundFailed, err)
	}

	refund := ev.Fee
	l.record(ctx, &domain.Record{
		Type:    domain.RecordRegistrationCancelled,
		EventID: eventID,
		Actor:   caller,
		Amount:  &refund,
	})
	return refund, nil
}

// removeParticipant swap-removes index idx from the event's participant list.
func (l *Ledger) removeParticipant(eventID uint64, idx int) {
	list := l.participants[eventID]
	if idx < 0 || idx >= len(list) {
		return
	}
	last := len(list) - 1
	list[idx] = list[last]
	l.participants[eventID] = list[:last]
}

// WithdrawFunds implements domain.Escrow. The withdrawn flag is set before
// the transfer (checks-effects-interactions) and rolled back on failure.
func (l *Ledger) WithdrawFunds(ctx context.Context, caller string, eventID uint64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev, ok := l.events[eventID]
	if !ok {
		return 0, domain.ErrEventDoesNotExist
	}
	if ev.Organizer != caller {
		return 0, domain.ErrOnlyOrganizer
	}
	if l.clock.Now().Before(ev.Deadline) {
		return 0, domain.ErrEventNotEnded
	}
	if ev.FundsWithdrawn {
		return 0, domain.ErrFundsAlreadyWithdrawn
	}
	amount := ev.Fee * int64(ev.ParticipantCount)
	if amount <= 0 {
		return 0, domain.ErrNoFundsToWithdraw
	}

	ev.FundsWithdrawn = true
	if err := l.transfer.Transfer(ctx, ev.Organizer, amount); err != nil {
		ev.FundsWithdrawn = false
		return 0, fmt.Errorf("%w: %v", domain.ErrWithdrawalFailed, err)
	}

	l.record(ctx, &domain.Record{
		Type:    domain.RecordFundsWithdrawn,
		EventID: eventID,
		Actor:   ev.Organizer,
		Amount:  &amount,
	})
	return amount, nil
}

// GetEventDetails implements domain.EventRegistry.
func (l *Ledger) GetEventDetails(ctx context.Context, eventID uint64) (*domain.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev, ok := l.events[eventID]
	if !ok {
		return nil, domain.ErrEventDoesNotExist
	}
	cp := *ev
	return &cp, nil
}

// EventCounter implements domain.EventRegistry.
func (l *Ledger) EventCounter(ctx context.Context) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counter
}

// IsRegistered implements domain.RegistrationLedger. Unknown events read as
// not registered rather than erroring.
func (l *Ledger) IsRegistered(ctx context.Context, eventID uint64, identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registered[eventID][identity]
}

// GetParticipants implements domain.RegistrationLedger.
func (l *Ledger) GetParticipants(ctx context.Context, eventID uint64) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.participants[eventID]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// BalanceOf implements domain.RegistrationLedger. The ticket id is the event
// id, so the balance is 1 exactly when the identity is registered.
func (l *Ledger) BalanceOf(ctx context.Context, identity string, ticketID uint64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.registered[ticketID][identity] {
		return 1
	}
	return 0
}

// SetURI implements domain.TicketMetadata.
func (l *Ledger) SetURI(ctx context.Context, caller, baseURI string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return domain.ErrOnlyOwner
	}
	l.baseURI = baseURI
	return nil
}

// URI implements domain.TicketMetadata.
func (l *Ledger) URI(ticketID uint64) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.baseURI + strconv.FormatUint(ticketID, 10) + ".json"
}

// Owner implements domain.TicketMetadata.
func (l *Ledger) Owner() string {
	return l.owner
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() domain.Clock {
	return domain.ClockFunc(time.Now)
}
