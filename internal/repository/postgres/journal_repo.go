package postgres

import (
	"context"
	"database/sql"

	"chainpass/internal/domain"
)

type journalRepository struct {
	DB *sql.DB
}

// NewJournalRepository returns a JournalRepository backed by the
// ledger_records table.
func NewJournalRepository(db *sql.DB) domain.JournalRepository {
	return &journalRepository{
		DB: db,
	}
}

func (r *journalRepository) Append(ctx context.Context, rec *domain.Record) error {
	query := `
		INSERT INTO ledger_records (id, record_type, event_id, actor, name, amount, max_participants, deadline, ticket_id, is_open, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	var name sql.NullString
	if rec.Name != nil {
		name = sql.NullString{String: *rec.Name, Valid: true}
	}
	var amount sql.NullInt64
	if rec.Amount != nil {
		amount = sql.NullInt64{Int64: *rec.Amount, Valid: true}
	}
	var maxParticipants sql.NullInt64
	if rec.MaxParticipants != nil {
		maxParticipants = sql.NullInt64{Int64: int64(*rec.MaxParticipants), Valid: true}
	}
	var deadline sql.NullTime
	if rec.Deadline != nil {
		deadline = sql.NullTime{Time: *rec.Deadline, Valid: true}
	}
	var ticketID sql.NullInt64
	if rec.TicketID != nil {
		ticketID = sql.NullInt64{Int64: int64(*rec.TicketID), Valid: true}
	}
	var isOpen sql.NullBool
	if rec.IsOpen != nil {
		isOpen = sql.NullBool{Bool: *rec.IsOpen, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		rec.ID, string(rec.Type), int64(rec.EventID), rec.Actor,
		name, amount, maxParticipants, deadline, ticketID, isOpen, rec.CreatedAt,
	)
	return err
}

func (r *journalRepository) ListByEventID(ctx context.Context, eventID uint64) ([]*domain.Record, error) {
	query := `
		SELECT id, record_type, event_id, actor, name, amount, max_participants, deadline, ticket_id, is_open, created_at
		FROM ledger_records
		WHERE event_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, int64(eventID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.Record, 0)
	for rows.Next() {
		rec := &domain.Record{}
		var recType string
		var evID int64
		var nameNull sql.NullString
		var amountNull, maxNull, ticketNull sql.NullInt64
		var deadlineNull sql.NullTime
		var isOpenNull sql.NullBool
		if err := rows.Scan(
			&rec.ID, &recType, &evID, &rec.Actor,
			&nameNull, &amountNull, &maxNull, &deadlineNull, &ticketNull, &isOpenNull,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Type = domain.RecordType(recType)
		rec.EventID = uint64(evID)
		if nameNull.Valid {
			rec.Name = &nameNull.String
		}
		if amountNull.Valid {
			rec.Amount = &amountNull.Int64
		}
		if maxNull.Valid {
			max := int(maxNull.Int64)
			rec.MaxParticipants = &max
		}
		if deadlineNull.Valid {
			rec.Deadline = &deadlineNull.Time
		}
		if ticketNull.Valid {
			ticket := uint64(ticketNull.Int64)
			rec.TicketID = &ticket
		}
		if isOpenNull.Valid {
			rec.IsOpen = &isOpenNull.Bool
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
