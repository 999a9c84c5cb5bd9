package readstore

import (
	"context"

	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/usecase/queries"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(db db.DBTX) *EventReadStore {
	return &EventReadStore{db: db}
}

const eventColumns = `id, name, date, location, created_at, updated_at`

func (r *EventReadStore) List(ctx context.Context) ([]*queries.EventView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY date`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	var result []*queries.EventView
	for rows.Next() {
		view, err := scanEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}
	return result, nil
}

func (r *EventReadStore) FindByID(ctx context.Context, id int64) (*queries.EventView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)

	view, err := scanEvent(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by id", err)
	}
	return view, nil
}

func (r *EventReadStore) AttendeesByEvent(ctx context.Context, eventID int64) ([]*queries.AttendeeView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, event_id, email, phone_number, dietary_restrictions,
		       program, year, waiver_signed, checked_in, created_at, updated_at
		FROM attendees
		WHERE event_id = $1
		ORDER BY created_at DESC`, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list attendees", err)
	}
	defer rows.Close()

	var result []*queries.AttendeeView
	for rows.Next() {
		var v queries.AttendeeView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.EventID, &v.Email, &v.PhoneNumber,
			&v.DietaryRestrictions, &v.Program, &v.Year, &v.WaiverSigned,
			&v.CheckedIn, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan attendee row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate attendee rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*queries.EventView, error) {
	var v queries.EventView
	if err := row.Scan(&v.ID, &v.Name, &v.Date, &v.Location, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
