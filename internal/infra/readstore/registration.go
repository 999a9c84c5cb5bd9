package readstore

import (
	"context"

	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/usecase/queries"
)

type RegistrationReadStore struct {
	db db.DBTX
}

func NewRegistrationReadStore(db db.DBTX) *RegistrationReadStore {
	return &RegistrationReadStore{db: db}
}

func (r *RegistrationReadStore) ByUser(ctx context.Context, userID int64) ([]*queries.RegistrationListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, q.code, e.id, e.name, e.date, e.location, a.checked_in, q.checked_in_at
		FROM attendees a
		JOIN events e ON e.id = a.event_id
		LEFT JOIN qr_codes q ON q.attendee_id = a.id
		WHERE a.user_id = $1
		ORDER BY e.date`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list registrations", err)
	}
	defer rows.Close()

	var result []*queries.RegistrationListItem
	for rows.Next() {
		var item queries.RegistrationListItem
		if err := rows.Scan(
			&item.AttendeeID, &item.Code, &item.EventID, &item.EventName,
			&item.EventDate, &item.EventLocation, &item.CheckedIn, &item.RedeemedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan registration row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate registration rows", err)
	}
	return result, nil
}

func (r *RegistrationReadStore) CodeByAttendeeID(ctx context.Context, attendeeID int64) (*queries.AttendeeCode, error) {
	var ac queries.AttendeeCode
	err := r.db.QueryRow(ctx, `
		SELECT q.code, a.user_id
		FROM qr_codes q
		JOIN attendees a ON a.id = q.attendee_id
		WHERE q.attendee_id = $1`, attendeeID).Scan(&ac.Code, &ac.UserID)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find code by attendee id", err)
	}
	return &ac, nil
}
