package writerepo

import (
	"context"
	"time"

	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/usecase/commands"
)

type CheckInRepository struct{}

func NewCheckInRepository() *CheckInRepository {
	return &CheckInRepository{}
}

// FindCodeForUpdate locks the code row for the rest of the transaction, so a
// concurrent scan of the same code blocks here until the first one commits.
func (r *CheckInRepository) FindCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*commands.CodeRow, error) {
	var row commands.CodeRow
	err := tx.QueryRow(ctx, `
		SELECT id, code, attendee_id, created_at, checked_in_at
		FROM qr_codes
		WHERE code = $1
		FOR UPDATE`, code).
		Scan(&row.ID, &row.Code, &row.AttendeeID, &row.CreatedAt, &row.RedeemedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock code row", err)
	}
	return &row, nil
}

func (r *CheckInRepository) FindRegistration(ctx context.Context, tx db.DBTX, id int64) (*commands.RegistrationRow, error) {
	var row commands.RegistrationRow
	err := tx.QueryRow(ctx, `
		SELECT id, event_id, email, checked_in
		FROM attendees
		WHERE id = $1`, id).
		Scan(&row.ID, &row.EventID, &row.Email, &row.CheckedIn)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("attendee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find attendee", err)
	}
	return &row, nil
}

func (r *CheckInRepository) MarkRegistrationAdmitted(ctx context.Context, tx db.DBTX, attendeeID int64, at time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE attendees
		SET checked_in = true, updated_at = $2
		WHERE id = $1`, attendeeID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark attendee admitted", err)
	}
	return nil
}

// MarkCodeRedeemed only touches a still-unredeemed row; the caller inspects
// the affected count to detect a code that was redeemed underneath it.
func (r *CheckInRepository) MarkCodeRedeemed(ctx context.Context, tx db.DBTX, codeID int64, at time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE qr_codes
		SET checked_in_at = $2
		WHERE id = $1 AND checked_in_at IS NULL`, codeID, at)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark code redeemed", err)
	}
	return tag.RowsAffected(), nil
}
