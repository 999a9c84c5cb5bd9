package writerepo

import (
	"context"

	"eventhub/internal/domain/attendee"
	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
)

type RegistrationRepository struct{}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{}
}

func (r *RegistrationRepository) Create(ctx context.Context, tx db.DBTX, reg *attendee.Registration) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO attendees (user_id, event_id, email, phone_number, dietary_restrictions, program, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		reg.UserID(), reg.EventID(), reg.Email(), reg.PhoneNumber(),
		reg.DietaryRestrictions(), reg.Program(), reg.Year(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create registration", err, infra.ClassifyPgError(err))
	}
	return id, nil
}

func (r *RegistrationRepository) CreateCode(ctx context.Context, tx db.DBTX, code *attendee.Code) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO qr_codes (code, attendee_id)
		VALUES ($1, $2)
		RETURNING id`,
		code.Value(), code.AttendeeID(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create code", err, infra.ClassifyPgError(err))
	}
	return id, nil
}
