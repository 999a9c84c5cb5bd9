package commands

import (
	"context"
	"errors"

	"eventhub/internal/domain/attendee"
	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/pkg/errs"
	"eventhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrEventNotFound      = errs.New("event not found")
	ErrAlreadyRegistered  = errs.New("already registered for this event")
	ErrRegistrationFailed = errs.New("registration failed")
)

type RegistrationRepository interface {
	Create(ctx context.Context, tx db.DBTX, reg *attendee.Registration) (int64, error)
	CreateCode(ctx context.Context, tx db.DBTX, code *attendee.Code) (int64, error)
}

type RegisterResult struct {
	AttendeeID int64
	QR         string
}

type RegistrationCommands interface {
	Register(ctx context.Context, eventID, userID int64) (*RegisterResult, error)
}

type registrationCommandsImpl struct {
	repo          RegistrationRepository
	userReadStore queries.UserReadStore
	eventQueries  queries.EventQueries
	pool          *pgxpool.Pool
}

func NewRegistrationCommands(
	repo RegistrationRepository,
	userReadStore queries.UserReadStore,
	eventQueries queries.EventQueries,
	pool *pgxpool.Pool,
) RegistrationCommands {
	return &registrationCommandsImpl{
		repo:          repo,
		userReadStore: userReadStore,
		eventQueries:  eventQueries,
		pool:          pool,
	}
}

// Register creates the attendee row (snapshotting the user's contact fields)
// and issues its single-use code, both in one transaction so a registration
// can never exist without a code.
func (r *registrationCommandsImpl) Register(ctx context.Context, eventID, userID int64) (*RegisterResult, error) {
	userView, err := r.userReadStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	if _, err := r.eventQueries.GetEvent(ctx, eventID); err != nil {
		if errors.Is(err, queries.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	registration, err := attendee.NewRegistration(userID, eventID, attendee.Snapshot{
		Email:               userView.Email,
		PhoneNumber:         userView.PhoneNumber,
		DietaryRestrictions: userView.DietaryRestrictions,
		Program:             userView.Program,
		Year:                userView.Year,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	return db.RunInTx(ctx, r.pool, func(tx db.DBTX) (*RegisterResult, error) {
		attendeeID, err := r.repo.Create(ctx, tx, registration)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrAlreadyRegistered
			}
			return nil, errs.Mark(err, ErrRegistrationFailed)
		}

		code, err := attendee.NewCode(attendeeID)
		if err != nil {
			return nil, errs.Mark(err, ErrRegistrationFailed)
		}

		if _, err := r.repo.CreateCode(ctx, tx, code); err != nil {
			return nil, errs.Mark(err, ErrRegistrationFailed)
		}

		return &RegisterResult{
			AttendeeID: attendeeID,
			QR:         code.Value(),
		}, nil
	})
}
