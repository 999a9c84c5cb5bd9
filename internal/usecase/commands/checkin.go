package commands

import (
	"context"
	"errors"
	"time"

	"eventhub/internal/domain/attendee"
	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/pkg/clock"
	"eventhub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidCheckIn      = errs.New("code and event id are required")
	ErrCodeNotFound        = errs.New("code not recognized")
	ErrCodeAlreadyRedeemed = errs.New("code already redeemed")
	ErrEventMismatch       = errs.New("code does not belong to this event")
	ErrAttendeeNotFound    = errs.New("registration missing for code")
	ErrCheckInFailed       = errs.New("check-in transaction failed")
)

// CodeRow is the locked qr_codes row as read inside the transaction.
type CodeRow struct {
	ID         int64
	Code       string
	AttendeeID int64
	CreatedAt  time.Time
	RedeemedAt *time.Time
}

// RegistrationRow is the minimal attendee state the transaction needs.
type RegistrationRow struct {
	ID        int64
	EventID   int64
	Email     string
	CheckedIn bool
}

type CheckInRepository interface {
	// FindCodeForUpdate must acquire a row lock (SELECT ... FOR UPDATE) so
	// concurrent redemptions of the same code serialize at the read.
	FindCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*CodeRow, error)
	FindRegistration(ctx context.Context, tx db.DBTX, id int64) (*RegistrationRow, error)
	MarkRegistrationAdmitted(ctx context.Context, tx db.DBTX, attendeeID int64, at time.Time) error
	// MarkCodeRedeemed is conditional on redeemed_at still being NULL and
	// reports how many rows it touched.
	MarkCodeRedeemed(ctx context.Context, tx db.DBTX, codeID int64, at time.Time) (int64, error)
}

type CheckInResult struct {
	AttendeeID int64
	Email      string
	CheckedIn  bool
}

type CheckInCommands interface {
	CheckIn(ctx context.Context, code string, eventID int64) (*CheckInResult, error)
}

type checkInCommandsImpl struct {
	repo  CheckInRepository
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewCheckInCommands(repo CheckInRepository, pool *pgxpool.Pool, clock clock.Clock) CheckInCommands {
	return &checkInCommandsImpl{
		repo:  repo,
		pool:  pool,
		clock: clock,
	}
}

// CheckIn atomically redeems a single-use code against an event: the attendee
// admission flag and the code's redemption timestamp flip together in one
// transaction, or not at all. Replays, wrong-event scans and unknown codes
// come back as distinct errors with no mutation.
func (c *checkInCommandsImpl) CheckIn(ctx context.Context, code string, eventID int64) (*CheckInResult, error) {
	if code == "" || eventID <= 0 {
		return nil, ErrInvalidCheckIn
	}

	result, err := db.RunInTx(ctx, c.pool, func(tx db.DBTX) (*CheckInResult, error) {
		return c.redeem(ctx, tx, code, eventID)
	})
	if err != nil {
		if isTerminalCheckInError(err) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrCheckInFailed)
	}

	return result, nil
}

// Terminal outcomes are business answers, not infrastructure failures; they
// must reach the caller unwrapped and must never be retried.
func isTerminalCheckInError(err error) bool {
	for _, sentinel := range []error{
		ErrCodeNotFound,
		ErrCodeAlreadyRedeemed,
		ErrEventMismatch,
		ErrAttendeeNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func (c *checkInCommandsImpl) redeem(ctx context.Context, tx db.DBTX, code string, eventID int64) (*CheckInResult, error) {
	row, err := c.repo.FindCodeForUpdate(ctx, tx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}

	codeEntity, err := attendee.Rehydrate(row.ID, row.Code, row.AttendeeID, row.CreatedAt, row.RedeemedAt)
	if err != nil {
		return nil, err
	}
	if codeEntity.IsRedeemed() {
		return nil, ErrCodeAlreadyRedeemed
	}

	registration, err := c.repo.FindRegistration(ctx, tx, codeEntity.AttendeeID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Dangling code row: data-integrity fault, still no mutation.
			return nil, ErrAttendeeNotFound
		}
		return nil, err
	}

	if registration.EventID != eventID {
		return nil, ErrEventMismatch
	}

	now := c.clock.Now()
	if err := codeEntity.Redeem(now); err != nil {
		return nil, ErrCodeAlreadyRedeemed
	}

	if err := c.repo.MarkRegistrationAdmitted(ctx, tx, registration.ID, now); err != nil {
		return nil, err
	}

	affected, err := c.repo.MarkCodeRedeemed(ctx, tx, codeEntity.ID(), now)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Row lock should make this unreachable; the conditional update is the
		// second line of defense against a lost-update race.
		return nil, ErrCodeAlreadyRedeemed
	}

	return &CheckInResult{
		AttendeeID: registration.ID,
		Email:      registration.Email,
		CheckedIn:  true,
	}, nil
}
