package commands

import (
	"context"
	"time"

	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/pkg/errs"
	"eventhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProfileUpdateFailed = errs.New("failed to update profile")
)

// ProfilePatch carries only the fields present in the request; nil means
// "leave unchanged". Attendee snapshot columns are never touched by this.
type ProfilePatch struct {
	FirstName           *string
	LastName            *string
	PreferredName       *string
	Pronouns            *string
	Email               *string
	PhoneNumber         *string
	Program             *string
	Year                *string
	StudentNumber       *string
	DietaryRestrictions *string
	EmergencyContact    *string
	MediaConsent        *bool
	DOB                 *time.Time
}

func (p ProfilePatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.PreferredName == nil &&
		p.Pronouns == nil && p.Email == nil && p.PhoneNumber == nil &&
		p.Program == nil && p.Year == nil && p.StudentNumber == nil &&
		p.DietaryRestrictions == nil && p.EmergencyContact == nil &&
		p.MediaConsent == nil && p.DOB == nil
}

type UserRepository interface {
	UpdateProfile(ctx context.Context, tx db.DBTX, userID int64, patch ProfilePatch) error
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) (*queries.UserView, error)
}

type userCommandsImpl struct {
	repo        UserRepository
	userQueries queries.UserQueries
	pool        *pgxpool.Pool
}

func NewUserCommands(repo UserRepository, userQueries queries.UserQueries, pool *pgxpool.Pool) UserCommands {
	return &userCommandsImpl{
		repo:        repo,
		userQueries: userQueries,
		pool:        pool,
	}
}

func (u *userCommandsImpl) UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) (*queries.UserView, error) {
	if !patch.IsEmpty() {
		_, err := db.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
			return struct{}{}, u.repo.UpdateProfile(ctx, tx, userID, patch)
		})
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, errs.Mark(err, ErrProfileUpdateFailed)
		}
	}

	return u.userQueries.GetUser(ctx, userID)
}
