package queries

import (
	"context"

	"eventhub/internal/infra"
	"eventhub/internal/pkg/errs"
)

var (
	ErrRegistrationNotFound = errs.New("registration not found")
)

type UserRegistrationsView struct {
	User   *UserSummary            `json:"user"`
	Events []*RegistrationListItem `json:"events"`
}

// AttendeeCode pairs a code string with the user who owns the registration,
// so callers can check ownership before handing the code out.
type AttendeeCode struct {
	Code   string
	UserID int64
}

type RegistrationReadStore interface {
	ByUser(ctx context.Context, userID int64) ([]*RegistrationListItem, error)
	CodeByAttendeeID(ctx context.Context, attendeeID int64) (*AttendeeCode, error)
}

type RegistrationQueries interface {
	GetUserRegistrations(ctx context.Context, userID int64) (*UserRegistrationsView, error)
	GetAttendeeCode(ctx context.Context, attendeeID int64) (*AttendeeCode, error)
}

type registrationQueriesImpl struct {
	readStore     RegistrationReadStore
	userReadStore UserReadStore
}

func NewRegistrationQueries(readStore RegistrationReadStore, userReadStore UserReadStore) RegistrationQueries {
	return &registrationQueriesImpl{
		readStore:     readStore,
		userReadStore: userReadStore,
	}
}

func (q *registrationQueriesImpl) GetUserRegistrations(ctx context.Context, userID int64) (*UserRegistrationsView, error) {
	userView, err := q.userReadStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	items, err := q.readStore.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserRegistrationsView{
		User: &UserSummary{
			ID:        userView.ID,
			FirstName: userView.FirstName,
			LastName:  userView.LastName,
			Email:     userView.Email,
		},
		Events: items,
	}, nil
}

func (q *registrationQueriesImpl) GetAttendeeCode(ctx context.Context, attendeeID int64) (*AttendeeCode, error) {
	code, err := q.readStore.CodeByAttendeeID(ctx, attendeeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return code, nil
}
