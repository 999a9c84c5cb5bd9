package queries

import (
	"context"

	"eventhub/internal/infra"
	"eventhub/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
)

type UserReadStore interface {
	List(ctx context.Context) ([]*UserView, error)
	FindByID(ctx context.Context, id int64) (*UserView, error)
	// FindByEmail also returns the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type UserQueries interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	GetUser(ctx context.Context, id int64) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx)
}

func (q *userQueriesImpl) GetUser(ctx context.Context, id int64) (*UserView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
