package queries

import (
	"context"

	"eventhub/internal/infra"
	"eventhub/internal/pkg/errs"
)

var (
	ErrEventNotFound = errs.New("event not found")
)

type EventReadStore interface {
	List(ctx context.Context) ([]*EventView, error)
	FindByID(ctx context.Context, id int64) (*EventView, error)
	AttendeesByEvent(ctx context.Context, eventID int64) ([]*AttendeeView, error)
}

type EventQueries interface {
	ListEvents(ctx context.Context) ([]*EventView, error)
	GetEvent(ctx context.Context, id int64) (*EventView, error)
	GetEventAttendees(ctx context.Context, eventID int64) ([]*AttendeeView, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
}

func NewEventQueries(readStore EventReadStore) EventQueries {
	return &eventQueriesImpl{readStore: readStore}
}

func (q *eventQueriesImpl) ListEvents(ctx context.Context) ([]*EventView, error) {
	return q.readStore.List(ctx)
}

func (q *eventQueriesImpl) GetEvent(ctx context.Context, id int64) (*EventView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *eventQueriesImpl) GetEventAttendees(ctx context.Context, eventID int64) ([]*AttendeeView, error) {
	// Roster for an unknown event is a 404, not an empty list.
	if _, err := q.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return q.readStore.AttendeesByEvent(ctx, eventID)
}
