package commands

import (
	"context"
	"time"

	"eventhub/internal/domain/event"
	"eventhub/internal/infra/db"
	"eventhub/internal/pkg/errs"
	"eventhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEventValidation   = errs.New("event validation failed")
	ErrEventCreateFailed = errs.New("failed to create event")
)

type EventRepository interface {
	Create(ctx context.Context, tx db.DBTX, ev *event.Event) (int64, error)
}

type CreateEventParams struct {
	Name     string
	Date     time.Time
	Location *string
}

type EventCommands interface {
	CreateEvent(ctx context.Context, params CreateEventParams) (*queries.EventView, error)
}

type eventCommandsImpl struct {
	repo         EventRepository
	eventQueries queries.EventQueries
	pool         *pgxpool.Pool
}

func NewEventCommands(repo EventRepository, eventQueries queries.EventQueries, pool *pgxpool.Pool) EventCommands {
	return &eventCommandsImpl{
		repo:         repo,
		eventQueries: eventQueries,
		pool:         pool,
	}
}

func (e *eventCommandsImpl) CreateEvent(ctx context.Context, params CreateEventParams) (*queries.EventView, error) {
	entity, err := event.NewEvent(params.Name, params.Date, params.Location)
	if err != nil {
		return nil, errs.Mark(err, ErrEventValidation)
	}

	id, err := db.RunInTx(ctx, e.pool, func(tx db.DBTX) (int64, error) {
		return e.repo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrEventCreateFailed)
	}

	// Read-after-write so the response carries store-assigned timestamps.
	view, err := e.eventQueries.GetEvent(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrEventCreateFailed)
	}
	return view, nil
}
