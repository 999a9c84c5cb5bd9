package writerepo

import (
	"context"

	"eventhub/internal/domain/event"
	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, tx db.DBTX, ev *event.Event) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO events (name, date, location)
		VALUES ($1, $2, $3)
		RETURNING id`,
		ev.Name(), ev.Date(), ev.Location(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create event", err, infra.ClassifyPgError(err))
	}
	return id, nil
}
