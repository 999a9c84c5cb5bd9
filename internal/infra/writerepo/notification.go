package writerepo

import (
	"context"
	"encoding/json"

	"eventhub/internal/domain/notification"
	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/usecase/queries"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) (*queries.NotificationView, error) {
	recipients := n.Recipients()
	if recipients == nil {
		recipients = []string{}
	}
	encoded, err := json.Marshal(recipients)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode recipients", err)
	}

	var view queries.NotificationView
	err = tx.QueryRow(ctx, `
		INSERT INTO notifications (event_id, message, recipients)
		VALUES ($1, $2, $3::jsonb)
		RETURNING id, event_id, message, created_at`,
		n.EventID(), n.Message(), string(encoded),
	).Scan(&view.ID, &view.EventID, &view.Message, &view.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create notification", err, infra.ClassifyPgError(err))
	}
	view.Recipients = recipients
	return &view, nil
}
