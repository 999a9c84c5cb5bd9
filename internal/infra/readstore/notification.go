package readstore

import (
	"context"
	"encoding/json"

	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/usecase/queries"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

func (r *NotificationReadStore) List(ctx context.Context) ([]*queries.NotificationView, error) {
	return r.query(ctx, `
		SELECT id, event_id, message, recipients, created_at
		FROM notifications
		ORDER BY created_at DESC`)
}

// Inbox returns the notifications addressed to one recipient. Recipients are
// stored as a jsonb array, so membership is checked with the containment
// operator.
func (r *NotificationReadStore) Inbox(ctx context.Context, email string) ([]*queries.NotificationView, error) {
	addr, err := json.Marshal(email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode recipient", err)
	}
	return r.query(ctx, `
		SELECT id, event_id, message, recipients, created_at
		FROM notifications
		WHERE recipients @> $1::jsonb
		ORDER BY created_at DESC`, string(addr))
}

func (r *NotificationReadStore) query(ctx context.Context, sql string, args ...any) ([]*queries.NotificationView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var (
			v   queries.NotificationView
			raw []byte
		)
		if err := rows.Scan(&v.ID, &v.EventID, &v.Message, &raw, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		if err := json.Unmarshal(raw, &v.Recipients); err != nil {
			return nil, infra.WrapRepoErr("failed to decode recipients", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}
	return result, nil
}
