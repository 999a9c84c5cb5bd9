package queries

import (
	"context"
)

type NotificationReadStore interface {
	List(ctx context.Context) ([]*NotificationView, error)
	Inbox(ctx context.Context, email string) ([]*NotificationView, error)
}

type NotificationQueries interface {
	ListNotifications(ctx context.Context) ([]*NotificationView, error)
	GetInbox(ctx context.Context, email string) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListNotifications(ctx context.Context) ([]*NotificationView, error) {
	return q.readStore.List(ctx)
}

func (q *notificationQueriesImpl) GetInbox(ctx context.Context, email string) ([]*NotificationView, error) {
	return q.readStore.Inbox(ctx, email)
}
