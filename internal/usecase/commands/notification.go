package commands

import (
	"context"

	"eventhub/internal/domain/notification"
	"eventhub/internal/infra/db"
	"eventhub/internal/pkg/errs"
	"eventhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotificationValidation   = errs.New("notification validation failed")
	ErrNotificationCreateFailed = errs.New("failed to create notification")
)

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) (*queries.NotificationView, error)
}

type CreateNotificationParams struct {
	Message    string
	Audience   string
	EventID    *int64
	Recipients []string
}

type NotificationCommands interface {
	CreateNotification(ctx context.Context, params CreateNotificationParams) (*queries.NotificationView, error)
}

type notificationCommandsImpl struct {
	repo           NotificationRepository
	eventReadStore queries.EventReadStore
	pool           *pgxpool.Pool
}

func NewNotificationCommands(
	repo NotificationRepository,
	eventReadStore queries.EventReadStore,
	pool *pgxpool.Pool,
) NotificationCommands {
	return &notificationCommandsImpl{
		repo:           repo,
		eventReadStore: eventReadStore,
		pool:           pool,
	}
}

// CreateNotification resolves the recipient list at creation time: an explicit
// list wins, otherwise the audience selects attendee emails for the event.
// The resolved emails are stored with the message, so later roster changes
// never alter who a past notification addressed.
func (n *notificationCommandsImpl) CreateNotification(ctx context.Context, params CreateNotificationParams) (*queries.NotificationView, error) {
	recipients := params.Recipients

	if len(recipients) == 0 {
		audience, err := notification.NewAudience(params.Audience)
		if err != nil {
			return nil, errs.Mark(err, ErrNotificationValidation)
		}

		if audience == notification.AudienceAll || audience == notification.AudienceCheckedIn {
			if params.EventID == nil {
				return nil, errs.Mark(notification.ErrInvalidAudience, ErrNotificationValidation)
			}
			attendees, err := n.eventReadStore.AttendeesByEvent(ctx, *params.EventID)
			if err != nil {
				return nil, errs.Mark(err, ErrNotificationCreateFailed)
			}
			for _, att := range attendees {
				if audience == notification.AudienceCheckedIn && !att.CheckedIn {
					continue
				}
				recipients = append(recipients, att.Email)
			}
		}
	}

	entity, err := notification.New(params.EventID, params.Message, recipients)
	if err != nil {
		return nil, errs.Mark(err, ErrNotificationValidation)
	}

	view, err := db.RunInTx(ctx, n.pool, func(tx db.DBTX) (*queries.NotificationView, error) {
		return n.repo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrNotificationCreateFailed)
	}
	return view, nil
}
