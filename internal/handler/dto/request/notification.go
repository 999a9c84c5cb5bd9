package request

import (
	"eventhub/internal/usecase/commands"
)

type CreateNotificationRequest struct {
	Message    string   `json:"message" binding:"required"`
	Audience   string   `json:"audience,omitempty"`
	EventID    *int64   `json:"eventId,omitempty"`
	Recipients []string `json:"recipients,omitempty"`
}

func (r CreateNotificationRequest) ToParams() commands.CreateNotificationParams {
	audience := r.Audience
	if audience == "" {
		if len(r.Recipients) > 0 {
			audience = "custom"
		} else {
			audience = "all"
		}
	}
	return commands.CreateNotificationParams{
		Message:    r.Message,
		Audience:   audience,
		EventID:    r.EventID,
		Recipients: r.Recipients,
	}
}
