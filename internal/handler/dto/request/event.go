package request

import (
	"time"

	"eventhub/internal/usecase/commands"
)

type CreateEventRequest struct {
	Name     string    `json:"name" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Location *string   `json:"location,omitempty"`
}

func (r CreateEventRequest) ToParams() commands.CreateEventParams {
	return commands.CreateEventParams{
		Name:     r.Name,
		Date:     r.Date,
		Location: r.Location,
	}
}
