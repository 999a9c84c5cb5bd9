package response

import (
	"eventhub/internal/usecase/commands"
)

type RegisterResponse struct {
	AttendeeID int64  `json:"attendee_id"`
	QR         string `json:"qr"`
}

func FromRegisterResult(r *commands.RegisterResult) *RegisterResponse {
	return &RegisterResponse{
		AttendeeID: r.AttendeeID,
		QR:         r.QR,
	}
}
