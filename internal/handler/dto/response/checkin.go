package response

import (
	"eventhub/internal/usecase/commands"
)

type CheckInResponse struct {
	AttendeeID int64  `json:"attendee_id"`
	Email      string `json:"email"`
	CheckedIn  bool   `json:"checked_in"`
}

func FromCheckInResult(r *commands.CheckInResult) *CheckInResponse {
	return &CheckInResponse{
		AttendeeID: r.AttendeeID,
		Email:      r.Email,
		CheckedIn:  r.CheckedIn,
	}
}
