package queries

import (
	"time"
)

// Read models (DTOs for the read side)

type EventView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AttendeeView struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"user_id"`
	EventID             int64     `json:"event_id"`
	Email               string    `json:"email"`
	PhoneNumber         *string   `json:"phone_number,omitempty"`
	DietaryRestrictions *string   `json:"dietary_restrictions,omitempty"`
	Program             *string   `json:"program,omitempty"`
	Year                *string   `json:"year,omitempty"`
	WaiverSigned        bool      `json:"waiver_signed"`
	CheckedIn           bool      `json:"checked_in"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// RegistrationListItem is one row of a user's registrations joined with the
// event and the issued code.
type RegistrationListItem struct {
	AttendeeID    int64      `json:"attendee_id"`
	Code          *string    `json:"qr,omitempty"`
	EventID       int64      `json:"event_id"`
	EventName     string     `json:"event_name"`
	EventDate     time.Time  `json:"event_date"`
	EventLocation *string    `json:"event_location,omitempty"`
	CheckedIn     bool       `json:"checked_in"`
	RedeemedAt    *time.Time `json:"redeemed_at,omitempty"`
}

type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type NotificationView struct {
	ID         int64     `json:"id"`
	EventID    *int64    `json:"event_id,omitempty"`
	Message    string    `json:"message"`
	Recipients []string  `json:"recipients"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserView struct {
	ID                  int64      `json:"id"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	PreferredName       *string    `json:"preferred_name,omitempty"`
	Pronouns            *string    `json:"pronouns,omitempty"`
	Email               string     `json:"email"`
	Role                string     `json:"role"`
	PhoneNumber         *string    `json:"phone_number,omitempty"`
	Program             *string    `json:"program,omitempty"`
	Year                *string    `json:"year,omitempty"`
	StudentNumber       *string    `json:"student_number,omitempty"`
	DietaryRestrictions *string    `json:"dietary_restrictions,omitempty"`
	EmergencyContact    *string    `json:"emergency_contact,omitempty"`
	MediaConsent        bool       `json:"media_consent"`
	DOB                 *time.Time `json:"dob,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
