package attendee

import (
	"errors"
	"time"
)

var (
	ErrMissingEvent    = errors.New("event reference is required")
	ErrMissingUser     = errors.New("user reference is required")
	ErrMissingContact  = errors.New("contact email snapshot is required")
	ErrAlreadyAdmitted = errors.New("attendee already checked in")
)

// Registration is one person's sign-up for one event, carrying a snapshot of
// their contact details as they were at registration time.
type Registration struct {
	id          int64
	userID      int64
	eventID     int64
	email       string
	phoneNumber *string
	dietary     *string
	program     *string
	year        *string
	waiver      bool
	checkedIn   bool
	createdAt   time.Time
	updatedAt   time.Time
}

// Snapshot is the contact state copied from the user profile when registering.
type Snapshot struct {
	Email               string
	PhoneNumber         *string
	DietaryRestrictions *string
	Program             *string
	Year                *string
}

func NewRegistration(userID, eventID int64, snap Snapshot) (*Registration, error) {
	if userID <= 0 {
		return nil, ErrMissingUser
	}
	if eventID <= 0 {
		return nil, ErrMissingEvent
	}
	if snap.Email == "" {
		return nil, ErrMissingContact
	}
	return &Registration{
		userID:      userID,
		eventID:     eventID,
		email:       snap.Email,
		phoneNumber: snap.PhoneNumber,
		dietary:     snap.DietaryRestrictions,
		program:     snap.Program,
		year:        snap.Year,
	}, nil
}

func (r *Registration) ID() int64                    { return r.id }
func (r *Registration) UserID() int64                { return r.userID }
func (r *Registration) EventID() int64               { return r.eventID }
func (r *Registration) Email() string                { return r.email }
func (r *Registration) PhoneNumber() *string         { return r.phoneNumber }
func (r *Registration) DietaryRestrictions() *string { return r.dietary }
func (r *Registration) Program() *string             { return r.program }
func (r *Registration) Year() *string                { return r.year }
func (r *Registration) WaiverSigned() bool           { return r.waiver }
func (r *Registration) CheckedIn() bool              { return r.checkedIn }
func (r *Registration) CreatedAt() time.Time         { return r.createdAt }
func (r *Registration) UpdatedAt() time.Time         { return r.updatedAt }
