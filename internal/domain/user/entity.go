package user

import (
	"time"
)

// User entity holding the society member profile. Attendee rows keep their own
// snapshot of the contact fields, so edits here never rewrite past registrations.
type User struct {
	id            int64
	firstName     string
	lastName      string
	preferredName *string
	pronouns      *string
	email         Email
	passwordHash  string
	role          Role
	phoneNumber   *string
	program       *string
	year          *string
	studentNumber *string
	dietary       *string
	emergency     *string
	mediaConsent  bool
	dob           *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(firstName, lastName string, email Email, passwordHash string, role Role) (*User, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func (u *User) ID() int64                 { return u.id }
func (u *User) FirstName() string         { return u.firstName }
func (u *User) LastName() string          { return u.lastName }
func (u *User) PreferredName() *string    { return u.preferredName }
func (u *User) Pronouns() *string         { return u.pronouns }
func (u *User) Email() Email              { return u.email }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() Role                { return u.role }
func (u *User) PhoneNumber() *string      { return u.phoneNumber }
func (u *User) Program() *string          { return u.program }
func (u *User) Year() *string             { return u.year }
func (u *User) StudentNumber() *string    { return u.studentNumber }
func (u *User) DietaryRestrictions() *string { return u.dietary }
func (u *User) EmergencyContact() *string { return u.emergency }
func (u *User) MediaConsent() bool        { return u.mediaConsent }
func (u *User) DOB() *time.Time           { return u.dob }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }
