package request

import (
	"time"

	"eventhub/internal/usecase/commands"
)

// UpdateProfileRequest carries a partial profile; absent fields stay as-is.
type UpdateProfileRequest struct {
	FirstName           *string    `json:"first_name,omitempty"`
	LastName            *string    `json:"last_name,omitempty"`
	PreferredName       *string    `json:"preferred_name,omitempty"`
	Pronouns            *string    `json:"pronouns,omitempty"`
	Email               *string    `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber         *string    `json:"phone_number,omitempty"`
	Program             *string    `json:"program,omitempty"`
	Year                *string    `json:"year,omitempty"`
	StudentNumber       *string    `json:"student_number,omitempty"`
	DietaryRestrictions *string    `json:"dietary_restrictions,omitempty"`
	EmergencyContact    *string    `json:"emergency_contact,omitempty"`
	MediaConsent        *bool      `json:"media_consent,omitempty"`
	DOB                 *time.Time `json:"dob,omitempty"`
}

func (r UpdateProfileRequest) ToPatch() commands.ProfilePatch {
	return commands.ProfilePatch{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		PreferredName:       r.PreferredName,
		Pronouns:            r.Pronouns,
		Email:               r.Email,
		PhoneNumber:         r.PhoneNumber,
		Program:             r.Program,
		Year:                r.Year,
		StudentNumber:       r.StudentNumber,
		DietaryRestrictions: r.DietaryRestrictions,
		EmergencyContact:    r.EmergencyContact,
		MediaConsent:        r.MediaConsent,
		DOB:                 r.DOB,
	}
}
