package writerepo

import (
	"context"
	"fmt"
	"strings"

	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/usecase/commands"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// UpdateProfile writes only the columns present in the patch. The SET clause
// is assembled from fixed column names; user input only ever travels as
// placeholder arguments.
func (r *UserRepository) UpdateProfile(ctx context.Context, tx db.DBTX, userID int64, patch commands.ProfilePatch) error {
	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.PreferredName != nil {
		add("preferred_name", *patch.PreferredName)
	}
	if patch.Pronouns != nil {
		add("pronouns", *patch.Pronouns)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.PhoneNumber != nil {
		add("phone_number", *patch.PhoneNumber)
	}
	if patch.Program != nil {
		add("program", *patch.Program)
	}
	if patch.Year != nil {
		add("year", *patch.Year)
	}
	if patch.StudentNumber != nil {
		add("student_number", *patch.StudentNumber)
	}
	if patch.DietaryRestrictions != nil {
		add("dietary_restrictions", *patch.DietaryRestrictions)
	}
	if patch.EmergencyContact != nil {
		add("emergency_contact", *patch.EmergencyContact)
	}
	if patch.MediaConsent != nil {
		add("media_consent", *patch.MediaConsent)
	}
	if patch.DOB != nil {
		add("dob", *patch.DOB)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = now()")
	args = append(args, userID)
	sql := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err, infra.ClassifyPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
