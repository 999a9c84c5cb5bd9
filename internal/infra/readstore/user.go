package readstore

import (
	"context"

	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const userColumns = `id, first_name, last_name, preferred_name, pronouns, email, role,
	phone_number, program, year, student_number, dietary_restrictions,
	emergency_contact, media_consent, dob, created_at, updated_at`

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserView
	for rows.Next() {
		view, err := scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	view, err := scanUser(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, password_hash FROM users WHERE email = $1`, email).
		Scan(&view.ID, &view.Email, &view.Role, &hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func scanUser(row rowScanner) (*queries.UserView, error) {
	var v queries.UserView
	if err := row.Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.PreferredName, &v.Pronouns,
		&v.Email, &v.Role, &v.PhoneNumber, &v.Program, &v.Year,
		&v.StudentNumber, &v.DietaryRestrictions, &v.EmergencyContact,
		&v.MediaConsent, &v.DOB, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
