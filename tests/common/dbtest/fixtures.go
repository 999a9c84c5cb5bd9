//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"eventhub/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates every table so each subtest starts from a clean slate.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE notifications, qr_codes, attendees, events, users
		RESTART IDENTITY CASCADE`)
	return err
}

func SeedUser(pool *pgxpool.Pool, firstName, lastName, email, plainPassword, role string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return 0, err
	}

	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		firstName, lastName, email, hash, role,
	).Scan(&id)
	return id, err
}

func SeedEvent(pool *pgxpool.Pool, name string, date time.Time, location *string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO events (name, date, location)
		VALUES ($1, $2, $3)
		RETURNING id`,
		name, date, location,
	).Scan(&id)
	return id, err
}
