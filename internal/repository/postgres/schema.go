package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mergingtonactivities/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS activities (
	position         SERIAL,
	name             TEXT PRIMARY KEY,
	description      TEXT NOT NULL,
	schedule         TEXT NOT NULL,
	max_participants INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS activity_participants (
	id            BIGSERIAL PRIMARY KEY,
	activity_name TEXT NOT NULL REFERENCES activities (name),
	email         TEXT NOT NULL,
	UNIQUE (activity_name, email)
);
`

// Migrate creates the registry tables if they don't exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Seed inserts the given activities in one transaction. Activities that
// already exist are left untouched, participants included, so a restart
// never undoes a withdrawal.
func Seed(ctx context.Context, db *sql.DB, acts []*domain.Activity) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback()

	insertActivity := `
		INSERT INTO activities (name, description, schedule, max_participants)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
		RETURNING name
	`
	insertParticipant := `
		INSERT INTO activity_participants (activity_name, email)
		VALUES ($1, $2)
		ON CONFLICT (activity_name, email) DO NOTHING
	`
	for _, a := range acts {
		var inserted string
		err := tx.QueryRowContext(ctx, insertActivity, a.Name, a.Description, a.Schedule, a.MaxParticipants).Scan(&inserted)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed activity %q: %w", a.Name, err)
		}
		for _, email := range a.Participants {
			if _, err := tx.ExecContext(ctx, insertParticipant, a.Name, email); err != nil {
				return fmt.Errorf("seed participant %q: %w", a.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	return nil
}
