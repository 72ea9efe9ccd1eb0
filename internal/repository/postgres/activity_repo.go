package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mergingtonactivities/internal/domain"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type activityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) domain.ActivityRepository {
	return &activityRepository{DB: db}
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `
		SELECT name, description, schedule, max_participants
		FROM activities
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var acts []*domain.Activity
	byName := make(map[string]*domain.Activity)
	for rows.Next() {
		a := domain.NewActivity("", "", "", 0)
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		acts = append(acts, a)
		byName[a.Name] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	query = `
		SELECT activity_name, email
		FROM activity_participants
		ORDER BY id
	`
	prows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var name, email string
		if err := prows.Scan(&name, &email); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		if a, ok := byName[name]; ok {
			a.Participants = append(a.Participants, email)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	if acts == nil {
		acts = []*domain.Activity{}
	}
	return acts, nil
}

func (r *activityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	query := `
		SELECT name, description, schedule, max_participants
		FROM activities
		WHERE name = $1
	`
	a := domain.NewActivity("", "", "", 0)
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}

	query = `
		SELECT email
		FROM activity_participants
		WHERE activity_name = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		a.Participants = append(a.Participants, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return a, nil
}

func (r *activityRepository) AddParticipant(ctx context.Context, name, email string) error {
	query := `
		INSERT INTO activity_participants (activity_name, email)
		VALUES ($1, $2)
	`
	if _, err := r.DB.ExecContext(ctx, query, name, email); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				return domain.ErrAlreadyRegistered
			case pqForeignKeyViolation:
				return domain.ErrNotFound
			}
		}
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	query := `
		DELETE FROM activity_participants
		WHERE activity_name = $1 AND email = $2
	`
	res, err := r.DB.ExecContext(ctx, query, name, email)
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Nothing deleted: tell an unknown activity apart from an absent email.
	var exists bool
	query = `SELECT EXISTS (SELECT 1 FROM activities WHERE name = $1)`
	if err := r.DB.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return fmt.Errorf("check activity: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrNotRegistered
}
