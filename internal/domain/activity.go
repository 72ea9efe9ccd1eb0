package domain

import (
	"context"
	"errors"
	"slices"
)

// Sentinel errors for activity registry operations.
var (
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student is already signed up")
	ErrNotRegistered     = errors.New("student is not signed up for this activity")
	ErrEmailRequired     = errors.New("email is required")
)

// Activity is an extracurricular offering and the students signed up for it.
// Participants are kept in signup order.
// swagger:model Activity
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with an empty, non-nil participant list.
func NewActivity(name, description, schedule string, maxParticipants int) *Activity {
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    []string{},
	}
}

// HasParticipant reports whether email is signed up.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SpotsLeft is capacity minus current participants. It can go negative:
// capacity is informational and never enforced.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Clone returns a deep copy so callers can't mutate registry state.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = append([]string{}, a.Participants...)
	return &c
}

// ActivityRepository is the registry store. AddParticipant and RemoveParticipant
// re-check membership atomically and return ErrAlreadyRegistered/ErrNotRegistered.
type ActivityRepository interface {
	List(ctx context.Context) ([]*Activity, error)
	GetByName(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService defines the signup operations exposed over HTTP.
type ActivityService interface {
	ListActivities(ctx context.Context) ([]*Activity, error)
	// Signup returns a confirmation message on success.
	Signup(ctx context.Context, activityName, email string) (string, error)
	// Unregister returns a confirmation message on success.
	Unregister(ctx context.Context, activityName, email string) (string, error)
}
