// Package memory is the default process-local activity registry.
package memory

import (
	"context"
	"slices"
	"sync"

	"mergingtonactivities/internal/domain"
)

type activityRepository struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*domain.Activity
}

// NewActivityRepository builds a registry owning copies of seed. Later
// entries with a name already seen are ignored.
func NewActivityRepository(seed []*domain.Activity) domain.ActivityRepository {
	r := &activityRepository{byName: make(map[string]*domain.Activity, len(seed))}
	for _, a := range seed {
		if _, ok := r.byName[a.Name]; ok {
			continue
		}
		c := a.Clone()
		c.Participants = dedupe(c.Participants)
		r.byName[a.Name] = c
		r.order = append(r.order, a.Name)
	}
	return r
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].Clone())
	}
	return out, nil
}

func (r *activityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a.Clone(), nil
}

func (r *activityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byName[name]
	if !ok {
		return domain.ErrNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadyRegistered
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byName[name]
	if !ok {
		return domain.ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return domain.ErrNotRegistered
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}

func dedupe(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := emails[:0]
	for _, e := range emails {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
