package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/observability"
)

type activityService struct {
	repo           domain.ActivityRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

const defaultContextTimeout = 5 * time.Second

// NewActivityService creates an ActivityService over repo. emailService may be
// nil, in which case no confirmations are sent. A non-positive timeout falls
// back to five seconds.
func NewActivityService(
	repo domain.ActivityRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ActivityService {
	if timeout <= 0 {
		timeout = defaultContextTimeout
	}
	return &activityService{
		repo:           repo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *activityService) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	acts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return acts, nil
}

func (s *activityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	act, err := s.repo.GetByName(ctx, activityName)
	if err != nil {
		return "", s.reject(observability.OpSignup, err)
	}
	if email == "" {
		return "", s.reject(observability.OpSignup, domain.ErrEmailRequired)
	}
	if act.HasParticipant(email) {
		return "", s.reject(observability.OpSignup, domain.ErrAlreadyRegistered)
	}
	// The store re-checks membership, so a concurrent signup still loses here.
	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		return "", s.reject(observability.OpSignup, err)
	}

	observability.RecordParticipationChange(observability.OpSignup, activityName)
	s.notify(ctx, s.confirmation(observability.OpSignup), act, email)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *activityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	act, err := s.repo.GetByName(ctx, activityName)
	if err != nil {
		return "", s.reject(observability.OpUnregister, err)
	}
	if email == "" {
		return "", s.reject(observability.OpUnregister, domain.ErrEmailRequired)
	}
	if !act.HasParticipant(email) {
		return "", s.reject(observability.OpUnregister, domain.ErrNotRegistered)
	}
	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		return "", s.reject(observability.OpUnregister, err)
	}

	observability.RecordParticipationChange(observability.OpUnregister, activityName)
	s.notify(ctx, s.confirmation(observability.OpUnregister), act, email)
	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}

// reject records domain rejections and wraps anything else.
func (s *activityService) reject(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		observability.RecordRejection(op, "not_found")
		return domain.ErrNotFound
	case errors.Is(err, domain.ErrAlreadyRegistered):
		observability.RecordRejection(op, "already_registered")
		return domain.ErrAlreadyRegistered
	case errors.Is(err, domain.ErrNotRegistered):
		observability.RecordRejection(op, "not_registered")
		return domain.ErrNotRegistered
	case errors.Is(err, domain.ErrEmailRequired):
		observability.RecordRejection(op, "email_required")
		return domain.ErrEmailRequired
	}
	return fmt.Errorf("%s: %w", op, err)
}

type sendFunc func(context.Context, *domain.ParticipationEmailData) error

func (s *activityService) confirmation(op string) sendFunc {
	if s.emailService == nil {
		return nil
	}
	if op == observability.OpSignup {
		return s.emailService.SendSignupConfirmation
	}
	return s.emailService.SendUnregisterConfirmation
}

// notify is best effort: the participant list has already changed.
func (s *activityService) notify(ctx context.Context, send sendFunc, act *domain.Activity, email string) {
	if send == nil {
		return
	}
	data := &domain.ParticipationEmailData{
		Email:        email,
		ActivityName: act.Name,
		Schedule:     act.Schedule,
	}
	if err := send(ctx, data); err != nil {
		observability.RecordNotificationFailure()
		s.logger.WarnContext(ctx, "confirmation email failed", "activity", act.Name, "err", err)
	}
}
