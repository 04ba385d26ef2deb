package service

import (
	"context"
	"errors"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/store"
)

// ActivityStore defines the interface for activity storage
type ActivityStore interface {
	List(ctx context.Context) (map[string]*model.Activity, error)
	Get(ctx context.Context, name string) (*model.Activity, error)
	Signup(ctx context.Context, name, email string) error
	Unregister(ctx context.Context, name, email string) error
}

// ActivityService handles activity business logic
type ActivityService struct {
	activityStore ActivityStore
}

// ActivityServiceConfig holds configuration for the activity service
type ActivityServiceConfig struct {
	ActivityStore ActivityStore
}

// NewActivityService creates a new activity service
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	return &ActivityService{
		activityStore: cfg.ActivityStore,
	}
}

// ListActivities retrieves the full activity mapping. It never filters,
// sorts, or paginates.
func (s *ActivityService) ListActivities(ctx context.Context) (map[string]*model.Activity, error) {
	return s.activityStore.List(ctx)
}

// GetActivity retrieves a single activity by exact name.
func (s *ActivityService) GetActivity(ctx context.Context, name string) (*model.Activity, error) {
	a, err := s.activityStore.Get(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return a, nil
}

// Signup registers email for the named activity. Duplicate signups are
// rejected; no state is mutated on failure.
func (s *ActivityService) Signup(ctx context.Context, name, email string) error {
	err := s.activityStore.Signup(ctx, name, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrActivityNotFound
	case errors.Is(err, store.ErrDuplicate):
		return ErrAlreadySignedUp
	}
	return err
}

// Unregister removes email from the named activity. Unregistering an email
// that is not on the list is rejected; no state is mutated on failure.
func (s *ActivityService) Unregister(ctx context.Context, name, email string) error {
	err := s.activityStore.Unregister(ctx, name, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrActivityNotFound
	case errors.Is(err, store.ErrNotRegistered):
		return ErrNotSignedUp
	}
	return err
}
