package store

import (
	"context"
	"errors"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// Storage errors returned by MemoryStore.
var (
	// ErrNotFound is returned when no activity matches the given name.
	ErrNotFound = errors.New("activity not found")
	// ErrDuplicate is returned when the email is already on the participant list.
	ErrDuplicate = errors.New("participant already registered")
	// ErrNotRegistered is returned when the email is not on the participant list.
	ErrNotRegistered = errors.New("participant not registered")
)

// MemoryStore holds the canonical mapping of activity name to record.
//
// The store is constructed once at process start and passed by reference to
// the service layer; there is no package-level state. All methods take the
// store-wide mutex so the check-then-mutate sequences in Signup and Unregister
// are atomic across concurrent requests.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// NewMemoryStore creates a store holding the given activities. The map is
// copied; the seed data itself is never aliased.
func NewMemoryStore(seed map[string]*model.Activity) *MemoryStore {
	activities := make(map[string]*model.Activity, len(seed))
	for name, a := range seed {
		activities[name] = a.Clone()
	}
	return &MemoryStore{activities: activities}
}

// List returns a deep copy of the full mapping.
func (s *MemoryStore) List(ctx context.Context) (map[string]*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*model.Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Get returns a copy of the record for an exact, case-sensitive name match.
func (s *MemoryStore) Get(ctx context.Context, name string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the activity's participant list. The duplicate
// check and the append happen under one lock acquisition.
//
// Declared capacity is not checked: max_participants is informational and a
// signup past capacity succeeds.
func (s *MemoryStore) Signup(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if a.HasParticipant(email) {
		return ErrDuplicate
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list, preserving
// the order of the remaining participants.
func (s *MemoryStore) Unregister(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}
